// Command gencurve builds a reservoir volume-curve table from contour area
// data. The input CSV carries one row per contour level (elevation_m,
// area_sqkm) as exported from the waterspread-detection geodatabase;
// storage volume is accumulated between levels by trapezoidal integration
// and the result is written as the JSON table consumed by the curve engine.
//
// Usage:
//
//	go run ./cmd/gencurve \
//	  -in contours.csv \
//	  -out data_cache/volume_curve.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/ELANGKATHIR11/Hydro-AI/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "", "input CSV of contour levels (elevation_m,area_sqkm)")
	out := flag.String("out", "", "output path for the volume curve JSON table")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -out")
	}

	levels, err := readContours(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	if len(levels) < 2 {
		return fmt.Errorf("need at least 2 contour levels, got %d", len(levels))
	}

	samples := integrate(levels)

	if err := writeJSON(*out, samples); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}

	last := samples[len(samples)-1]
	log.Printf("wrote %d samples: %s", len(samples), *out)
	log.Printf("capacity %.2f MCM at %.2f m (%.2f km² waterspread)",
		last.VolumeMCM, last.ElevationM, last.AreaSqKm)
	return nil
}

type contourLevel struct {
	elevationM float64
	areaSqKm   float64
}

func readContours(path string) ([]contourLevel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}
	elevCol, ok := colIdx["elevation_m"]
	if !ok {
		return nil, fmt.Errorf("missing elevation_m column")
	}
	areaCol, ok := colIdx["area_sqkm"]
	if !ok {
		return nil, fmt.Errorf("missing area_sqkm column")
	}

	var levels []contourLevel
	for _, row := range rows[1:] {
		if len(row) <= elevCol || len(row) <= areaCol {
			continue
		}
		elev, errE := strconv.ParseFloat(row[elevCol], 64)
		area, errA := strconv.ParseFloat(row[areaCol], 64)
		if errE != nil || errA != nil {
			continue
		}
		levels = append(levels, contourLevel{elevationM: elev, areaSqKm: area})
	}

	sort.Slice(levels, func(i, j int) bool { return levels[i].elevationM < levels[j].elevationM })
	return levels, nil
}

// integrate accumulates storage between contour levels: the average of two
// adjacent waterspread areas times the height difference, summed upward
// from the lowest level, converted from m³ to MCM.
func integrate(levels []contourLevel) []domain.CurveSample {
	samples := make([]domain.CurveSample, 0, len(levels))

	var cumulativeM3 float64
	prev := levels[0]
	for i, lv := range levels {
		if i > 0 {
			dh := lv.elevationM - prev.elevationM
			if dh > 0 {
				avgAreaM2 := (lv.areaSqKm + prev.areaSqKm) / 2 * 1e6
				cumulativeM3 += avgAreaM2 * dh
			}
		}
		samples = append(samples, domain.CurveSample{
			ElevationM: lv.elevationM,
			AreaSqKm:   lv.areaSqKm,
			VolumeMCM:  cumulativeM3 / 1e6,
		})
		prev = lv
	}
	return samples
}

func writeJSON(path string, samples []domain.CurveSample) error {
	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
