package domain

import "time"

// Season is one of the four Tamil Nadu hydrological seasons.
type Season int

const (
	Winter Season = iota
	Summer
	Monsoon
	PostMonsoon
)

// seasonByMonth maps January..December to a season.
var seasonByMonth = [12]Season{
	Winter, Winter, // Jan, Feb
	Summer, Summer, Summer, Summer, // Mar–Jun
	Monsoon, Monsoon, Monsoon, // Jul–Sep
	PostMonsoon, PostMonsoon, PostMonsoon, // Oct–Dec
}

// baselineRainfallMM is the long-term mean monthly rainfall (mm),
// January..December. The Oct–Dec peak reflects the northeast monsoon.
var baselineRainfallMM = [12]float64{20, 10, 5, 10, 30, 80, 150, 200, 250, 300, 350, 100}

// SeasonForMonth returns the season containing m.
func SeasonForMonth(m time.Month) Season {
	return seasonByMonth[int(m)-1]
}

// BaselineRainfall returns the climatological mean rainfall for m in mm.
func BaselineRainfall(m time.Month) float64 {
	return baselineRainfallMM[int(m)-1]
}

// Index returns the season's integer encoding (Winter=0 .. Post-Monsoon=3),
// matching the categorical feature encoding used for model inputs.
func (s Season) Index() int { return int(s) }

func (s Season) String() string {
	switch s {
	case Winter:
		return "Winter"
	case Summer:
		return "Summer"
	case Monsoon:
		return "Monsoon"
	case PostMonsoon:
		return "Post-Monsoon"
	default:
		return "Unknown"
	}
}
