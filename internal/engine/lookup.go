package engine

// Fixed label-to-magnitude tables for the single-purpose choice
// questions. These feed duration and growth-rate calculations and are
// never normalized to [-1,1]. Unknown labels take the table default.

var durationYears = map[string]float64{
	"Several months":     0.5,
	"1-2 years":          1.5,
	"3-5 years":          4,
	"5-10 years":         7.5,
	"More than 10 years": 15,
	"Lifelong":           25,
	"Very uncertain":     3,
}

const durationYearsDefault = 3

var trendRate = map[string]float64{
	"Significantly improve": 0.03,
	"Slightly improve":      0.015,
	"Stay about the same":   0,
	"Slightly worsen":       -0.015,
	"Significantly worsen":  -0.03,
	"Very uncertain":        -0.005,
}

const trendRateDefault = 0

var singleLifeUtility = map[string]float64{
	"Much better than now": 3,
	"Somewhat better":      1.5,
	"About the same":       0,
	"Somewhat worse":       -1.5,
	"Much worse than now":  -3,
}

const singleLifeUtilityDefault = 0

var recoveryYears = map[string]float64{
	"A few months":      0.25,
	"About half a year": 0.5,
	"About a year":      1,
	"More than a year":  1.5,
	"Hard to say":       0.75,
}

const recoveryYearsDefault = 0.75

func lookup(table map[string]float64, label string, fallback float64) float64 {
	if v, ok := table[label]; ok {
		return v
	}
	return fallback
}
