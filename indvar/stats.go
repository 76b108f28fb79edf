// Package indvar computes the summary statistics GenIndVar sections
// store (extrema and the first three central moments) from a raw
// sample array, the values an independent variable (temperature,
// field, etc.) took over a run. mud_gen.c never computed these itself:
// MUD_SEC_GEN_IND_VAR only encodes/decodes the already-summarized
// fields, leaving their computation to the caller, the same division
// of labour this package preserves.
package indvar

import (
	"math"

	"github.com/dfujim/gomud/mudsec"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes Low, High, Mean, StdDev, and Skewness from samples
// and returns them ready to populate a GenIndVar's numeric fields (Name,
// Description, and Units are left for the caller to set).
func Summarize(samples []float64) mudsec.GenIndVar {
	if len(samples) == 0 {
		return mudsec.GenIndVar{}
	}

	low, high := samples[0], samples[0]
	for _, s := range samples {
		if s < low {
			low = s
		}
		if s > high {
			high = s
		}
	}

	mean, stddev := stat.MeanStdDev(samples, nil)
	skew := stat.Skew(samples, nil)
	if math.IsNaN(skew) {
		// stat.Skew is undefined for a single sample or zero variance;
		// MUD_SEC_GEN_IND_VAR has no representation for "undefined", so
		// this falls back to zero rather than encoding a NaN.
		skew = 0
	}

	return mudsec.GenIndVar{
		Low:      low,
		High:     high,
		Mean:     mean,
		StdDev:   stddev,
		Skewness: skew,
	}
}
