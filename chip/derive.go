// Derived metrics: score tiers and axis value extraction for the
// scatter plot and charts. Pure functions over a device.
package main

import (
	"math"
)

// scoreOrMin floors an unmeasured value so it sorts last ascending and
// first descending.
func scoreOrMin(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}

// ScoreTier classifies a measured score into "high", "medium" or "low"
// against its metric's thresholds. A nil score is unclassified ("").
func ScoreTier(score *float64, key string, settings map[string]ScoreThreshold) string {
	if score == nil {
		return ""
	}
	t, ok := settings[key]
	if !ok {
		return ""
	}
	if t.HighIsBetter {
		switch {
		case *score >= t.HighThreshold:
			return "high"
		case *score >= t.MediumThreshold:
			return "medium"
		}
		return "low"
	}
	// Lower is better: small measurements clear the high bar.
	switch {
	case *score <= t.HighThreshold:
		return "high"
	case *score <= t.MediumThreshold:
		return "medium"
	}
	return "low"
}

// AxisValue resolves a scatter/chart axis key against a device. The
// second result is false for the "none" axis, unknown keys, and
// unmeasured optional metrics.
func AxisValue(d *Device, key string) (float64, bool) {
	switch key {
	case "", "none":
		return 0, false
	case "volume":
		return float64(d.Volume.Total()), true
	case "multiSpeed":
		return d.Speeds.Multi, true
	case "singleSpeed":
		return d.Speeds.Single, true
	case "branchSpeed":
		if d.Speeds.Branch == nil {
			return 0, false
		}
		return *d.Speeds.Branch, true
	case "cores":
		return float64(d.Cores), true
	case "threads":
		return float64(d.Threads), true
	case "bit":
		return float64(d.Bit), true
	}
	if isScoreKey(key) {
		if v := d.Scores[key]; v != nil {
			return *v, true
		}
	}
	return 0, false
}
