// Settings domains and their defaults. Each domain is independently
// persisted and independently defaulted; persist.go does the actual
// load/save plumbing.
package main

// The nine benchmark categories of the RCB suite. Order matters: the
// score display cursor cycles through them in this sequence.
var scoreKeys = []string{
	"rcbsp", "rcbfa", "rcbmp", "rcbwm", "rcbrm",
	"rcbml", "rcbdv", "rcbsq", "rcbsh",
}

var speedKeys = []string{"multi", "single", "branch"}

// Table columns, in display order. All visible by default.
var columnKeys = []string{
	"favorite", "checkbox", "creator", "name", "scores", "speeds",
	"cores", "threads", "bit", "volume", "completionDate", "tags",
}

// Per-metric bar charts.
var chartKeys = append(append([]string{}, scoreKeys...),
	"multiSpeed", "singleSpeed", "cores", "threads", "bit", "volume")

// Selectable scatter plot axes.
var scatterAxisKeys = append(append([]string{}, scoreKeys...),
	"multiSpeed", "singleSpeed", "branchSpeed", "cores", "threads", "bit", "volume")

// Fields shown in the hover preview.
var previewKeys = []string{"creator", "score", "speed", "volume", "description"}

func isScoreKey(key string) bool {
	for _, k := range scoreKeys {
		if k == key {
			return true
		}
	}
	return false
}

type SortState struct {
	Column string `json:"column"`
	Order  string `json:"order"` // "asc", "desc" or "none"
}

// ScoreThreshold classifies one score metric into high/medium/low tiers.
// With HighIsBetter unset, lower measurements are the good ones (most RCB
// categories count redstone ticks, so less is faster).
type ScoreThreshold struct {
	HighIsBetter    bool    `json:"highIsBetter"`
	HighThreshold   float64 `json:"highThreshold"`
	MediumThreshold float64 `json:"mediumThreshold"`
}

type ScatterSettings struct {
	X string `json:"x"`
	Y string `json:"y"`
	R string `json:"r"` // bubble radius metric, may be "none"
}

const (
	kDefaultItemsPerPage = 20
	kMinItemsPerPage     = 5
	kMaxItemsPerPage     = 100
)

func defaultSortState() SortState {
	return SortState{Column: "id", Order: "asc"}
}

func defaultColumnVisibility() map[string]bool {
	visibility := make(map[string]bool, len(columnKeys))
	for _, key := range columnKeys {
		visibility[key] = true
	}
	return visibility
}

func defaultChartVisibility() map[string]bool {
	visibility := make(map[string]bool, len(chartKeys))
	for _, key := range chartKeys {
		visibility[key] = true
	}
	return visibility
}

func defaultScatterSettings() ScatterSettings {
	return ScatterSettings{X: "volume", Y: "multiSpeed", R: "cores"}
}

func defaultScoreSettings() map[string]ScoreThreshold {
	return map[string]ScoreThreshold{
		"rcbsp": {HighIsBetter: false, HighThreshold: 100, MediumThreshold: 200},
		"rcbfa": {HighIsBetter: false, HighThreshold: 500, MediumThreshold: 1000},
		"rcbmp": {HighIsBetter: false, HighThreshold: 200, MediumThreshold: 400},
		"rcbwm": {HighIsBetter: false, HighThreshold: 100, MediumThreshold: 200},
		"rcbrm": {HighIsBetter: false, HighThreshold: 100, MediumThreshold: 200},
		"rcbml": {HighIsBetter: false, HighThreshold: 100, MediumThreshold: 200},
		"rcbdv": {HighIsBetter: false, HighThreshold: 200, MediumThreshold: 400},
		"rcbsq": {HighIsBetter: false, HighThreshold: 500, MediumThreshold: 1000},
		"rcbsh": {HighIsBetter: false, HighThreshold: 50, MediumThreshold: 100},
	}
}

func defaultPreviewSettings() map[string]bool {
	settings := make(map[string]bool, len(previewKeys))
	for _, key := range previewKeys {
		settings[key] = true
	}
	return settings
}
