// Two-device comparison: per metric, decide which side is "better".
package main

type CompareClass string

const (
	CompareNone   CompareClass = ""
	CompareNA     CompareClass = "na"
	CompareBetter CompareClass = "better"
	CompareWorse  CompareClass = "worse"
	CompareEqual  CompareClass = "equal"
)

// Comparison direction of the fixed metrics. Scores are not listed:
// their direction follows the per-metric threshold settings. Kept as a
// table so changing a metric's direction is a data edit.
var higherIsBetterMetric = map[string]bool{
	"multiSpeed":     true,
	"singleSpeed":    true,
	"branchSpeed":    true,
	"cores":          true,
	"threads":        true,
	"bit":            true,
	"volume":         false, // smaller machines win
	"completionDate": true,  // more recent wins
}

type ComparisonRow struct {
	Field  string       `json:"field"`
	A      interface{}  `json:"a"`
	B      interface{}  `json:"b"`
	Unit   string       `json:"unit,omitempty"`
	ClassA CompareClass `json:"classA"`
	ClassB CompareClass `json:"classB"`
	TierA  string       `json:"tierA,omitempty"`
	TierB  string       `json:"tierB,omitempty"`
}

// compareNumbers follows the null rules: a measured value beats an
// unmeasured one, two unmeasured values are no contest.
func compareNumbers(a, b *float64, higherIsBetter bool) (CompareClass, CompareClass) {
	switch {
	case a == nil && b == nil:
		return CompareNA, CompareNA
	case a == nil:
		return CompareNA, CompareBetter
	case b == nil:
		return CompareBetter, CompareNA
	case *a == *b:
		return CompareEqual, CompareEqual
	}
	aWins := *a > *b
	if !higherIsBetter {
		aWins = !aWins
	}
	if aWins {
		return CompareBetter, CompareWorse
	}
	return CompareWorse, CompareBetter
}

// compareStrings never picks a winner: case-insensitively equal strings
// tie, anything else is neutral. Empty counts as not available.
func compareStrings(a, b string) (CompareClass, CompareClass) {
	switch {
	case a == "" && b == "":
		return CompareNA, CompareNA
	case a == "":
		return CompareNA, CompareBetter
	case b == "":
		return CompareBetter, CompareNA
	case compareFold(a, b) == 0:
		return CompareEqual, CompareEqual
	}
	return CompareNone, CompareNone
}

func compareDates(a, b string, recentIsBetter bool) (CompareClass, CompareClass) {
	ta := parseCompletionDate(a)
	tb := parseCompletionDate(b)
	switch {
	case ta.IsZero() && tb.IsZero():
		return CompareNA, CompareNA
	case ta.IsZero():
		return CompareNA, CompareBetter
	case tb.IsZero():
		return CompareBetter, CompareNA
	case ta.Equal(tb):
		return CompareEqual, CompareEqual
	}
	aWins := ta.After(tb)
	if !recentIsBetter {
		aWins = !aWins
	}
	if aWins {
		return CompareBetter, CompareWorse
	}
	return CompareWorse, CompareBetter
}

// CompareDevices builds the full comparison table for two devices.
func CompareDevices(a, b *Device, scoreSettings map[string]ScoreThreshold) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(scoreKeys)+12)

	addString := func(field, va, vb string) {
		ca, cb := compareStrings(va, vb)
		rows = append(rows, ComparisonRow{Field: field, A: va, B: vb, ClassA: ca, ClassB: cb})
	}
	addNumber := func(field string, va, vb *float64, unit string, higherIsBetter bool) {
		ca, cb := compareNumbers(va, vb, higherIsBetter)
		rows = append(rows, ComparisonRow{Field: field, A: va, B: vb, Unit: unit, ClassA: ca, ClassB: cb})
	}

	addString("creator", a.Creator, b.Creator)

	for _, key := range scoreKeys {
		va, vb := a.Scores[key], b.Scores[key]
		ca, cb := compareNumbers(va, vb, scoreSettings[key].HighIsBetter)
		rows = append(rows, ComparisonRow{
			Field: key, A: va, B: vb, Unit: "t",
			ClassA: ca, ClassB: cb,
			TierA:  ScoreTier(va, key, scoreSettings),
			TierB:  ScoreTier(vb, key, scoreSettings),
		})
	}

	addNumber("multiSpeed", &a.Speeds.Multi, &b.Speeds.Multi, "OPS", higherIsBetterMetric["multiSpeed"])
	addNumber("singleSpeed", &a.Speeds.Single, &b.Speeds.Single, "OPS", higherIsBetterMetric["singleSpeed"])
	addNumber("branchSpeed", a.Speeds.Branch, b.Speeds.Branch, "OPS", higherIsBetterMetric["branchSpeed"])
	addNumber("cores", intPtr(a.Cores), intPtr(b.Cores), "", higherIsBetterMetric["cores"])
	addNumber("threads", intPtr(a.Threads), intPtr(b.Threads), "", higherIsBetterMetric["threads"])
	addNumber("bit", intPtr(a.Bit), intPtr(b.Bit), "bit", higherIsBetterMetric["bit"])
	addNumber("volume", intPtr(a.Volume.Total()), intPtr(b.Volume.Total()), "", higherIsBetterMetric["volume"])

	ca, cb := compareDates(a.CompletionDate, b.CompletionDate, higherIsBetterMetric["completionDate"])
	rows = append(rows, ComparisonRow{
		Field: "completionDate", A: a.CompletionDate, B: b.CompletionDate,
		ClassA: ca, ClassB: cb,
	})

	addString("microarchitecture", a.Microarchitecture, b.Microarchitecture)
	addString("minecraftEdition", a.MinecraftEdition, b.MinecraftEdition)

	rows = append(rows, ComparisonRow{Field: "tags", A: a.Tags, B: b.Tags})
	rows = append(rows, ComparisonRow{Field: "description", A: a.Description, B: b.Description})
	return rows
}

func intPtr(v int) *float64 {
	f := float64(v)
	return &f
}
