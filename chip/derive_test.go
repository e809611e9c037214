package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTierLowerIsBetter(t *testing.T) {
	settings := map[string]ScoreThreshold{
		"rcbsp": {HighIsBetter: false, HighThreshold: 100, MediumThreshold: 200},
	}
	cases := map[string]struct {
		score  *float64
		expect string
	}{
		"fast":           {num(90), "high"},
		"exactly high":   {num(100), "high"},
		"middling":       {num(150), "medium"},
		"exactly medium": {num(200), "medium"},
		"slow":           {num(250), "low"},
		"unmeasured":     {nil, ""},
	}
	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expect, ScoreTier(tc.score, "rcbsp", settings))
		})
	}
}

func TestScoreTierHigherIsBetter(t *testing.T) {
	settings := map[string]ScoreThreshold{
		"rcbsp": {HighIsBetter: true, HighThreshold: 200, MediumThreshold: 100},
	}
	assert.Equal(t, "high", ScoreTier(num(250), "rcbsp", settings))
	assert.Equal(t, "medium", ScoreTier(num(150), "rcbsp", settings))
	assert.Equal(t, "low", ScoreTier(num(50), "rcbsp", settings))
}

func TestVolumeTotal(t *testing.T) {
	assert.Equal(t, 1000, Volume{X: 10, Y: 10, Z: 10}.Total())
	assert.Equal(t, 0, Volume{}.Total())
}

func TestAxisValue(t *testing.T) {
	d := &Device{
		Scores: map[string]*float64{"rcbsp": num(100)},
		Speeds: Speeds{Multi: 5000, Single: 4000},
		Cores:  8, Threads: 16, Bit: 64,
		Volume: Volume{X: 2, Y: 3, Z: 4},
	}

	v, ok := AxisValue(d, "volume")
	assert.True(t, ok)
	assert.Equal(t, 24.0, v)

	v, ok = AxisValue(d, "multiSpeed")
	assert.True(t, ok)
	assert.Equal(t, 5000.0, v)

	v, ok = AxisValue(d, "rcbsp")
	assert.True(t, ok)
	assert.Equal(t, 100.0, v)

	_, ok = AxisValue(d, "branchSpeed")
	assert.False(t, ok, "unmeasured optional speed")
	_, ok = AxisValue(d, "rcbfa")
	assert.False(t, ok, "unmeasured score")
	_, ok = AxisValue(d, "none")
	assert.False(t, ok)
	_, ok = AxisValue(d, "nonsense")
	assert.False(t, ok)
}

func TestScoreOrMinFloorsUnmeasured(t *testing.T) {
	assert.True(t, math.IsInf(scoreOrMin(nil), -1))
	assert.Equal(t, 42.0, scoreOrMin(num(42)))
}

func TestCompareNumbersNullRules(t *testing.T) {
	a, b := compareNumbers(nil, nil, true)
	assert.Equal(t, CompareNA, a)
	assert.Equal(t, CompareNA, b)

	// A measured value beats an unmeasured one, regardless of direction.
	a, b = compareNumbers(num(5), nil, true)
	assert.Equal(t, CompareBetter, a)
	assert.Equal(t, CompareNA, b)
	a, b = compareNumbers(nil, num(5), false)
	assert.Equal(t, CompareNA, a)
	assert.Equal(t, CompareBetter, b)

	a, b = compareNumbers(num(5), num(5), true)
	assert.Equal(t, CompareEqual, a)
	assert.Equal(t, CompareEqual, b)

	a, b = compareNumbers(num(9), num(5), true)
	assert.Equal(t, CompareBetter, a)
	assert.Equal(t, CompareWorse, b)

	// Lower-is-better inverts the outcome.
	a, b = compareNumbers(num(9), num(5), false)
	assert.Equal(t, CompareWorse, a)
	assert.Equal(t, CompareBetter, b)
}

func findRow(t *testing.T, rows []ComparisonRow, field string) ComparisonRow {
	for _, row := range rows {
		if row.Field == field {
			return row
		}
	}
	t.Fatalf("no row for %s", field)
	return ComparisonRow{}
}

func TestCompareDevices(t *testing.T) {
	c := freshCatalog()
	a := c.FindById(1) // 500 blocks, rcbsp 100
	b := c.FindById(2) // 3000 blocks, rcbsp 80
	require.NotNil(t, a)
	require.NotNil(t, b)
	rows := CompareDevices(a, b, c.ScoreSettings())

	// Smaller volume wins.
	volume := findRow(t, rows, "volume")
	assert.Equal(t, CompareBetter, volume.ClassA)
	assert.Equal(t, CompareWorse, volume.ClassB)

	// Lower tick count wins with the default lower-is-better settings.
	rcbsp := findRow(t, rows, "rcbsp")
	assert.Equal(t, CompareWorse, rcbsp.ClassA)
	assert.Equal(t, CompareBetter, rcbsp.ClassB)
	assert.Equal(t, "high", rcbsp.TierA)
	assert.Equal(t, "high", rcbsp.TierB)

	// More recent completion wins.
	date := findRow(t, rows, "completionDate")
	assert.Equal(t, CompareWorse, date.ClassA)
	assert.Equal(t, CompareBetter, date.ClassB)

	// Measured branch speed beats unmeasured.
	branch := findRow(t, rows, "branchSpeed")
	assert.Equal(t, CompareBetter, branch.ClassA)
	assert.Equal(t, CompareNA, branch.ClassB)

	// Strings never declare a winner.
	creator := findRow(t, rows, "creator")
	assert.Equal(t, CompareNone, creator.ClassA)
}

func TestValidateDevice(t *testing.T) {
	good := Device{
		Creator: "X", Name: "Y", Microarchitecture: "Z",
		MinecraftEdition: "Java", CompletionDate: "2024-01-01",
		Cores: 1, Threads: 1, Bit: 8,
		Volume: Volume{X: 1, Y: 1, Z: 1},
	}
	assert.Empty(t, ValidateDevice(&good))

	bad := good
	bad.Name = ""
	bad.CompletionDate = "yesterday"
	bad.Cores = 0
	bad.Speeds.Multi = -1
	bad.Scores = map[string]*float64{"rcbsp": num(-5)}
	problems := ValidateDevice(&bad)
	assert.Contains(t, problems, "name")
	assert.Contains(t, problems, "completionDate")
	assert.Contains(t, problems, "cores")
	assert.Contains(t, problems, "multiSpeed")
	assert.Contains(t, problems, "rcbsp")
}

func TestScatterPoints(t *testing.T) {
	c := freshCatalog()
	points := c.ScatterPoints()
	// Default axes volume/multiSpeed are always measured, radius metric
	// is cores.
	require.Len(t, points, 5)

	var maxCores, maxRadius float64
	for _, p := range points {
		if *p.RValue > maxCores {
			maxCores, maxRadius = *p.RValue, p.Radius
		}
		assert.GreaterOrEqual(t, p.Radius, 5.0)
		assert.LessOrEqual(t, p.Radius, 25.0)
	}
	assert.Equal(t, 256.0, maxCores, "seed GPU has the most cores")
	assert.Equal(t, 25.0, maxRadius, "largest bubble gets the full radius")
}

func TestStatistics(t *testing.T) {
	c := freshCatalog()
	stats := c.Statistics()
	assert.Equal(t, 5, stats.TotalDevices)
	assert.Equal(t, 5, stats.UniqueCreators)
	assert.Equal(t, len(defaultTags()), stats.TotalTags)
	require.NotNil(t, stats.TopSpeedDevice)
	assert.Equal(t, "Quantum Core X9 CPU", stats.TopSpeedDevice.Name)
	require.NotNil(t, stats.MostCompactDevice)
	assert.Equal(t, "MyFirstCPU", stats.MostCompactDevice.Name)
	assert.Equal(t, map[string]int{"Java": 4, "Bedrock": 1}, stats.EditionDistribution)
	require.NotEmpty(t, stats.TagUsage)
	assert.Equal(t, "CPU", stats.TagUsage[0].Tag)
	assert.Equal(t, 4, stats.TagUsage[0].Count)
}
