// Form validation and cleanup for submitted device records. Validation
// failures map field name -> message so the form can mark fields
// inline; any failure blocks the submission entirely.
package main

import (
	"fmt"
	"strings"
)

func cleanString(input string) string {
	result := strings.TrimSpace(input)
	return strings.Replace(result, "\r\n", "\n", -1)
}

func cleanupDevice(d *Device) {
	d.Creator = cleanString(d.Creator)
	d.Name = cleanString(d.Name)
	d.Microarchitecture = cleanString(d.Microarchitecture)
	d.Description = cleanString(d.Description)
	d.MinecraftEdition = cleanString(d.MinecraftEdition)
	d.CompletionDate = cleanString(d.CompletionDate)
}

func ValidateDevice(d *Device) map[string]string {
	problems := make(map[string]string)
	requireText := func(field, value string) {
		if value == "" {
			problems[field] = "required"
		}
	}
	requirePositive := func(field string, value int) {
		if value < 1 {
			problems[field] = "must be a positive integer"
		}
	}

	requireText("creator", d.Creator)
	requireText("name", d.Name)
	requireText("microarchitecture", d.Microarchitecture)
	requireText("minecraftEdition", d.MinecraftEdition)

	if d.CompletionDate == "" {
		problems["completionDate"] = "required"
	} else if parseCompletionDate(d.CompletionDate).IsZero() {
		problems["completionDate"] = "not a valid date (YYYY-MM-DD)"
	}

	if d.Speeds.Multi < 0 {
		problems["multiSpeed"] = "must not be negative"
	}
	if d.Speeds.Single < 0 {
		problems["singleSpeed"] = "must not be negative"
	}
	if d.Speeds.Branch != nil && *d.Speeds.Branch < 0 {
		problems["branchSpeed"] = "must not be negative"
	}

	requirePositive("cores", d.Cores)
	requirePositive("threads", d.Threads)
	requirePositive("bit", d.Bit)
	requirePositive("volumeX", d.Volume.X)
	requirePositive("volumeY", d.Volume.Y)
	requirePositive("volumeZ", d.Volume.Z)

	for _, key := range scoreKeys {
		if v := d.Scores[key]; v != nil && *v < 0 {
			problems[key] = "must not be negative"
		}
	}
	return problems
}

// ValidateThresholds checks a full set of score threshold settings
// before they replace the active ones.
func ValidateThresholds(settings map[string]ScoreThreshold) error {
	for _, key := range scoreKeys {
		t, ok := settings[key]
		if !ok {
			return fmt.Errorf("missing thresholds for %s", key)
		}
		if t.HighThreshold < 0 || t.MediumThreshold < 0 {
			return fmt.Errorf("%s: thresholds must not be negative", key)
		}
	}
	return nil
}
