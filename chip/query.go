// Query pipeline: text filter -> tag filter -> favorite filter ->
// stable sort -> pagination. The output is the page the table shows.
package main

import (
	"sort"
	"strings"
	"time"
)

type PageView struct {
	Items []Device `json:"items"`

	// Counts the pagination control needs: matches after filtering and
	// the size of the whole catalog (to tell "no data" from "no match").
	TotalItems      int `json:"totalItems"`
	TotalUnfiltered int `json:"totalUnfiltered"`

	Page         int `json:"page"`
	TotalPages   int `json:"totalPages"`
	ItemsPerPage int `json:"itemsPerPage"`

	// "no-data", "no-match" or empty when there are items.
	EmptyState string `json:"emptyState,omitempty"`

	Sort      SortState `json:"sort"`
	ScoreType string    `json:"scoreType"`
	SpeedType string    `json:"speedType"`
}

// PageView runs the pipeline over the current records and state. If
// filtering shrank the result below the current page, the page is
// clamped to the last valid one (and the clamp sticks).
func (c *Catalog) PageView() PageView {
	c.lock.Lock()
	defer c.lock.Unlock()

	filtered := c.filteredDevicesLocked()
	c.sortDevicesLocked(filtered)

	totalItems := len(filtered)
	totalPages := (totalItems + c.itemsPerPage - 1) / c.itemsPerPage
	if c.currentPage > totalPages && totalPages > 0 {
		c.currentPage = totalPages
	}

	start := (c.currentPage - 1) * c.itemsPerPage
	end := start + c.itemsPerPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	view := PageView{
		Items:           filtered[start:end],
		TotalItems:      totalItems,
		TotalUnfiltered: len(c.devices),
		Page:            c.currentPage,
		TotalPages:      totalPages,
		ItemsPerPage:    c.itemsPerPage,
		Sort:            c.sortState,
		ScoreType:       c.currentScoreType,
		SpeedType:       c.currentSpeedType,
	}
	if len(view.Items) == 0 {
		if len(c.devices) == 0 {
			view.EmptyState = "no-data"
		} else {
			view.EmptyState = "no-match"
		}
	}
	return view
}

// filteredDevicesLocked returns copies of all devices passing the text,
// tag and favorite filters, in underlying list order.
func (c *Catalog) filteredDevicesLocked() []Device {
	term := strings.ToLower(strings.TrimSpace(c.searchTerm))
	result := make([]Device, 0, len(c.devices))
	for i := range c.devices {
		d := &c.devices[i]
		if term != "" {
			haystack := strings.ToLower(d.Creator + " " + d.Name + " " + d.Microarchitecture)
			if !strings.Contains(haystack, term) {
				continue
			}
		}
		if !hasAllTags(d, c.filterTags) {
			continue
		}
		if c.favoriteFilter && !d.IsFavorite {
			continue
		}
		result = append(result, *d)
	}
	return result
}

// hasAllTags: every selected filter tag must be present (AND semantics);
// an empty selection matches everything.
func hasAllTags(d *Device, tags []string) bool {
	for _, tag := range tags {
		if !d.HasTag(tag) {
			return false
		}
	}
	return true
}

// sortDevicesLocked sorts in place by the active sort column. The sort
// is stable so that equal keys keep their underlying order. Without an
// active order the list reverts to ascending id.
func (c *Catalog) sortDevicesLocked(list []Device) {
	if c.sortState.Column == "" || c.sortState.Order == "none" || c.sortState.Order == "" {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Id < list[j].Id
		})
		return
	}
	descending := c.sortState.Order == "desc"
	sort.SliceStable(list, func(i, j int) bool {
		cmp := c.compareForSortLocked(&list[i], &list[j])
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func (c *Catalog) compareForSortLocked(a, b *Device) int {
	switch c.sortState.Column {
	case "creator":
		return compareFold(a.Creator, b.Creator)
	case "name":
		return compareFold(a.Name, b.Name)
	case "minecraftEdition":
		return compareFold(a.MinecraftEdition, b.MinecraftEdition)
	case "microarchitecture":
		return compareFold(a.Microarchitecture, b.Microarchitecture)
	case "scores":
		// Sorts by the currently shown score metric; unmeasured
		// floats to the bottom in ascending order.
		return compareFloats(scoreOrMin(a.Scores[c.currentScoreType]),
			scoreOrMin(b.Scores[c.currentScoreType]))
	case "speeds":
		return compareFloats(c.speedValueLocked(a), c.speedValueLocked(b))
	case "cores":
		return compareFloats(float64(a.Cores), float64(b.Cores))
	case "threads":
		return compareFloats(float64(a.Threads), float64(b.Threads))
	case "bit":
		return compareFloats(float64(a.Bit), float64(b.Bit))
	case "volume":
		return compareFloats(float64(a.Volume.Total()), float64(b.Volume.Total()))
	case "completionDate":
		return compareDateStrings(a.CompletionDate, b.CompletionDate)
	}
	return 0
}

func (c *Catalog) speedValueLocked(d *Device) float64 {
	switch c.currentSpeedType {
	case "single":
		return d.Speeds.Single
	case "branch":
		// The only optional speed; unmeasured sorts like the
		// unmeasured scores.
		return scoreOrMin(d.Speeds.Branch)
	default:
		return d.Speeds.Multi
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareDateStrings(a, b string) int {
	ta := parseCompletionDate(a)
	tb := parseCompletionDate(b)
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}

// parseCompletionDate parses a YYYY-MM-DD date. Unparsable dates sort
// as the zero time, i.e. before everything real.
func parseCompletionDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
