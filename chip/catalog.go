// The Catalog is the single source of truth during a session: the device
// list, the tag registry and every settings domain live here. Setters
// just replace the named slot; persisting and re-querying is up to the
// caller (the handlers), mirroring how the settings blobs are one
// concern and the view another.
package main

import (
	"sync"
)

type Catalog struct {
	lock  sync.Mutex
	blobs BlobStore

	devices []Device
	tags    []string

	// Display cursors: which score/speed metric the table currently
	// shows and sorts by. Session-only, not persisted.
	currentScoreType string
	currentSpeedType string

	// Filter/sort/selection state. Selection and tag filter are held
	// here, never read back from rendered UI.
	sortState      SortState
	searchTerm     string
	filterTags     []string
	favoriteFilter bool
	selectedIds    []int
	currentPage    int
	itemsPerPage   int

	columnVisibility map[string]bool
	chartVisibility  map[string]bool
	scatterSettings  ScatterSettings
	scoreSettings    map[string]ScoreThreshold
	previewSettings  map[string]bool
	theme            string
	tourCompleted    bool
}

func NewCatalog(blobs BlobStore) *Catalog {
	c := &Catalog{
		blobs:            blobs,
		currentScoreType: scoreKeys[0],
		currentSpeedType: speedKeys[0],
		currentPage:      1,
	}
	c.loadAll()
	return c
}

func (c *Catalog) findDevice(id int) *Device {
	for i := range c.devices {
		if c.devices[i].Id == id {
			return &c.devices[i]
		}
	}
	return nil
}

func (c *Catalog) hasDeviceId(id int) bool {
	return c.findDevice(id) != nil
}

// FindById returns a copy of the device, or nil if it does not exist.
func (c *Catalog) FindById(id int) *Device {
	c.lock.Lock()
	defer c.lock.Unlock()
	if d := c.findDevice(id); d != nil {
		copy := *d
		return &copy
	}
	return nil
}

func (c *Catalog) Tags() []string {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]string{}, c.tags...)
}

func (c *Catalog) SetSearchTerm(term string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.searchTerm = term
}

func (c *Catalog) SetFilterTags(tags []string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.filterTags = tags
}

func (c *Catalog) SetSelectedIds(ids []int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.selectedIds = ids
}

func (c *Catalog) SelectedIds() []int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]int{}, c.selectedIds...)
}

func (c *Catalog) SetPage(page int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if page < 1 {
		page = 1
	}
	c.currentPage = page
}

func (c *Catalog) SetItemsPerPage(count int) {
	c.lock.Lock()
	defer c.lock.Unlock()
	// Page math divides by this, so a non-positive size can never be
	// installed.
	if count < 1 {
		count = kDefaultItemsPerPage
	}
	c.itemsPerPage = count
}

// ToggleFavoriteFilter flips the favorite-only filter and returns the
// new state.
func (c *Catalog) ToggleFavoriteFilter() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.favoriteFilter = !c.favoriteFilter
	return c.favoriteFilter
}

// CycleSort advances the sort state for a column: selecting a new column
// starts ascending; re-selecting the active column steps
// asc -> desc -> none -> asc.
func (c *Catalog) CycleSort(column string) SortState {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.sortState.Column == column {
		switch c.sortState.Order {
		case "asc":
			c.sortState.Order = "desc"
		case "desc":
			c.sortState.Order = "none"
		default:
			c.sortState.Order = "asc"
		}
	} else {
		c.sortState = SortState{Column: column, Order: "asc"}
	}
	return c.sortState
}

func (c *Catalog) SortState() SortState {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.sortState
}

// CycleScoreType advances the score display cursor to the next RCB
// category and returns it.
func (c *Catalog) CycleScoreType() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.currentScoreType = nextKey(scoreKeys, c.currentScoreType)
	return c.currentScoreType
}

// CycleSpeedType advances the speed display cursor (multi -> single ->
// branch) and returns it.
func (c *Catalog) CycleSpeedType() string {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.currentSpeedType = nextKey(speedKeys, c.currentSpeedType)
	return c.currentSpeedType
}

func nextKey(keys []string, current string) string {
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// ScatterSettingsValue returns the current scatter axis selection.
func (c *Catalog) ScatterSettingsValue() ScatterSettings {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.scatterSettings
}

// PreviewSettings returns a copy of the hover-preview visibility flags.
func (c *Catalog) PreviewSettings() map[string]bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return copyFlags(c.previewSettings)
}

func copyFlags(flags map[string]bool) map[string]bool {
	result := make(map[string]bool, len(flags))
	for k, v := range flags {
		result[k] = v
	}
	return result
}

// ScoreSettings returns a copy of the per-metric threshold settings.
func (c *Catalog) ScoreSettings() map[string]ScoreThreshold {
	c.lock.Lock()
	defer c.lock.Unlock()
	settings := make(map[string]ScoreThreshold, len(c.scoreSettings))
	for k, v := range c.scoreSettings {
		settings[k] = v
	}
	return settings
}
