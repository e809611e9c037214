package main

// Volume is the physical footprint of a device in blocks.
type Volume struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Total returns the computed block volume. Never stored, always derived.
func (v Volume) Total() int {
	return v.X * v.Y * v.Z
}

// Speeds in operations per second. Multi and single are mandatory
// measurements, branch is optional (nil = not measured).
type Speeds struct {
	Multi  float64  `json:"multi"`
	Single float64  `json:"single"`
	Branch *float64 `json:"branch"`
}

// Device is one cataloged CPU/GPU entry.
type Device struct {
	Id                int                 `json:"id"`
	Creator           string              `json:"creator"`
	Name              string              `json:"name"`
	Scores            map[string]*float64 `json:"scores"`
	Speeds            Speeds              `json:"speeds"`
	Microarchitecture string              `json:"microarchitecture"`
	Description       string              `json:"description"`
	MinecraftEdition  string              `json:"minecraftEdition"`
	Bit               int                 `json:"bit"`
	Threads           int                 `json:"threads"`
	Cores             int                 `json:"cores"`
	Volume            Volume              `json:"volume"`
	CompletionDate    string              `json:"completionDate"`
	Tags              []string            `json:"tags"`
	IsFavorite        bool                `json:"isFavorite"`
}

// HasTag reports whether the device carries the given tag name.
func (d *Device) HasTag(name string) bool {
	for _, t := range d.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Interface to our storage backend: a string-keyed blob store. One blob
// per settings domain plus one for the record list and one for the tag
// registry, each under a versioned key.
type BlobStore interface {
	// Get the blob stored under key. Second value is false if the key
	// does not exist.
	Get(key string) (string, bool)

	// Put stores value under key, replacing any previous blob.
	Put(key, value string) error

	// Delete removes the key. Removing a non-existent key is not an error.
	Delete(key string) error
}

// The versioned blob keys. The version suffix changes whenever the
// serialized shape changes incompatibly; unknown old keys are simply
// left behind.
const (
	kDataKey             = "chipOrgData_v2_5_scores"
	kTagsKey             = "chipOrgTags_v1"
	kSortKey             = "chipOrgSortState_v2_4_favorite"
	kFavoriteFilterKey   = "chipOrgFavoriteFilterState_v2_4"
	kColumnVisibilityKey = "chipOrgColumnVisibility_v1"
	kChartVisibilityKey  = "chipOrgChartVisibility_v1"
	kThemeKey            = "chipOrgTheme_v1"
	kScatterKey          = "chipOrgScatterSettings_v1"
	kScoreSettingsKey    = "chipOrgScoreSettings_v2"
	kPaginationKey       = "chipOrgPaginationSettings_v1"
	kPreviewKey          = "chipOrgPreviewSettings_v1"
	kTourKey             = "chipOrgTourCompleted_v2"
)

// settingsKeys are the keys wiped by a full settings reset. The record
// list and the tag registry deliberately survive a reset.
var settingsKeys = []string{
	kSortKey, kFavoriteFilterKey, kColumnVisibilityKey, kChartVisibilityKey,
	kThemeKey, kScatterKey, kScoreSettingsKey, kPaginationKey,
	kPreviewKey, kTourKey,
}
