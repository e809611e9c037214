// Dataset statistics for the statistics view.
package main

import (
	"sort"
)

type DeviceValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type Statistics struct {
	TotalDevices   int `json:"totalDevices"`
	UniqueCreators int `json:"uniqueCreators"`
	TotalTags      int `json:"totalTags"`

	AvgMultiSpeed *float64 `json:"avgMultiSpeed"`
	AvgVolume     *float64 `json:"avgVolume"`

	TopSpeedDevice    *DeviceValue `json:"topSpeedDevice"`
	MostCompactDevice *DeviceValue `json:"mostCompactDevice"`

	EditionDistribution map[string]int `json:"editionDistribution"`
	TagUsage            []TagCount     `json:"tagUsage"` // top 10, most used first
}

func (c *Catalog) Statistics() Statistics {
	c.lock.Lock()
	defer c.lock.Unlock()

	stats := Statistics{
		TotalDevices:        len(c.devices),
		TotalTags:           len(c.tags),
		EditionDistribution: make(map[string]int),
	}

	creators := make(map[string]bool)
	tagUsage := make(map[string]int)
	var totalMultiSpeed, totalVolume float64
	var volumeCount int

	for i := range c.devices {
		d := &c.devices[i]
		creators[d.Creator] = true
		totalMultiSpeed += d.Speeds.Multi
		if d.Speeds.Multi > 0 &&
			(stats.TopSpeedDevice == nil || d.Speeds.Multi > stats.TopSpeedDevice.Value) {
			stats.TopSpeedDevice = &DeviceValue{Name: d.Name, Value: d.Speeds.Multi}
		}
		volume := d.Volume.Total()
		if volume > 0 {
			totalVolume += float64(volume)
			volumeCount++
			if stats.MostCompactDevice == nil || float64(volume) < stats.MostCompactDevice.Value {
				stats.MostCompactDevice = &DeviceValue{Name: d.Name, Value: float64(volume)}
			}
		}
		edition := d.MinecraftEdition
		if edition == "" {
			edition = "unknown"
		}
		stats.EditionDistribution[edition]++
		for _, tag := range d.Tags {
			tagUsage[tag]++
		}
	}

	stats.UniqueCreators = len(creators)
	if len(c.devices) > 0 {
		avg := totalMultiSpeed / float64(len(c.devices))
		stats.AvgMultiSpeed = &avg
	}
	if volumeCount > 0 {
		avg := totalVolume / float64(volumeCount)
		stats.AvgVolume = &avg
	}

	for tag, count := range tagUsage {
		stats.TagUsage = append(stats.TagUsage, TagCount{Tag: tag, Count: count})
	}
	sort.SliceStable(stats.TagUsage, func(i, j int) bool {
		if stats.TagUsage[i].Count != stats.TagUsage[j].Count {
			return stats.TagUsage[i].Count > stats.TagUsage[j].Count
		}
		return stats.TagUsage[i].Tag < stats.TagUsage[j].Tag
	})
	if len(stats.TagUsage) > 10 {
		stats.TagUsage = stats.TagUsage[:10]
	}
	return stats
}

// ScatterPoint is one bubble in the performance scatter plot. Radius is
// scaled 5..25 against the largest radius metric value in the set.
type ScatterPoint struct {
	DeviceId int      `json:"deviceId"`
	Name     string   `json:"name"`
	Creator  string   `json:"creator"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	RValue   *float64 `json:"rValue"`
	Radius   float64  `json:"radius"`
}

// ScatterPoints extracts one point per device for the currently
// selected axes, skipping devices where either axis is unmeasured.
func (c *Catalog) ScatterPoints() []ScatterPoint {
	c.lock.Lock()
	defer c.lock.Unlock()

	points := make([]ScatterPoint, 0, len(c.devices))
	maxR := 0.0
	for i := range c.devices {
		d := &c.devices[i]
		x, okX := AxisValue(d, c.scatterSettings.X)
		y, okY := AxisValue(d, c.scatterSettings.Y)
		if !okX || !okY {
			continue
		}
		p := ScatterPoint{DeviceId: d.Id, Name: d.Name, Creator: d.Creator, X: x, Y: y}
		if r, ok := AxisValue(d, c.scatterSettings.R); ok {
			p.RValue = &r
			if r > maxR {
				maxR = r
			}
		}
		points = append(points, p)
	}
	for i := range points {
		points[i].Radius = 5
		if points[i].RValue != nil && maxR > 0 {
			points[i].Radius = 5 + (*points[i].RValue/maxR)*20
		}
	}
	return points
}
