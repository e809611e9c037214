// Record lifecycle: create, merge-edit, multi-delete, favorite toggle,
// and the JSON import/export pair.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
)

// nextIdLocked picks max existing id + 1 and probes upward until free,
// so a new record can never collide even after deletions reopened
// lower ids.
func (c *Catalog) nextIdLocked() int {
	id := 1
	for i := range c.devices {
		if c.devices[i].Id >= id {
			id = c.devices[i].Id + 1
		}
	}
	for c.hasDeviceId(id) {
		id++
	}
	return id
}

// normalizeScores reduces a score map to exactly the canonical keys.
func normalizeScores(scores map[string]*float64) map[string]*float64 {
	normalized := make(map[string]*float64, len(scoreKeys))
	for _, key := range scoreKeys {
		normalized[key] = scores[key]
	}
	return normalized
}

// AddDevice inserts a new record. Id is assigned here, favorite always
// starts off.
func (c *Catalog) AddDevice(d Device) Device {
	c.lock.Lock()
	defer c.lock.Unlock()
	d.Id = c.nextIdLocked()
	d.IsFavorite = false
	d.Scores = normalizeScores(d.Scores)
	if d.Tags == nil {
		d.Tags = []string{}
	}
	c.devices = append(c.devices, d)
	c.saveDevicesLocked()
	return d
}

// UpdateDevice merges the submitted fields over the existing record.
// Id and favorite flag are preserved.
func (c *Catalog) UpdateDevice(id int, d Device) (Device, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	existing := c.findDevice(id)
	if existing == nil {
		return Device{}, fmt.Errorf("no device with id %d", id)
	}
	d.Id = id
	d.IsFavorite = existing.IsFavorite
	d.Scores = normalizeScores(d.Scores)
	if d.Tags == nil {
		d.Tags = []string{}
	}
	*existing = d
	c.saveDevicesLocked()
	return d, nil
}

// DeleteSelected removes every record in the selection set and clears
// the selection. Returns how many records went away.
func (c *Catalog) DeleteSelected() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	selected := make(map[int]bool, len(c.selectedIds))
	for _, id := range c.selectedIds {
		selected[id] = true
	}
	kept := c.devices[:0]
	for i := range c.devices {
		if !selected[c.devices[i].Id] {
			kept = append(kept, c.devices[i])
		}
	}
	deleted := len(c.devices) - len(kept)
	c.devices = kept
	c.selectedIds = nil
	if deleted > 0 {
		c.saveDevicesLocked()
	}
	return deleted
}

func (c *Catalog) ToggleFavorite(id int) (Device, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	d := c.findDevice(id)
	if d == nil {
		return Device{}, fmt.Errorf("no device with id %d", id)
	}
	d.IsFavorite = !d.IsFavorite
	c.saveDevicesLocked()
	return *d, nil
}

// ImportDevices replaces the whole record list with the parsed file
// content. Validation is deliberately minimal: it must be a JSON array,
// and a non-empty one must at least look like device records (first
// element carries id and name). Everything else is handled by the
// regular sanitization. Nothing changes on a rejected import.
func (c *Catalog) ImportDevices(data []byte) (int, error) {
	var imported []Device
	if err := json.Unmarshal(data, &imported); err != nil {
		return 0, errors.New("not a JSON array of device records")
	}
	if len(imported) > 0 && (imported[0].Id == 0 || imported[0].Name == "") {
		return 0, errors.New("records are missing id or name")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.devices = sanitizeDevices(imported)
	c.selectedIds = nil
	c.saveDevicesLocked()
	return len(c.devices), nil
}

// ExportSelected serializes the currently selected records,
// pretty-printed, in catalog order.
func (c *Catalog) ExportSelected() ([]byte, int, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if len(c.selectedIds) == 0 {
		return nil, 0, errors.New("no devices selected")
	}
	selected := make(map[int]bool, len(c.selectedIds))
	for _, id := range c.selectedIds {
		selected[id] = true
	}
	toExport := make([]Device, 0, len(c.selectedIds))
	for i := range c.devices {
		if selected[c.devices[i].Id] {
			toExport = append(toExport, c.devices[i])
		}
	}
	if len(toExport) == 0 {
		return nil, 0, errors.New("selected devices no longer exist")
	}
	data, err := json.MarshalIndent(toExport, "", "  ")
	if err != nil {
		return nil, 0, err
	}
	return data, len(toExport), nil
}
