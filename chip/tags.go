// Tag registry. Tag names are denormalized into every record, so
// rename and delete cascade over the whole device list before anything
// is persisted. Uniqueness is case-insensitive.
package main

import (
	"fmt"
	"strings"
)

func (c *Catalog) tagExistsLocked(name string, ignore string) bool {
	for _, t := range c.tags {
		if t == ignore {
			continue
		}
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func (c *Catalog) AddTag(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.tagExistsLocked(name, "") {
		return fmt.Errorf("tag %q already exists", name)
	}
	c.tags = append(c.tags, name)
	c.saveTagsLocked()
	return nil
}

// RenameTag updates the registry entry and rewrites the tag in every
// record that carries it. Either the whole rename happens or none of it.
func (c *Catalog) RenameTag(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	index := -1
	for i, t := range c.tags {
		if t == oldName {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("no tag %q", oldName)
	}
	// A pure case change of the same tag is fine; clashing with any
	// other tag is not.
	if !strings.EqualFold(oldName, newName) && c.tagExistsLocked(newName, oldName) {
		return fmt.Errorf("tag %q already exists", newName)
	}
	c.tags[index] = newName
	for i := range c.devices {
		for j, t := range c.devices[i].Tags {
			if t == oldName {
				c.devices[i].Tags[j] = newName
			}
		}
	}
	c.saveTagsLocked()
	c.saveDevicesLocked()
	return nil
}

// DeleteTag removes the tag from the registry and strips it from every
// record. Reports whether the tag existed.
func (c *Catalog) DeleteTag(name string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	kept := c.tags[:0]
	found := false
	for _, t := range c.tags {
		if t == name {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return false
	}
	c.tags = kept
	for i := range c.devices {
		tags := c.devices[i].Tags[:0]
		for _, t := range c.devices[i].Tags {
			if t != name {
				tags = append(tags, t)
			}
		}
		c.devices[i].Tags = tags
	}
	c.saveTagsLocked()
	c.saveDevicesLocked()
	return true
}
