package catalog

import (
	"strings"

	"github.com/osse101/SpinVault_Go/internal/domain"
)

// Catalog is the immutable, merged set of item descriptors.
type Catalog struct {
	items       []domain.ItemDescriptor
	byID        map[domain.ItemID]int
	fingerprint string
}

// New builds a catalog from descriptors in order. When an id repeats,
// the first occurrence wins and later ones are dropped.
func New(items ...domain.ItemDescriptor) *Catalog {
	c := &Catalog{
		items: make([]domain.ItemDescriptor, 0, len(items)),
		byID:  make(map[domain.ItemID]int, len(items)),
	}
	for _, item := range items {
		c.add(item)
	}
	return c
}

// add appends item unless its id is already present.
func (c *Catalog) add(item domain.ItemDescriptor) bool {
	if _, exists := c.byID[item.ID]; exists {
		return false
	}
	c.byID[item.ID] = len(c.items)
	c.items = append(c.items, item)
	return true
}

// Lookup returns the descriptor for id.
func (c *Catalog) Lookup(id domain.ItemID) (domain.ItemDescriptor, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.ItemDescriptor{}, false
	}
	return c.items[idx], true
}

// All returns every descriptor in load order. The slice is a copy.
func (c *Catalog) All() []domain.ItemDescriptor {
	out := make([]domain.ItemDescriptor, len(c.items))
	copy(out, c.items)
	return out
}

// Eligible returns the items that can be shown and awarded, in load order.
func (c *Catalog) Eligible() []domain.ItemDescriptor {
	out := make([]domain.ItemDescriptor, 0, len(c.items))
	for _, item := range c.items {
		if Eligible(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of distinct items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Fingerprint identifies the feed contents the catalog was built from.
// It is empty for catalogs built with New.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Eligible reports whether an item has real artwork. Items without an
// image, or whose image is a placeholder, are never pooled or listed.
func Eligible(item domain.ItemDescriptor) bool {
	return item.ImageRef != "" && !strings.Contains(item.ImageRef, PlaceholderSentinel)
}
