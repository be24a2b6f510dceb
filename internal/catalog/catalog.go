// Package catalog holds the deduplicated, insertion-ordered set of variants
// fetched during a session.
package catalog

import (
	"iter"
	"strings"

	"github.com/ebubekirbastama/trendyol-color-variants-viewer/internal/trendyol"
)

// MergeReport summarises one merge cycle for status display.
type MergeReport struct {
	Added   int
	Skipped int
}

// Collection is an ordered list of products with duplicate protection by
// ProductID. First write wins: a record whose id is already present is
// dropped and only counted. Collection is not safe for concurrent use; the
// UI mutates it on the foreground thread only.
type Collection struct {
	items []trendyol.Product
	seen  map[string]struct{}
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{seen: make(map[string]struct{})}
}

// Merge appends every incoming record whose ProductID is new, preserving
// the incoming order, and reports how many were added and skipped.
func (c *Collection) Merge(incoming []trendyol.Product) MergeReport {
	var report MergeReport
	for _, p := range incoming {
		if _, ok := c.seen[p.ProductID]; ok {
			report.Skipped++
			continue
		}
		c.seen[p.ProductID] = struct{}{}
		c.items = append(c.items, p)
		report.Added++
	}
	return report
}

// Len reports the number of records held.
func (c *Collection) Len() int { return len(c.items) }

// Items returns a snapshot copy of the collection in insertion order.
func (c *Collection) Items() []trendyol.Product {
	snapshot := make([]trendyol.Product, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Clear resets the collection to empty.
func (c *Collection) Clear() {
	c.items = nil
	c.seen = make(map[string]struct{})
}

// Matches yields the records whose name, ProductID, or barcode contains the
// query, case-insensitively, in insertion order. An empty query yields the
// full collection. The sequence is restartable and never mutates the
// collection.
func (c *Collection) Matches(query string) iter.Seq[trendyol.Product] {
	needle := strings.ToLower(strings.TrimSpace(query))
	return func(yield func(trendyol.Product) bool) {
		for _, p := range c.items {
			if needle != "" && !matches(p, needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matches(p trendyol.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.ProductID), needle) ||
		strings.Contains(strings.ToLower(p.Barcode), needle)
}
