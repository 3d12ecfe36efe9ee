// Package filter implements publish-date filtering and ordering of feed items.
package filter

import (
	"fmt"
	"sort"
	"time"

	"rssimages/internal/model"
)

// cutoffLayout is the date format accepted on the command line.
const cutoffLayout = "2006/01/02"

// ParseCutoff parses a YYYY/MM/DD cutoff date as midnight UTC.
func ParseCutoff(s string) (time.Time, error) {
	t, err := time.Parse(cutoffLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff date %q (want YYYY/MM/DD): %w", s, err)
	}
	return t.UTC(), nil
}

// After returns the items published strictly after cutoff. Items published
// exactly at the cutoff are excluded. A nil cutoff keeps every item.
func After(items []model.Item, cutoff *time.Time) []model.Item {
	if cutoff == nil {
		return items
	}
	var kept []model.Item
	for _, item := range items {
		if item.PublishedAt.After(*cutoff) {
			kept = append(kept, item)
		}
	}
	return kept
}

// SortNewestFirst orders items by descending publish time, in place.
// The sort is stable so items sharing a timestamp keep their feed order.
func SortNewestFirst(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
