// Package model defines the domain types used across the application.
package model

import "time"

// Item represents a single post from the blog feed. The URL is the post's
// only identity; PublishedAt is normalized to UTC by the feed reader.
type Item struct {
	URL         string
	PublishedAt time.Time
}
