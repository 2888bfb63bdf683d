package domain

import (
	"encoding/json"
	"time"
)

// Post is one photo post of the blog, built from a single upstream post object.
type Post struct {
	PostURL   string
	Caption   string
	Timestamp int64 // seconds since epoch
	Slug      string
}

// PublishedAt returns the publish time of the post.
func (p Post) PublishedAt() time.Time {
	return time.Unix(p.Timestamp, 0)
}

// RawPost is an upstream post object with its fields left undecoded.
type RawPost map[string]json.RawMessage
