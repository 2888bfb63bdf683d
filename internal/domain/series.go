package domain

import (
	"regexp"
	"strconv"
)

// seriesMarker matches the "(n/m)" position marker authors put in captions.
var seriesMarker = regexp.MustCompile(`\((\d{1,2})/(\d{1,2})\)`)

// SeriesPosition returns n from the first "(n/m)" marker of the caption.
func SeriesPosition(post Post) (int, bool) {
	m := seriesMarker.FindStringSubmatch(post.Caption)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FindFollowingPost scans a newest-first list for current and returns the
// entry just before it, which is the post published right after current.
// The match must sit at index 2 or later.
func FindFollowingPost(posts []Post, current Post) *Post {
	for i, p := range posts {
		if p == current && (i-1) > 0 {
			following := posts[i-1]
			return &following
		}
	}
	return nil
}
