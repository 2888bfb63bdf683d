package domain

import (
	"encoding/json"
	"fmt"

	"github.com/orgball2608/hony-redirect/pkg/errors"
)

// ParsePost extracts the post fields verbatim. Every field is required.
func ParsePost(raw RawPost) (Post, error) {
	var post Post
	fields := []struct {
		name string
		dst  any
	}{
		{"post_url", &post.PostURL},
		{"caption", &post.Caption},
		{"timestamp", &post.Timestamp},
		{"slug", &post.Slug},
	}

	for _, f := range fields {
		value, ok := raw[f.name]
		if !ok {
			return Post{}, errors.Wrap(errors.ErrMissingField, f.name)
		}
		if err := json.Unmarshal(value, f.dst); err != nil {
			return Post{}, fmt.Errorf("failed to decode post field %s: %w", f.name, err)
		}
	}

	return post, nil
}

// ParsePosts parses raws keeping their order.
func ParsePosts(raws []RawPost) ([]Post, error) {
	posts := make([]Post, 0, len(raws))
	for i, raw := range raws {
		post, err := ParsePost(raw)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}
