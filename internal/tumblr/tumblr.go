package tumblr

import (
	"context"
	"net/url"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/pkg/errors"
)

// ErrNotFound is returned when the API answers 404 for a posts query.
var ErrNotFound = errors.ErrNotFound

//go:generate go run go.uber.org/mock/mockgen -source=tumblr.go -destination=mocks/mock.go
type Client interface {
	// QueryPosts queries the photo posts endpoint. filter=raw is always set.
	QueryPosts(ctx context.Context, params url.Values) ([]domain.RawPost, error)

	// PostsCount returns the total number of posts of the blog.
	PostsCount(ctx context.Context) (int, error)
}
