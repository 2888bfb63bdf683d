package selection

import (
	"context"
	"errors"

	"github.com/orgball2608/hony-redirect/internal/domain"
)

// ErrNoLongPost is returned when the draw limit is reached before a long post came up.
var ErrNoLongPost = errors.New("no long post found within the draw limit")

// Client picks posts. A nil post with a nil error means nothing matched.
//
//go:generate go run go.uber.org/mock/mockgen -source=selection.go -destination=mocks/mock.go
type Client interface {
	RandomPost(ctx context.Context, total int) (*domain.Post, error)
	RandomLongPost(ctx context.Context, total int) (*domain.Post, error)
	PostByID(ctx context.Context, id int64) (*domain.Post, error)
	NthPreviousPost(ctx context.Context, post domain.Post, n int) (*domain.Post, error)
	PostsBefore(ctx context.Context, timestamp int64) ([]domain.Post, error)
	FirstPost(ctx context.Context, id int64) (*domain.Post, error)
	NextPost(ctx context.Context, id int64) (*domain.Post, error)
}
