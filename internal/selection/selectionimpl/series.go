package selectionimpl

import (
	"context"
	"net/url"
	"strconv"

	"github.com/orgball2608/hony-redirect/internal/domain"
)

// followingWindow is how far after a post NextPost looks for its successor.
const followingWindow = 24 * 60 * 60

func (s *SelectionImpl) PostByID(ctx context.Context, id int64) (*domain.Post, error) {
	raws, err := s.queryRaw(ctx, url.Values{"id": {strconv.FormatInt(id, 10)}})
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		s.logger.Info("Post not found", "id", id)
		return nil, nil
	}
	return parseAt(raws, 0)
}

// NthPreviousPost returns the post published n posts before post.
func (s *SelectionImpl) NthPreviousPost(ctx context.Context, post domain.Post, n int) (*domain.Post, error) {
	if n <= 0 {
		return &post, nil
	}

	raws, err := s.queryRaw(ctx, url.Values{
		"before": {strconv.FormatInt(post.Timestamp-1, 10)},
		"limit":  {strconv.Itoa(n)},
	})
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, nil
	}
	return parseAt(raws, len(raws)-1)
}

// PostsBefore returns every post published before timestamp, newest first.
func (s *SelectionImpl) PostsBefore(ctx context.Context, timestamp int64) ([]domain.Post, error) {
	raws, err := s.queryRaw(ctx, url.Values{"before": {strconv.FormatInt(timestamp, 10)}})
	if err != nil {
		return nil, err
	}
	return domain.ParsePosts(raws)
}

// FirstPost resolves the first post of the series the given post belongs to.
func (s *SelectionImpl) FirstPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.PostByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	position, ok := domain.SeriesPosition(*post)
	if !ok {
		s.logger.Info("Post is not part of a series", "id", id, "slug", post.Slug)
		return nil, nil
	}
	s.logger.Debug("Parsed series position", "id", id, "position", position)

	return s.NthPreviousPost(ctx, *post, position-1)
}

// NextPost resolves the post published right after the given one, within a day.
// The post itself must be at index 2 or later of the window, so the newest
// post of the window is never returned as a successor.
func (s *SelectionImpl) NextPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.PostByID(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}

	posts, err := s.PostsBefore(ctx, post.Timestamp+followingWindow)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Scanning posts for successor", "id", id, "candidates", len(posts))

	return domain.FindFollowingPost(posts, *post), nil
}
