package selectionimpl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/internal/selection"
	"github.com/orgball2608/hony-redirect/pkg/retry"
)

var errShortCaption = errors.New("caption too short")

// RandomPost fetches the post at a uniformly drawn offset in [0, total).
func (s *SelectionImpl) RandomPost(ctx context.Context, total int) (*domain.Post, error) {
	if total <= 0 {
		s.logger.Warn("No posts to draw from", "total", total)
		return nil, nil
	}

	offset := s.randIntN(total)
	raws, err := s.queryRaw(ctx, url.Values{
		"limit":  {"1"},
		"offset": {strconv.Itoa(offset)},
	})
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		s.logger.Info("No post at offset", "offset", offset, "total", total)
		return nil, nil
	}

	post, err := parseAt(raws, 0)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Retrieved post", "slug", post.Slug, "offset", offset)
	return post, nil
}

// RandomLongPost draws random posts until one has a caption longer than the
// configured length. It gives up with ErrNoLongPost once the draw limit is hit.
func (s *SelectionImpl) RandomLongPost(ctx context.Context, total int) (*domain.Post, error) {
	var (
		found *domain.Post
		draws int
	)

	err := retry.Do(ctx, s.logger, "RandomLongPost", func() error {
		draws++
		post, err := s.RandomPost(ctx, total)
		if err != nil {
			return retry.Permanent(err)
		}
		if post == nil {
			return nil
		}

		length := utf8.RuneCountInString(post.Caption)
		s.logger.Debug("Counted length for post", "slug", post.Slug, "length", length)
		if length <= s.longCaptionLength {
			return errShortCaption
		}
		found = post
		return nil
	}, retry.Immediate(s.maxLongDraws))

	if errors.Is(err, errShortCaption) {
		return nil, fmt.Errorf("%w: %d draws", selection.ErrNoLongPost, draws)
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}
