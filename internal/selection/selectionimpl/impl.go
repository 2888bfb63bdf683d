package selectionimpl

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/url"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/internal/selection"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Tumblr tumblr.Client
	Logger logger.Logger
	Config *config.Config
}

type SelectionImpl struct {
	tumblr            tumblr.Client
	logger            logger.Logger
	longCaptionLength int
	maxLongDraws      uint64

	// randIntN returns a number in [0, n).
	randIntN func(n int) int
}

func New(opts Opts) *SelectionImpl {
	return &SelectionImpl{
		tumblr:            opts.Tumblr,
		logger:            opts.Logger.WithComponent("Selection"),
		longCaptionLength: opts.Config.Selection.LongCaptionLength,
		maxLongDraws:      opts.Config.Selection.LongPostMaxDraws,
		randIntN:          rand.IntN,
	}
}

var _ selection.Client = (*SelectionImpl)(nil)

// queryRaw runs a posts query, a 404 from the API comes back as an empty result.
func (s *SelectionImpl) queryRaw(ctx context.Context, params url.Values) ([]domain.RawPost, error) {
	raws, err := s.tumblr.QueryPosts(ctx, params)
	if errors.Is(err, tumblr.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raws, nil
}

func parseAt(raws []domain.RawPost, i int) (*domain.Post, error) {
	post, err := domain.ParsePost(raws[i])
	if err != nil {
		return nil, err
	}
	return &post, nil
}
