package tumblrimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/orgball2608/hony-redirect/internal/metrics"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
	"github.com/orgball2608/hony-redirect/pkg/config"
	"github.com/orgball2608/hony-redirect/pkg/errors"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
)

const (
	endpointInfo  = "info"
	endpointPosts = "posts"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// HTTPClient replaces the default instrumented client when set.
	HTTPClient *http.Client `optional:"true"`
}

type TumblrImpl struct {
	httpClient *http.Client
	blogURL    string
	apiKey     string
	logger     logger.Logger
	metrics    *metrics.Metrics
}

func New(opts Opts) *TumblrImpl {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout:   opts.Config.Tumblr.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return &TumblrImpl{
		httpClient: client,
		blogURL:    strings.TrimRight(opts.Config.Tumblr.BlogURL, "/"),
		apiKey:     opts.Config.Tumblr.APIKey,
		logger:     opts.Logger.WithComponent("TumblrClient"),
		metrics:    opts.Metrics,
	}
}

var _ tumblr.Client = (*TumblrImpl)(nil)

// get performs one GET against the blog API with the api key attached.
// The caller owns the response body.
func (t *TumblrImpl) get(ctx context.Context, endpoint, path string, params url.Values) (*http.Response, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", t.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.blogURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.metrics.ObserveUpstream(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("failed to query tumblr %s: %w", endpoint, err)
	}
	t.metrics.ObserveUpstream(endpoint, resp.StatusCode, time.Since(start))

	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

// discard drains and closes body so the connection can be reused.
func discard(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

func upstreamError(endpoint string, resp *http.Response) error {
	defer discard(resp.Body)
	return errors.Upstream(resp.StatusCode, "tumblr "+endpoint)
}
