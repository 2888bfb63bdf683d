package tumblrimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/internal/tumblr"
)

type postsResponse struct {
	Response struct {
		Posts []domain.RawPost `json:"posts"`
	} `json:"response"`
}

type infoResponse struct {
	Response struct {
		Blog struct {
			TotalPosts int `json:"total_posts"`
		} `json:"blog"`
	} `json:"response"`
}

func (t *TumblrImpl) QueryPosts(ctx context.Context, params url.Values) ([]domain.RawPost, error) {
	query := make(url.Values, len(params)+2)
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("filter", "raw")

	resp, err := t.get(ctx, endpointPosts, "/posts/photo/", query)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		discard(resp.Body)
		t.logger.Debug("No posts matched", "params", params.Encode())
		return nil, tumblr.ErrNotFound
	}
	if !isSuccess(resp.StatusCode) {
		return nil, upstreamError(endpointPosts, resp)
	}
	defer discard(resp.Body)

	var body postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode tumblr posts response: %w", err)
	}

	t.logger.Debug("Retrieved posts", "params", params.Encode(), "count", len(body.Response.Posts))
	return body.Response.Posts, nil
}

func (t *TumblrImpl) PostsCount(ctx context.Context) (int, error) {
	resp, err := t.get(ctx, endpointInfo, "/info", nil)
	if err != nil {
		return 0, err
	}
	if !isSuccess(resp.StatusCode) {
		return 0, upstreamError(endpointInfo, resp)
	}
	defer discard(resp.Body)

	var body infoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode tumblr info response: %w", err)
	}

	t.logger.Debug("Retrieved post count", "total_posts", body.Response.Blog.TotalPosts)
	return body.Response.Blog.TotalPosts, nil
}
