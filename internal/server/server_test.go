package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/internal/metrics"
	"github.com/orgball2608/hony-redirect/internal/selection"
	mock_selection "github.com/orgball2608/hony-redirect/internal/selection/mocks"
	mock_tumblr "github.com/orgball2608/hony-redirect/internal/tumblr/mocks"
	"github.com/orgball2608/hony-redirect/pkg/errors"
	"github.com/orgball2608/hony-redirect/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/mock/gomock"
)

type staticReadiness bool

func (r staticReadiness) Ready() bool { return bool(r) }

var testPost = domain.Post{
	PostURL:   "http://www.humansofnewyork.com/post/179409187496/a-slug",
	Caption:   "<p>(3/6) “When the </p>",
	Timestamp: 1540424820,
	Slug:      "a-slug",
}

type testServer struct {
	server    *Server
	tumblr    *mock_tumblr.MockClient
	selection *mock_selection.MockClient
}

func newTestServer(t *testing.T, ready bool) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	reg := prometheus.NewRegistry()

	ts := &testServer{
		tumblr:    mock_tumblr.NewMockClient(ctrl),
		selection: mock_selection.NewMockClient(ctrl),
	}
	ts.server = &Server{
		tumblr:    ts.tumblr,
		selection: ts.selection,
		ready:     staticReadiness(ready),
		metrics:   metrics.New(reg),
		logger:    logger.New(logger.Opts{Env: "test", Output: io.Discard}),
	}
	ts.server.handler = ts.server.routes(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return ts
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.server.Handler().ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func assertText(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d", rec.Code, status)
	}
	if got := rec.Body.String(); got != body {
		t.Fatalf("body = %q, want %q", got, body)
	}
}

func TestRandom_Redirects(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)
	ts.selection.EXPECT().RandomPost(gomock.Any(), 7260).Return(&testPost, nil)

	assertRedirect(t, ts.get("/"), testPost.PostURL)
}

func TestRandom_NoPostHasNoBody(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)
	ts.selection.EXPECT().RandomPost(gomock.Any(), 7260).Return(nil, nil)

	assertText(t, ts.get("/"), http.StatusNotFound, "")
}

func TestRandom_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(0, errors.Upstream(500, "tumblr info"))

	assertText(t, ts.get("/"), http.StatusInternalServerError, "Internal Server Error")
}

func TestLong_Redirects(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)
	ts.selection.EXPECT().RandomLongPost(gomock.Any(), 7260).Return(&testPost, nil)

	assertRedirect(t, ts.get("/long/"), testPost.PostURL)
}

func TestLong_DrawLimitReached(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)
	ts.selection.EXPECT().RandomLongPost(gomock.Any(), 7260).
		Return(nil, fmt.Errorf("%w: 100 draws", selection.ErrNoLongPost))

	assertText(t, ts.get("/long/"), http.StatusNotFound, "Could not find a long post.")
}

func TestFirst_Redirects(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().FirstPost(gomock.Any(), int64(179409187496)).Return(&testPost, nil)

	assertRedirect(t, ts.get("/first/post/179409187496/a-slug/"), testPost.PostURL)
}

func TestFirst_NoResult(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().FirstPost(gomock.Any(), int64(1234)).Return(nil, nil)

	assertText(t, ts.get("/first/post/1234/anything/"), http.StatusNotFound,
		"Could not find the first post of this series.")
}

func TestFirst_NonNumericID(t *testing.T) {
	ts := newTestServer(t, true)

	rec := ts.get("/first/post/not-a-number/anything/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestNext_Redirects(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().NextPost(gomock.Any(), int64(1234)).Return(&testPost, nil)

	assertRedirect(t, ts.get("/next/post/1234/a-slug/"), testPost.PostURL)
}

func TestNext_NoResult(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().NextPost(gomock.Any(), int64(1234)).Return(nil, nil)

	assertText(t, ts.get("/next/post/1234/a-slug/"), http.StatusNotFound, "Could not find the next post.")
}

func TestNext_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().NextPost(gomock.Any(), int64(1234)).Return(nil, errors.Upstream(502, "tumblr posts"))

	assertText(t, ts.get("/next/post/1234/a-slug/"), http.StatusInternalServerError, "Internal Server Error")
}

func TestError_AlwaysFails(t *testing.T) {
	ts := newTestServer(t, true)

	assertText(t, ts.get("/error/"), http.StatusInternalServerError, "Internal Server Error")
}

func TestPanicBecomesServerError(t *testing.T) {
	ts := newTestServer(t, true)
	ts.selection.EXPECT().NextPost(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) (*domain.Post, error) {
			panic("boom")
		})

	assertText(t, ts.get("/next/post/1/a-slug/"), http.StatusInternalServerError, "Internal Server Error\n")
}

func TestHealthAndReadiness(t *testing.T) {
	assertText(t, newTestServer(t, false).get("/healthz"), http.StatusOK, "ok")
	assertText(t, newTestServer(t, true).get("/readyz"), http.StatusOK, "ok")
	assertText(t, newTestServer(t, false).get("/readyz"), http.StatusServiceUnavailable, "upstream unavailable")
}

func TestMetricsCountOutcomes(t *testing.T) {
	ts := newTestServer(t, true)
	ts.tumblr.EXPECT().PostsCount(gomock.Any()).Return(7260, nil)
	ts.selection.EXPECT().RandomPost(gomock.Any(), 7260).Return(&testPost, nil)
	ts.get("/")
	ts.get("/error/")

	body := ts.get("/metrics").Body.String()
	for _, want := range []string{
		`hony_redirects_total{outcome="redirect",route="random"} 1`,
		`hony_redirects_total{outcome="error",route="error"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output does not contain %q", want)
		}
	}
}
