package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/orgball2608/hony-redirect/internal/domain"
	"github.com/orgball2608/hony-redirect/internal/metrics"
	"github.com/orgball2608/hony-redirect/internal/selection"
	pkgerrors "github.com/orgball2608/hony-redirect/pkg/errors"
)

const (
	routeRandom = "random"
	routeLong   = "long"
	routeFirst  = "first"
	routeNext   = "next"
	routeError  = "error"
)

var errInvalidID = errors.New("post id is not a number")

type resolver func(r *http.Request) (*domain.Post, error)

// redirect answers 303 to the resolved post, or 404 with noResult as plain
// text when nothing was resolved.
func (s *Server) redirect(route string, resolve resolver, noResult string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		post, err := resolve(r)
		switch {
		case errors.Is(err, errInvalidID):
			s.metrics.CountRedirect(route, metrics.OutcomeNoResult)
			http.NotFound(w, r)
		case err != nil:
			s.fail(w, r, route, err)
		case post == nil:
			s.logger.Info("Nothing to redirect to", "route", route, "path", r.URL.Path)
			s.metrics.CountRedirect(route, metrics.OutcomeNoResult)
			writeText(w, http.StatusNotFound, noResult)
		default:
			s.logger.Debug("Redirecting", "route", route, "slug", post.Slug, "url", post.PostURL)
			s.metrics.CountRedirect(route, metrics.OutcomeRedirect)
			http.Redirect(w, r, post.PostURL, http.StatusSeeOther)
		}
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, route string, err error) {
	s.logger.Error("Request failed",
		"route", route,
		"path", r.URL.Path,
		"code", pkgerrors.GetCode(err),
		"error", err)
	s.metrics.CountRedirect(route, metrics.OutcomeError)
	writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) resolveRandom(r *http.Request) (*domain.Post, error) {
	total, err := s.tumblr.PostsCount(r.Context())
	if err != nil {
		return nil, err
	}
	return s.selection.RandomPost(r.Context(), total)
}

func (s *Server) resolveLong(r *http.Request) (*domain.Post, error) {
	total, err := s.tumblr.PostsCount(r.Context())
	if err != nil {
		return nil, err
	}

	post, err := s.selection.RandomLongPost(r.Context(), total)
	if errors.Is(err, selection.ErrNoLongPost) {
		s.logger.Warn("Gave up drawing long posts", "error", err)
		return nil, nil
	}
	return post, err
}

func (s *Server) resolveFirst(r *http.Request) (*domain.Post, error) {
	id, err := postID(r)
	if err != nil {
		return nil, err
	}
	return s.selection.FirstPost(r.Context(), id)
}

func (s *Server) resolveNext(r *http.Request) (*domain.Post, error) {
	id, err := postID(r)
	if err != nil {
		return nil, err
	}
	return s.selection.NextPost(r.Context(), id)
}

func postID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// deliberateError always fails, it exercises the failure path end to end.
func (s *Server) deliberateError(w http.ResponseWriter, r *http.Request) {
	s.fail(w, r, routeError, pkgerrors.ErrDeliberate)
}
