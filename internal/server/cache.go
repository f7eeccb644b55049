package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/divera-ha/releaserc/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
)

type cacheKey string

func (s *Server) getCacheKeyFromRequest(r *http.Request) cacheKey {
	return cacheKey(fmt.Sprintf("request/%s:%s", r.Method, r.URL.RequestURI()))
}

// routeTag tags measurements with the matched route pattern. The cache key
// carries the raw query and must never become a tag value.
func routeTag(r *http.Request) context.Context {
	route := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		route = rctx.RoutePattern()
	}
	ctx, _ := tag.New(r.Context(), tag.Upsert(metrics.TagRoute, route))
	return ctx
}

func (s *Server) getFromCache(r *http.Request, k cacheKey) (*response, bool) {
	val, ok := s.cache.Get(string(k))
	if !ok {
		return nil, false
	}
	stats.Record(routeTag(r), metrics.CounterCacheHit.M(1))
	return val.(*response), true
}

func (s *Server) setInCache(r *http.Request, k cacheKey, v *response, expiration ...time.Duration) {
	if s.config.DisableRequestCache {
		return
	}
	strKey := string(k)
	stats.Record(routeTag(r), metrics.CounterCacheMiss.M(1))
	exp := cache.DefaultExpiration
	if len(expiration) > 0 {
		exp = expiration[0]
	}
	s.cache.Set(strKey, v, exp)
}

func (s *Server) cacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.DisableRequestCache {
			next.ServeHTTP(w, r)
			return
		}
		if res, ok := s.getFromCache(r, s.getCacheKeyFromRequest(r)); ok {
			w.Header().Set(HeaderCache, "HIT")
			s.writeResponse(w, res)
			return
		}
		next.ServeHTTP(w, r)
	})
}
