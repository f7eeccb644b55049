package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// logMiddleware logs one line per request once the handler has finished.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.requestLogger(r).WithFields(logrus.Fields{
			LogFieldStatus: status,
			"bytes":        ww.BytesWritten(),
			"duration":     time.Since(start).String(),
			"remoteAddr":   r.RemoteAddr,
		}).Infof("%s %s -> %d", r.Method, r.URL.RequestURI(), status)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.writeJSONError(w, r, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
