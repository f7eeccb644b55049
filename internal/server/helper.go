package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const (
	LogFieldRequestID   = "requestId"
	LogFieldHTTPRequest = "httpRequest"
	LogFieldStatus      = "status"

	HeaderPublishMode = "X-Publish-Mode"
	HeaderCache       = "X-Go-Cache"
)

const contentTypeJSON = "application/json; charset=utf-8"

// response is a fully rendered body, kept as bytes so it can be cached
// independent of its format.
type response struct {
	ContentType string
	Header      map[string]string
	Body        []byte
}

func (s *Server) setContentTypeJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", contentTypeJSON)
}

func (s *Server) writeJSON(w http.ResponseWriter, d any) {
	s.setContentTypeJSON(w)
	err := json.NewEncoder(w).Encode(d)
	if err != nil {
		s.log.Error(err)
	}
}

func (s *Server) writeResponse(w http.ResponseWriter, res *response) {
	w.Header().Set("Content-Type", res.ContentType)
	for k, v := range res.Header {
		w.Header().Set(k, v)
	}
	if _, err := w.Write(res.Body); err != nil {
		s.log.Error(err)
	}
}

// requestLogger returns an entry carrying the request id and the request line.
func (s *Server) requestLogger(r *http.Request) *logrus.Entry {
	return s.log.WithFields(logrus.Fields{
		LogFieldRequestID: middleware.GetReqID(r.Context()),
		LogFieldHTTPRequest: logrus.Fields{
			"requestMethod": r.Method,
			"requestUrl":    r.URL.RequestURI(),
		},
	})
}

// writeJSONError logs err and answers with {"error": msg}. msg defaults to the
// error text; a non-empty public message hides internals from the client.
func (s *Server) writeJSONError(w http.ResponseWriter, r *http.Request, statusCode int, err error, publicMessage ...string) {
	s.requestLogger(r).WithField(LogFieldStatus, statusCode).WithError(err).Error("request failed")

	msg := err.Error()
	if len(publicMessage) > 0 {
		msg = strings.Join(publicMessage, " ")
	}
	s.setContentTypeJSON(w)
	w.WriteHeader(statusCode)
	s.writeJSON(w, map[string]string{"error": msg})
}
