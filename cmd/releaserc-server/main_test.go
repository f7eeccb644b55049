package main

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T, handler http.Handler) (*http.Server, string) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second}
	go func() {
		_ = srv.Serve(l)
	}()
	return srv, "http://" + l.Addr().String()
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	log := logrus.New()
	log.Out = io.Discard
	return log, test.NewLocal(log)
}

func TestShutdown(t *testing.T) {
	srv, url := startTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	res, err := http.Get(url)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	log, hook := newTestLogger()
	require.NoError(t, shutdown(log, srv, time.Second))
	require.Equal(t, "server stopped!", hook.LastEntry().Message)

	_, err = http.Get(url)
	require.Error(t, err)
}

func TestShutdownClosesAfterTimeout(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	srv, url := startTestServer(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		close(entered)
		<-release
	}))
	go func() {
		res, err := http.Get(url)
		if err == nil {
			_ = res.Body.Close()
		}
	}()
	<-entered

	log, hook := newTestLogger()
	require.NoError(t, shutdown(log, srv, 50*time.Millisecond))
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warned = true
		}
	}
	require.True(t, warned)
}
