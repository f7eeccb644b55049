package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/divera-ha/releaserc/internal/config"
	"github.com/divera-ha/releaserc/internal/metrics"
	"github.com/divera-ha/releaserc/internal/server"
	"github.com/sirupsen/logrus"
)

var version = "dev"

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

func run(log *logrus.Logger) error {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return err
	}
	cfg.Version = version
	log.Infof("starting releaserc-server (version=%s, stage=%s)", cfg.Version, cfg.Stage)

	if !cfg.DisableMetrics {
		log.Println("starting metrics exporter...")
		exporter, mErr := metrics.NewExporter(cfg)
		if mErr != nil {
			return mErr
		}
		defer exporter.Flush()
		defer exporter.StopMetricsExporter()
	}

	log.Println("setting up GitHub client...")
	ghClient := cfg.CreateGitHubClient()

	log.Println("starting server...")
	srv := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           server.New(log, ghClient, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Error(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	<-ctx.Done()
	stop()

	return shutdown(log, srv, 5*time.Second)
}

// shutdown drains in-flight requests and force-closes the listener once
// timeout has passed.
func shutdown(log *logrus.Logger, srv *http.Server, timeout time.Duration) error {
	log.Println("stopping server...")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warnf("requests still running after %s, closing server...", timeout)
		err = srv.Close()
	}
	if err != nil {
		return err
	}
	log.Println("server stopped!")
	return nil
}

func main() {
	log := setupLogger()
	if err := run(log); err != nil {
		log.Fatal(err)
	}
}
