package metrics

import (
	"fmt"

	"contrib.go.opencensus.io/exporter/stackdriver"
	"github.com/divera-ha/releaserc/internal/config"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	CounterConfigRenders = stats.Int64("config_renders", "Number of rendered release configurations", "1")
	CounterCacheHit      = stats.Int64("cache_hits", "Number of cache hits", "1")
	CounterCacheMiss     = stats.Int64("cache_misses", "Number of cache misses", "1")

	TagPublishMode = tag.MustNewKey("publish_mode")
	TagRoute       = tag.MustNewKey("route")
)

var Views = []*view.View{
	{
		Name:        "config_renders",
		Measure:     CounterConfigRenders,
		Description: "Number of rendered release configurations",
		TagKeys:     []tag.Key{TagPublishMode},
		Aggregation: view.Count(),
	},
	{
		Name:        "cache_hits",
		Measure:     CounterCacheHit,
		Description: "Number of cache hits",
		TagKeys:     []tag.Key{TagRoute},
		Aggregation: view.Count(),
	},
	{
		Name:        "cache_misses",
		Measure:     CounterCacheMiss,
		Description: "Number of cache misses",
		TagKeys:     []tag.Key{TagRoute},
		Aggregation: view.Count(),
	},
}

func NewExporter(cfg *config.Config) (*stackdriver.Exporter, error) {
	err := view.Register(Views...)
	if err != nil {
		return nil, err
	}
	exporter, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.ProjectID,
		MetricPrefix: fmt.Sprintf("releaserc/%s", cfg.Stage),
	})
	if err != nil {
		return nil, err
	}
	err = exporter.StartMetricsExporter()
	if err != nil {
		return nil, err
	}
	return exporter, nil
}
