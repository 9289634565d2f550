package command

import (
	"fmt"

	"github.com/pixil98/go-tileworld/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultMetricsNamespace = "tileworld"

// MetricsConfig controls the prometheus endpoint. A zero port disables it.
type MetricsConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Namespace string `json:"namespace"`
}

func (c *MetricsConfig) validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("metrics port %d out of range", c.Port)
	}
	return nil
}

func (c *MetricsConfig) enabled() bool {
	return c.Port != 0
}

func (c *MetricsConfig) namespace() string {
	if c.Namespace == "" {
		return defaultMetricsNamespace
	}
	return c.Namespace
}

func (c *MetricsConfig) buildServer(g prometheus.Gatherer) *metrics.Server {
	opts := []metrics.ServerOpt{metrics.WithPort(c.Port)}
	if c.Host != "" {
		opts = append(opts, metrics.WithHost(c.Host))
	}
	return metrics.NewServer(g, opts...)
}
