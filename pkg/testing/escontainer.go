package testing

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultESImage   = "docker.elastic.co/elasticsearch/elasticsearch:8.15.0"
	defaultESStartup = 90 * time.Second
)

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// ESConfig overrides the container image and startup timeout. Zero values use defaults.
type ESConfig struct {
	Image          string
	StartupTimeout time.Duration
}

// NewESContainer starts a single-node Elasticsearch without authentication and returns
// its plain HTTP address.
func NewESContainer(ctx context.Context, cfg ESConfig) (*ESContainer, error) {
	if cfg.Image == "" {
		cfg.Image = defaultESImage
	}
	if cfg.StartupTimeout == 0 {
		cfg.StartupTimeout = defaultESStartup
	}

	container, err := elasticsearch.Run(ctx, cfg.Image,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health").
				WithPort("9200/tcp").
				WithStartupTimeout(cfg.StartupTimeout),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start elasticsearch container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "9200/tcp", "http")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("failed to resolve elasticsearch endpoint: %w", err)
	}

	return &ESContainer{Container: container, Address: endpoint}, nil
}

// Terminate stops and removes the container.
func (c *ESContainer) Terminate() error {
	return testcontainers.TerminateContainer(c.Container)
}
