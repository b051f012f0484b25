package docker

import (
	"context"

	"github.com/docker/docker/api/types/container"
)

// Client is the subset of the Docker API the manager needs.
type Client interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	Close() error
}
