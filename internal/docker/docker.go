package docker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/hiveden/hivefetch/internal/hw"
)

// DefaultTimeout bounds a single call to the Docker daemon.
const DefaultTimeout = 2 * time.Second

// Manager reads container state from the local Docker daemon.
type Manager struct {
	cli     Client
	timeout time.Duration
}

// NewManager connects using the standard DOCKER_* environment.
// No request is made until the manager is used.
func NewManager(timeout time.Duration) (*Manager, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Manager{cli: cli, timeout: timeout}, nil
}

// Close releases the underlying client.
func (m *Manager) Close() error {
	return m.cli.Close()
}

// ListRunning lists running containers with their age.
func (m *Manager) ListRunning(ctx context.Context) ([]hw.Container, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	containers, err := m.cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	infos := make([]hw.Container, 0, len(containers))
	for _, c := range containers {
		var name string
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}

		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}

		infos = append(infos, hw.Container{
			ID:     id,
			Name:   name,
			Image:  c.Image,
			Uptime: formatUptime(c.Created, time.Now()),
		})
	}

	return infos, nil
}

func formatUptime(createdAt int64, now time.Time) string {
	if createdAt == 0 {
		return "N/A"
	}
	uptime := now.Sub(time.Unix(createdAt, 0))
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	minutes := int(uptime.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%d days", days)
	}
	if hours > 0 {
		return fmt.Sprintf("%d hours", hours)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return "Less than a minute"
}
