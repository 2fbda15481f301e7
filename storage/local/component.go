package local

import (
	"context"
	"fmt"
	"time"

	"github.com/shrutlekh/shrutlekh/component"
	"github.com/shrutlekh/shrutlekh/logger"
)

// Component wraps Storage with lifecycle management and a background sweeper
// that removes uploads older than the configured MaxAge.
type Component struct {
	cfg     Config
	log     *logger.Logger
	storage *Storage

	cancel context.CancelFunc
	done   chan struct{}
}

// NewComponent creates the upload store and its lifecycle wrapper. The store
// is usable immediately; Start only launches the background sweeper.
func NewComponent(cfg Config, log *logger.Logger) (*Component, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	s, err := NewStorage(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return &Component{
		cfg:     cfg,
		log:     log.WithComponent("storage"),
		storage: s,
	}, nil
}

// Storage returns the underlying store.
func (c *Component) Storage() *Storage {
	return c.storage
}

var _ component.Component = (*Component)(nil)

// Name returns the component name.
func (c *Component) Name() string { return "storage" }

// Start launches the sweeper when a MaxAge is configured.
func (c *Component) Start(_ context.Context) error {
	c.log.Info("local storage ready", logger.Fields("path", c.storage.BasePath()))

	if c.cfg.MaxAge > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.done = make(chan struct{})
		go c.sweepLoop(ctx)
	}
	return nil
}

// Stop halts the sweeper. Stored files are left in place so in-flight
// downloads keep working across a restart.
func (c *Component) Stop(_ context.Context) error {
	if c.cancel != nil {
		c.cancel()
		<-c.done
		c.cancel = nil
	}
	return nil
}

// Health reports whether the upload directory is usable.
func (c *Component) Health(ctx context.Context) component.Health {
	if _, err := c.storage.List(ctx); err != nil {
		return component.Health{
			Name:    c.Name(),
			Status:  component.StatusUnhealthy,
			Message: fmt.Sprintf("health probe failed: %v", err),
		}
	}
	return component.Health{
		Name:   c.Name(),
		Status: component.StatusHealthy,
	}
}

func (c *Component) sweepLoop(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := c.sweep(ctx); err != nil {
				c.log.Warn("upload sweep failed", logger.ErrorFields("sweep", err))
			} else if n > 0 {
				c.log.Debug("swept stale uploads", logger.Fields("count", n))
			}
		}
	}
}

// sweep removes files older than MaxAge and returns how many were deleted.
func (c *Component) sweep(ctx context.Context) (int, error) {
	files, err := c.storage.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-c.cfg.MaxAge)
	removed := 0
	for _, f := range files {
		if f.ModTime.After(cutoff) {
			break // oldest first, the rest are newer
		}
		if err := c.storage.Delete(ctx, f.Key); err != nil {
			c.log.Warn("failed to remove stale upload", logger.Fields("key", f.Key, "error", err.Error()))
			continue
		}
		removed++
	}
	return removed, nil
}
