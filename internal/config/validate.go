package config

import (
	"errors"
	"fmt"

	"github.com/CodeStranger-Fred/rlmetrics/plot"
)

var (
	ErrUnknownDisplay = errors.New("unknown display")
	ErrMissingListen  = errors.New("live display needs a listen address")
)

// Validate checks the names that select renderers and displays. Canvas
// sizes are passed through as given.
func (c *Config) Validate() error {
	if _, err := plot.ByName(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	switch c.Display {
	case DisplayFile, DisplayTerminal:
	case DisplayLive:
		if c.Listen == "" {
			return ErrMissingListen
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDisplay, c.Display)
	}
	return nil
}
