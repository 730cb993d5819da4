// Package log registers the process-wide *log.Logger.
package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Timestamps bool `config:"LOG_TIMESTAMPS" default:"false"`
}

// Initialize registers the logger in the dependency container.
// Timestamps are off by default because the container runtime adds its own.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, "", il.flags()))
	return ctx, nil
}

func (il InitLogger) flags() int {
	if il.Timestamps {
		return log.LstdFlags | log.LUTC | log.Lmsgprefix
	}
	return log.Lmsgprefix
}
