package cli

import (
	"context"
	"time"

	"github.com/facilityos/equiptrack/internal/api"
	"github.com/facilityos/equiptrack/internal/notify"
)

// Context carries the shared dependencies into kong commands
type Context struct {
	API  *api.Client
	Sink notify.Sink
}

// RequestContext returns the context commands should pass to API calls
func (c *Context) RequestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Minute)
}
