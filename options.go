package disposable

import "go.uber.org/zap"

// Option configures a Group.
type Option func(*Group)

// WithLogger sets the logger used to report cleanup failures during bulk
// disposal. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Group) {
		if logger != nil {
			g.logger = logger
		}
	}
}
