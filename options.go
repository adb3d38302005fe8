package canvas

import "log/slog"

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := canvas.NewContext()
//
//	// Preallocate a deeper save stack and log rejected input:
//	ctx := canvas.NewContext(
//	    canvas.WithStackCapacity(32),
//	    canvas.WithLogger(slog.Default()),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	stackCapacity int
	logger        *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		stackCapacity: 8,
		logger:        nil, // falls back to the package logger
	}
}

// WithStackCapacity preallocates room for n saved states. The stack still
// grows without bound; this only avoids early reallocations. Negative values
// are treated as zero.
func WithStackCapacity(n int) ContextOption {
	return func(o *contextOptions) {
		if n < 0 {
			n = 0
		}
		o.stackCapacity = n
	}
}

// WithLogger gives the Context its own logger instead of the package logger
// configured with SetLogger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
