package priority

import "github.com/kesano/p-queue/monitoring"

// options defines the configuration of a Queue.
type options struct {
	initialCapacity int               // Slots allocated by New
	logger          monitoring.Logger // Receives grow and clone events, may be nil
}

// Option configures a Queue.
type Option func(*options)

// WithInitialCapacity sets the number of slots allocated up front.
// Values below MinCapacity are raised to MinCapacity.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = max(n, MinCapacity)
	}
}

// WithLogger sets the logger that receives buffer events.
func WithLogger(l monitoring.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		initialCapacity: MinCapacity,
		logger:          nil,
	}
}
