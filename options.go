package embedgo

import (
	"log/slog"

	"github.com/yangminglab/embedgo/codec"
	"github.com/yangminglab/embedgo/util"
)

// DefaultScale is the symmetric bound used by random initialization:
// components are drawn uniformly from [-DefaultScale, DefaultScale].
const DefaultScale float32 = 0.2

type options struct {
	scale  float32
	rng    *util.RNG
	codec  codec.Codec
	logger *Logger
}

// Option configures constructor behavior.
type Option func(*options)

// WithScale sets the symmetric bound for random initialization.
func WithScale(scale float32) Option {
	return func(o *options) {
		o.scale = scale
	}
}

// WithSeed makes random initialization reproducible. Without it the RNG
// is time-seeded.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = util.NewRNG(seed)
	}
}

// WithCodec configures the codec recorded in snapshot headers.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging for construction operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		scale:  DefaultScale,
		codec:  codec.Default,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
