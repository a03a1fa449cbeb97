package tritset

import "go.uber.org/zap"

type option struct {
	logger *zap.Logger
}

func defaultOption() *option {
	return &option{logger: zap.NewNop()}
}

type OptionFunc func(*option)

// WithLogger sets the logger that receives debug events about storage growth
// and release. Sets derived from this one by Not, And, Or and Clone share it.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		if logger != nil {
			o.logger = logger
		}
	}
}
