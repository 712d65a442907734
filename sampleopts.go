package fnplot

import (
	"log/slog"
	"strconv"
)

// DefaultMaxSamples is the largest number of points a domain may contain
// unless changed with MaxSamples.
const DefaultMaxSamples = 1 << 20

// SampleOption is an option for parsing domains and sampling expressions.
type SampleOption interface {
	sampleOption(samplectx) samplectx
}

type (
	workersopt int
	maxopt     int
	logopt     struct {
		h slog.Handler
	}
)

// samplectx holds the settings for one call to Sample or ParseDomain.
type samplectx struct {
	// workers is the number of goroutines evaluating points.
	workers int
	// max is the largest number of points allowed in a domain.
	max int
	// log receives debug messages. Never nil after newsamplectx.
	log *slog.Logger
}

func newsamplectx(opts []SampleOption) samplectx {
	p := samplectx{workers: 1, max: DefaultMaxSamples}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.sampleOption(p)
	}
	if p.log == nil {
		p.log = slog.Default()
	}
	return p
}

// Workers sets the number of goroutines that evaluate points concurrently.
// Results are the same for any number of workers. Panics if n < 1.
func Workers(n int) SampleOption {
	if n < 1 {
		panic("fnplot: invalid worker count " + strconv.Itoa(n))
	}
	return workersopt(n)
}

func (o workersopt) sampleOption(p samplectx) samplectx {
	p.workers = int(o)
	return p
}

// MaxSamples sets the largest number of points a domain may contain. Larger
// domains are a *ConfigError. Panics if n < 1.
func MaxSamples(n int) SampleOption {
	if n < 1 {
		panic("fnplot: invalid sample limit " + strconv.Itoa(n))
	}
	return maxopt(n)
}

func (o maxopt) sampleOption(p samplectx) samplectx {
	p.max = int(o)
	return p
}

// Logger sets the handler for debug logs about sampling. If h is nil, the
// default logger is used.
func Logger(h slog.Handler) SampleOption {
	return &logopt{h}
}

func (o *logopt) sampleOption(p samplectx) samplectx {
	if o.h == nil {
		p.log = nil
		return p
	}
	p.log = slog.New(o.h).WithGroup("sample")
	return p
}
