package fnplot

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// domainTolerance is how far past the upper bound, in steps, a domain's last
// point may fall and still be included.
const domainTolerance = 1e-9

// ParseDomain parses a domain written as "lower:step:upper" into the points
// lower, lower+step, lower+2*step, and so on up to upper, inclusive within
// floating-point tolerance. step must be positive and lower must not exceed
// upper. Any problem with the domain is a *ConfigError.
func ParseDomain(domain string, opts ...SampleOption) ([]float64, error) {
	p := newsamplectx(opts)
	return parseDomain(domain, &p)
}

func parseDomain(domain string, p *samplectx) ([]float64, error) {
	f := strings.Split(domain, ":")
	if len(f) != 3 {
		return nil, &ConfigError{Domain: domain, Reason: "want lower:step:upper"}
	}
	names := [3]string{"lower bound", "step", "upper bound"}
	var v [3]float64
	for i, s := range f {
		x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &ConfigError{Domain: domain, Reason: "invalid " + names[i], Err: err}
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, &ConfigError{Domain: domain, Reason: names[i] + " is not finite"}
		}
		v[i] = x
	}
	lower, step, upper := v[0], v[1], v[2]
	switch {
	case step <= 0:
		return nil, &ConfigError{Domain: domain, Reason: "step must be positive"}
	case lower > upper:
		return nil, &ConfigError{Domain: domain, Reason: "lower bound exceeds upper bound"}
	}
	span := math.Floor((upper-lower)/step + domainTolerance)
	if math.IsInf(span, 0) || span >= float64(p.max) {
		return nil, &ConfigError{Domain: domain, Reason: "more than " + strconv.Itoa(p.max) + " points"}
	}
	// Compute each point from its index so that error doesn't accumulate.
	d := make([]float64, int(span)+1)
	for i := range d {
		d[i] = lower + float64(i)*step
	}
	return d, nil
}

// Substitute replaces every occurrence of the variable in expr with x.
func Substitute(expr string, x float64) string {
	return strings.ReplaceAll(expr, string(Placeholder), strconv.FormatFloat(x, 'f', -1, 64))
}

// Sample evaluates expr at each point of a domain. The results are the domain
// points and the value of expr at each, in the same order. Each point is
// substituted and evaluated independently of the others.
//
// The first point that fails to evaluate stops sampling, and the error is a
// *SampleError wrapping the evaluation error. There are no partial results.
func Sample(expr, domain string, opts ...SampleOption) (dom, img []float64, err error) {
	p := newsamplectx(opts)
	dom, err = parseDomain(domain, &p)
	if err != nil {
		p.log.Debug("bad domain", "err", err)
		return nil, nil, err
	}
	p.log.Debug("sampling", "expr", expr, "domain", domain, "points", len(dom), "workers", p.workers)
	img = make([]float64, len(dom))
	if p.workers > 1 && len(dom) > 1 {
		err = sampleParallel(expr, dom, img, p.workers)
	} else {
		for i, x := range dom {
			if img[i], err = sampleAt(expr, i, x); err != nil {
				break
			}
		}
	}
	if err != nil {
		p.log.Debug("sampling failed", "err", err)
		return nil, nil, err
	}
	return dom, img, nil
}

func sampleAt(expr string, i int, x float64) (float64, error) {
	s := Substitute(expr, x)
	y, err := EvalString(s)
	if err != nil {
		return 0, &SampleError{Index: i, X: x, Expr: s, Err: err}
	}
	return y, nil
}

// sampleParallel evaluates points on several goroutines. Indices are handed
// out in increasing order and every handed-out index is evaluated, so the
// error returned is always that of the lowest failing index.
func sampleParallel(expr string, dom, img []float64, workers int) error {
	if workers > len(dom) {
		workers = len(dom)
	}
	errs := make([]error, len(dom))
	var (
		next   atomic.Int64
		failed atomic.Bool
		wg     sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !failed.Load() {
				i := int(next.Add(1) - 1)
				if i >= len(dom) {
					return
				}
				y, err := sampleAt(expr, i, dom[i])
				if err != nil {
					errs[i] = err
					failed.Store(true)
					return
				}
				img[i] = y
			}
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
