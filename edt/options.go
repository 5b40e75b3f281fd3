// SPDX-License-Identifier: MIT

// Package edt: functional configuration for the distance transforms.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
//
// Design goals:
//   - No global state: the sentinel travels with the call, never through a package variable.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package edt

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInfinity is the cost of a background cell and the value of an
	// unreachable result. It must stay finite: the envelope subtracts sums of
	// costs, and Inf-Inf would poison the boundaries with NaN. 1e20 leaves
	// room for any squared offset a grid that fits in memory can produce.
	DefaultInfinity = 1e20

	// DefaultWorkers runs both passes sequentially.
	DefaultWorkers = 1

	// DefaultUnreachable reports unreachable cells as exactly the sentinel.
	DefaultUnreachable = UnreachableSentinel
)

// ---------- Internal panic messages ----------

const (
	panicInfinityInvalid = "edt: WithInfinity: value must be finite and > 0"
	panicPolicyInvalid   = "edt: WithUnreachable: unknown policy"
)

// Policy selects how cells with no reachable feature are reported.
type Policy int

const (
	// UnreachableSentinel stores exactly the configured Infinity.
	UnreachableSentinel Policy = iota

	// UnreachableInf stores math.Inf(1).
	UnreachableInf

	// UnreachableClamp stores the largest squared distance the grid can
	// hold, (W-1)² + (H-1)², so downstream sqrt and rescaling stay finite.
	UnreachableClamp
)

var policyNames = [...]string{
	UnreachableSentinel: "sentinel",
	UnreachableInf:      "inf",
	UnreachableClamp:    "clamp",
}

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	if !p.valid() {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

func (p Policy) valid() bool {
	return p >= UnreachableSentinel && p <= UnreachableClamp
}

// ParsePolicy maps "sentinel", "inf" or "clamp" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return Policy(p), nil
		}
	}

	return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
}

// ---------- Public option type (functional) ----------

// Option mutates Options. Options apply in order; the last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	infinity    float64 // > 0, finite; DefaultInfinity
	workers     int     // >= 1; DefaultWorkers
	unreachable Policy  // DefaultUnreachable
}

// Infinity returns the background cost / unreachable sentinel.
func (o Options) Infinity() float64 { return o.infinity }

// Workers returns the number of concurrent line workers per pass.
func (o Options) Workers() int { return o.workers }

// Unreachable returns the unreachable-cell policy.
func (o Options) Unreachable() Policy { return o.unreachable }

// WithInfinity sets the background cost and unreachable sentinel.
//
// The value must be finite and positive; the transforms additionally reject
// it with ErrInfinityTooSmall when it does not exceed 2·max(W,H)² for the
// grid at hand. Panics on NaN, ±Inf or v <= 0.
func WithInfinity(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(panicInfinityInvalid)
	}

	return func(o *Options) { o.infinity = v }
}

// WithWorkers sets how many goroutines share each pass.
// n == 1 keeps the sequential path; n <= 0 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) { o.workers = n }
}

// WithUnreachable selects how unreachable cells are reported.
// Panics on a value outside the declared Policy constants.
func WithUnreachable(p Policy) Option {
	if !p.valid() {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.unreachable = p }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		infinity:    DefaultInfinity,
		workers:     DefaultWorkers,
		unreachable: DefaultUnreachable,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// marker returns the value written into unreachable cells of a w×h result.
func (o Options) marker(w, h int) float64 {
	switch o.unreachable {
	case UnreachableInf:
		return math.Inf(1)
	case UnreachableClamp:
		return maxSquaredDistance(w, h)
	default:
		return o.infinity
	}
}

// maxSquaredDistance is the largest squared offset between two cells of a w×h grid.
func maxSquaredDistance(w, h int) float64 {
	dx, dy := float64(max(w-1, 0)), float64(max(h-1, 0))

	return dx*dx + dy*dy
}

// validateInfinity checks the sentinel against the squared offsets a w×h grid
// can add to it.
func validateInfinity(inf float64, w, h int) error {
	m := float64(max(w, h))
	if inf <= 2*m*m {
		return fmt.Errorf("infinity=%g for %dx%d grid: %w", inf, w, h, ErrInfinityTooSmall)
	}

	return nil
}
