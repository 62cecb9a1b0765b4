// Package evaluator wraps the external evaluation boundary: a single
// function turning source text into result text. The workbench never sees
// past this boundary; which language sits behind it is opaque.
package evaluator

import (
	"context"
	"errors"
)

// Func is the evaluation boundary. It may return an implementation-defined
// error for malformed input; callers must not surface its detail.
type Func func(ctx context.Context, source string) (string, error)

// Readiness tracks the lazily resolved binding. The zero value is Unready.
type Readiness int

const (
	// Unready means resolution has not completed yet; evaluation must be
	// refused, not attempted.
	Unready Readiness = iota
	// Ready means the binding resolved and can be called.
	Ready
	// Unavailable means resolution finished and failed; it is a terminal
	// state, distinct from Unready so the UI can say so.
	Unavailable
)

func (r Readiness) String() string {
	switch r {
	case Ready:
		return "ready"
	case Unavailable:
		return "unavailable"
	default:
		return "loading"
	}
}

// ErrNotReady is returned by Evaluate while the binding has not resolved.
var ErrNotReady = errors.New("evaluator binding not ready")

// ErrUnavailable is returned by Evaluate once resolution has failed.
var ErrUnavailable = errors.New("evaluator binding unavailable")

// Capability is the resolved-or-not evaluation capability handed to the
// workbench. The zero value is Unready.
type Capability struct {
	readiness Readiness
	fn        Func
}

// Bind wraps fn as a ready capability.
func Bind(fn Func) Capability {
	return Capability{readiness: Ready, fn: fn}
}

// Refused returns a capability in the terminal Unavailable state.
func Refused() Capability {
	return Capability{readiness: Unavailable}
}

// Readiness reports the capability's resolution state.
func (c Capability) Readiness() Readiness { return c.readiness }

// Evaluate calls through the boundary. It refuses with ErrNotReady or
// ErrUnavailable rather than attempting a call that cannot succeed.
func (c Capability) Evaluate(ctx context.Context, source string) (string, error) {
	switch c.readiness {
	case Ready:
		return c.fn(ctx, source)
	case Unavailable:
		return "", ErrUnavailable
	default:
		return "", ErrNotReady
	}
}
