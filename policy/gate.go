package policy

import (
	"context"

	"github.com/skillsenselab/webcore/errors"
)

// Config is the per-route configuration passed to a policy.
type Config map[string]any

// Policy is the guard capability. Allow returns (true, nil) to permit the
// action. Returning false denies with a generic PolicyError; returning an
// error denies with that error (taxonomy errors pass through unchanged).
type Policy interface {
	Allow(ctx context.Context, cfg Config) (bool, error)
}

// PolicyFunc is an adapter to use ordinary functions as Policy.
type PolicyFunc func(ctx context.Context, cfg Config) (bool, error)

// Allow implements Policy.
func (f PolicyFunc) Allow(ctx context.Context, cfg Config) (bool, error) {
	return f(ctx, cfg)
}

// State is the terminal outcome of an evaluation.
type State int

const (
	// Allowed means the policy permitted the action.
	Allowed State = iota
	// Denied means the policy rejected the action.
	Denied
)

// String returns the state name.
func (s State) String() string {
	if s == Allowed {
		return "allowed"
	}
	return "denied"
}

// Decision is the result of evaluating a policy. Err is nil exactly when
// the state is Allowed.
type Decision struct {
	State State
	Err   *errors.Error
}

// Allowed reports whether the decision permits the action.
func (d Decision) Allowed() bool { return d.State == Allowed }

// Gate evaluates policies and translates rejections into taxonomy errors.
// The zero value is ready to use.
type Gate struct{}

// NewGate creates a Gate.
func NewGate() *Gate { return &Gate{} }

// Evaluate runs a single policy against the context and config.
func (g *Gate) Evaluate(ctx context.Context, p Policy, cfg Config) Decision {
	ok, err := p.Allow(ctx, cfg)
	switch {
	case err != nil:
		if e, found := errors.As(err); found {
			return Decision{State: Denied, Err: e}
		}
		return Decision{State: Denied, Err: errors.Policy("").WithCause(err)}
	case !ok:
		return Decision{State: Denied, Err: errors.Policy("")}
	default:
		return Decision{State: Allowed}
	}
}

// EvaluateAll runs policies in order and returns the first denial, or an
// allowed decision when every policy passes.
func (g *Gate) EvaluateAll(ctx context.Context, cfg Config, policies ...Policy) Decision {
	for _, p := range policies {
		if d := g.Evaluate(ctx, p, cfg); !d.Allowed() {
			return d
		}
	}
	return Decision{State: Allowed}
}
