package managed

import (
	"context"
)

// Policy names accepted in configuration
const (
	PolicyDefault = "default"
	PolicyCoupled = "coupled"
)

// Policy decides how an edit transforms a unit's state
type Policy interface {
	Name() string
	Transition(cur State, e Edit) (State, EditSet, error)
}

// Committer is implemented by policies whose edits take effect immediately
// instead of waiting for the apply cycle
type Committer interface {
	Commit(ctx context.Context, state State) error
}

// Loader is implemented by policies that keep their own state instead of
// reading it from the unit manager
type Loader interface {
	Load(ctx context.Context) (State, error)
}

type defaultPolicy struct{}

// DefaultPolicy requires an explicit enable after unmask
func DefaultPolicy() Policy { return defaultPolicy{} }

func (defaultPolicy) Name() string { return PolicyDefault }

func (defaultPolicy) Transition(cur State, e Edit) (State, EditSet, error) {
	return ApplyEdit(cur, e, false)
}

type coupledPolicy struct{}

// CoupledPolicy ties unmask to enable and start
func CoupledPolicy() Policy { return coupledPolicy{} }

func (coupledPolicy) Name() string { return PolicyCoupled }

func (coupledPolicy) Transition(cur State, e Edit) (State, EditSet, error) {
	return ApplyEdit(cur, e, true)
}

// PolicyByName returns the named built-in policy, or false when unknown
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "", PolicyDefault:
		return DefaultPolicy(), true
	case PolicyCoupled:
		return CoupledPolicy(), true
	}
	return nil, false
}
