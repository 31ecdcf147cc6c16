package agent

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Validator is implemented by request types that want their decoded
// arguments checked before execution.
type Validator interface {
	Validate() error
}

// Executor runs a tool with a typed request decoded from the model's
// argument map.
type Executor[Req any] func(ctx context.Context, req Req) (string, error)

// Adapter wraps one analysis function behind the Tool interface. It
// centralizes the plumbing every tool needs: decoding the loosely-typed
// argument map into a typed request with mapstructure, running the optional
// Validate hook, and invoking the executor. Nullable parameters are pointer
// fields on Req; a nil argument value decodes to a nil pointer.
type Adapter[Req any] struct {
	name        string
	description string
	params      []Param
	executor    Executor[Req]
}

// NewAdapter builds a tool adapter from its registry metadata and executor.
func NewAdapter[Req any](name, description string, params []Param, executor Executor[Req]) *Adapter[Req] {
	return &Adapter[Req]{
		name:        name,
		description: description,
		params:      params,
		executor:    executor,
	}
}

// Name implements Tool.
func (a *Adapter[Req]) Name() string { return a.name }

// Description implements Tool.
func (a *Adapter[Req]) Description() string { return a.description }

// Params implements Tool.
func (a *Adapter[Req]) Params() []Param { return a.params }

// Execute implements Tool.
func (a *Adapter[Req]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req
	if err := mapstructure.Decode(args, &req); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return "", fmt.Errorf("%s validation failed: %w", a.name, err)
		}
	}

	return a.executor(ctx, req)
}
