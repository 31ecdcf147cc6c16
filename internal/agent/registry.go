package agent

import (
	"context"
	"fmt"
	"strings"
)

// Param is one declared tool parameter: its name and the human-readable
// hint shown to the model in the system prompt. Parameters are a slice, not
// a map, because the prompt rendering must be deterministic.
type Param struct {
	Name string
	Hint string
}

// Tool is a named, read-only analysis operation exposed to the model.
// Implementations must be safe for concurrent use; the registry is built
// once at startup and never mutated afterwards.
type Tool interface {
	// Name returns the unique identifier the model uses in TOOL_CALL text
	Name() string

	// Description returns the human-readable description embedded in the
	// system prompt
	Description() string

	// Params returns the declared parameters in declaration order
	Params() []Param

	// Execute runs the tool with the parsed argument map. Values are nil,
	// int, or string as produced by the parser.
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Registry holds the available tools, preserving registration order so the
// rendered description (and therefore the system prompt) is identical from
// run to run.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry builds a registry from the given tools in order. Duplicate
// names are a programming error and panic at startup rather than silently
// shadowing a tool.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, dup := r.tools[t.Name()]; dup {
			panic(fmt.Sprintf("duplicate tool registered: %s", t.Name()))
		}
		r.order = append(r.order, t.Name())
		r.tools[t.Name()] = t
	}
	return r
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Describe renders every tool as "- name: description", followed by an
// indented "Parameters: name: hint, ..." line when the tool declares
// parameters. Entries are blank-line separated, in registration order. The
// result is embedded verbatim in the system prompt.
func (r *Registry) Describe() string {
	entries := make([]string, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]

		var b strings.Builder
		fmt.Fprintf(&b, "- %s: %s", t.Name(), t.Description())
		if params := t.Params(); len(params) > 0 {
			hints := make([]string, 0, len(params))
			for _, p := range params {
				hints = append(hints, fmt.Sprintf("%s: %s", p.Name, p.Hint))
			}
			fmt.Fprintf(&b, "\n  Parameters: %s", strings.Join(hints, ", "))
		}
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n")
}
