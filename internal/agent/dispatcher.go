package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hermes-agent/hermes/internal/agent/models"
)

// Dispatcher executes parsed invocations against the registry. Failures are
// never returned to the caller: the consumer of tool output is the model,
// so unknown tools and execution errors become explanatory text for the
// second pass to reason about.
type Dispatcher struct {
	registry *Registry
	now      func() time.Time
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry, now: time.Now}
}

// ExecuteOne looks up and runs a single tool. An unknown name yields a text
// result enumerating the registered tools; an executor error yields a text
// result naming the tool and the error.
func (d *Dispatcher) ExecuteOne(ctx context.Context, name string, args map[string]any) string {
	tool, ok := d.registry.Get(name)
	if !ok {
		return fmt.Sprintf("Error: Tool '%s' not found. Available tools: %s",
			name, strings.Join(d.registry.Names(), ", "))
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		slog.Warn("tool execution failed", "tool", name, "error", err)
		return fmt.Sprintf("Error executing %s: %v", name, err)
	}
	return result
}

// ExecuteAll runs the invocations sequentially in parser order. Each one
// gets a log entry *before* it executes, so a tool that dies mid-run still
// leaves an audit trail. Per-tool output goes under a "Tool: <name>"
// heading; sections are joined with a horizontal rule.
func (d *Dispatcher) ExecuteAll(ctx context.Context, invocations []models.ToolInvocation) (string, []models.ExecutionLogEntry) {
	results := make([]string, 0, len(invocations))
	log := make([]models.ExecutionLogEntry, 0, len(invocations))

	for _, inv := range invocations {
		log = append(log, models.ExecutionLogEntry{
			Tool:      inv.Name,
			Args:      inv.Args,
			Timestamp: d.now(),
		})

		slog.Debug("dispatching tool", "tool", inv.Name, "args", FormatArgs(inv.Args))
		result := d.ExecuteOne(ctx, inv.Name, inv.Args)
		results = append(results, fmt.Sprintf("**Tool: %s**\n\n%s", inv.Name, result))
	}

	return strings.Join(results, "\n\n---\n\n"), log
}

// FormatArgs renders an argument map as "k=v, ..." with sorted keys, so log
// lines and exports are deterministic regardless of map iteration order.
func FormatArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := args[k]
		if v == nil {
			parts = append(parts, fmt.Sprintf("%s=none", k))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ", ")
}
