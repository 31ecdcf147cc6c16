package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hermes-agent/hermes/internal/agent/models"
)

// The wire format between the model and the dispatcher is free text
// containing zero or more occurrences of:
//
//	TOOL_CALL: tool_name(param1="value1", param2="value2")
//
// toolCallPattern matches the marker, a tool name, and the argument body.
// (?s) lets the body span newlines; the non-greedy body stops at the first
// closing parenthesis. Spans that do not match (missing parenthesis, bad
// identifier) are simply not extracted; malformed model output must never
// crash the pipeline.
var toolCallPattern = regexp.MustCompile(`(?s)TOOL_CALL:\s*(\w+)\((.*?)\)`)

// argPattern is a best-effort split of the argument body into key=value
// fragments: optional surrounding quotes, value captured up to the next
// comma or end of body. Values that themselves contain commas or embedded
// quotes can mis-split; that is a known limitation of the protocol, not
// something this parser tries to fix.
var argPattern = regexp.MustCompile(`(\w+)=["']?(.*?)["']?(?:,|$)`)

// ParseToolCalls extracts every tool invocation embedded in the model's
// response, in left-to-right order. A response with no well-formed calls
// yields an empty slice, which the orchestrator treats as "no tool use
// requested".
func ParseToolCalls(text string) []models.ToolInvocation {
	matches := toolCallPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	invocations := make([]models.ToolInvocation, 0, len(matches))
	for _, m := range matches {
		name, body := m[1], m[2]

		args := map[string]any{}
		if strings.TrimSpace(body) != "" {
			for _, am := range argPattern.FindAllStringSubmatch(body, -1) {
				args[am[1]] = coerceValue(am[2])
			}
		}

		invocations = append(invocations, models.ToolInvocation{
			Name: name,
			Args: args,
		})
	}
	return invocations
}

// coerceValue normalizes a raw argument value: surrounding whitespace and
// quote characters are stripped, "none" (any case) becomes nil, all-digit
// values become ints, everything else stays a string.
func coerceValue(raw string) any {
	v := strings.TrimSpace(raw)
	v = strings.Trim(v, `"'`)

	if strings.EqualFold(v, "none") {
		return nil
	}
	if isDigits(v) {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
