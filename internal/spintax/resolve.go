package spintax

import (
	"regexp"
	"strings"
)

// MaxPasses bounds the number of scan-and-replace passes Resolve performs.
const MaxPasses = 100

// groupPattern matches one innermost group: a brace pair with no braces
// between them.
var groupPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Resolve replaces alternative groups in text with options drawn from next.
//
// Each pass replaces every group found in the text at the start of the pass,
// left to right, drawing one value per group. Passes repeat while the text
// contains both a '{' and a '|' and fewer than MaxPasses passes have run.
// A group whose options are all blank after trimming is left as-is and
// consumes no draw. Text still holding groups when the cap is reached is
// returned unchanged from the last pass.
func Resolve(text string, next Sequence) string {
	out, _ := resolve(text, next)
	return out
}

// resolve is Resolve that also reports how many passes ran.
func resolve(text string, next Sequence) (string, int) {
	passes := 0
	for passes < MaxPasses && needsPass(text) {
		text = groupPattern.ReplaceAllStringFunc(text, func(group string) string {
			return pick(group, next)
		})
		passes++
	}
	return text, passes
}

// needsPass is the loop condition of Resolve. It is a cheap heuristic, not a
// grammar check: literal braces and pipes keep it true.
func needsPass(text string) bool {
	return strings.Contains(text, "{") && strings.Contains(text, "|")
}

// pick chooses one option of group, which includes its braces.
func pick(group string, next Sequence) string {
	options := splitOptions(group[1 : len(group)-1])
	if len(options) == 0 {
		return group
	}

	i := int(next() * float64(len(options)))
	if i >= len(options) {
		i = len(options) - 1
	}
	return options[i]
}

// splitOptions splits the inside of a group on '|' and drops options that
// are blank after trimming.
func splitOptions(inner string) []string {
	parts := strings.Split(inner, "|")
	options := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			options = append(options, p)
		}
	}
	return options
}
