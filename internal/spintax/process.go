package spintax

import (
	"strings"

	"go.uber.org/zap"
)

// Process renders template for seed with vars: placeholders are substituted
// first, then groups are resolved with a sequence seeded by Hash(seed).
// Braces and pipes that come from variable values are never read as group
// syntax. Empty templates return the empty string.
func Process(template, seed string, vars Vars) string {
	out, _ := process(template, seed, vars)
	return out
}

// process also reports whether resolution stopped at MaxPasses with group
// syntax still present.
func process(template, seed string, vars Vars) (string, bool) {
	if template == "" {
		return "", false
	}

	text := substitute(template, vars, shield)
	text, passes := resolve(text, NewSequence(Hash(seed)))
	capped := passes >= MaxPasses && needsPass(text)
	if strings.ContainsAny(text, shieldOpen+shieldClose+shieldPipe) {
		text = unshield.Replace(text)
	}
	return text, capped
}

// Engine is Process with diagnostics. It is safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an engine that reports resolution problems to logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Process renders template like the package-level Process and logs a
// warning when group resolution stops at MaxPasses.
func (e *Engine) Process(template, seed string, vars Vars) string {
	out, capped := process(template, seed, vars)
	if capped {
		e.logger.Warn("spintax pass limit reached, output may contain unresolved groups",
			zap.String("seed", seed),
			zap.Int("passes", MaxPasses),
			zap.Int("length", len(out)),
		)
	}
	return out
}
