package cel

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// Evaluator evaluates CEL conditions against a page's render context
type Evaluator struct {
	env   *cel.Env
	cache map[string]cel.Program
	mu    sync.RWMutex
}

// NewEvaluator creates a new CEL evaluator
func NewEvaluator() *Evaluator {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("domain", decls.String),
			decls.NewVar("page", decls.String),
			decls.NewVar("vars", decls.NewMapType(decls.String, decls.String)),
		),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create CEL environment: %v", err))
	}

	return &Evaluator{
		env:   env,
		cache: make(map[string]cel.Program),
	}
}

// Activation builds the variable bindings for a render context
func Activation(domain, page string, vars map[string]string) map[string]interface{} {
	if vars == nil {
		vars = map[string]string{}
	}
	return map[string]interface{}{
		"domain": domain,
		"page":   page,
		"vars":   vars,
	}
}

// Evaluate evaluates a CEL expression with the given variables
func (e *Evaluator) Evaluate(ctx context.Context, expression string, vars map[string]interface{}) (interface{}, error) {
	program, err := e.getProgram(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression: %w", err)
	}

	out, _, err := program.ContextEval(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	return out.Value(), nil
}

// Matches evaluates a condition and reports whether it returned true.
// Non-boolean results are an error.
func (e *Evaluator) Matches(ctx context.Context, expression string, vars map[string]interface{}) (bool, error) {
	result, err := e.Evaluate(ctx, expression, vars)
	if err != nil {
		return false, err
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition returned %T, want bool", result)
	}
	return matched, nil
}

// getProgram gets a compiled program from cache or compiles it
func (e *Evaluator) getProgram(expression string) (cel.Program, error) {
	e.mu.RLock()
	if program, ok := e.cache[expression]; ok {
		e.mu.RUnlock()
		return program, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if program, ok := e.cache[expression]; ok {
		return program, nil
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("parse error: %w", issues.Err())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program generation error: %w", err)
	}

	e.cache[expression] = program

	return program, nil
}

// ValidateExpression checks that expression compiles and yields a bool
func (e *Evaluator) ValidateExpression(expression string) error {
	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return issues.Err()
	}

	if !ast.OutputType().IsExactType(cel.BoolType) {
		return fmt.Errorf("expression must return bool, got %s", ast.OutputType())
	}

	return nil
}

// ClearCache clears the compiled program cache
func (e *Evaluator) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]cel.Program)
}
