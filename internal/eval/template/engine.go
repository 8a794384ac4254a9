package template

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
)

// raymond keeps helpers in a global registry and panics on duplicates.
var registerOnce sync.Once

// Engine renders Handlebars page layouts
type Engine struct {
	cache map[string]*raymond.Template
	mu    sync.RWMutex
}

// NewEngine creates a new layout engine
func NewEngine() *Engine {
	registerOnce.Do(registerHelpers)

	return &Engine{
		cache: make(map[string]*raymond.Template),
	}
}

// Render renders a layout with the given data
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

// ValidateTemplate validates a layout without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}

// ClearCache clears the compiled template cache
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*raymond.Template)
}

// SplitList splits text on sep, trims every item and drops empty ones.
func SplitList(text, sep string) []string {
	if sep == "" {
		sep = "|"
	}
	parts := strings.Split(text, sep)
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// registerHelpers registers custom Handlebars helpers
func registerHelpers() {
	raymond.RegisterHelper("uppercase", func(str string) string {
		return strings.ToUpper(str)
	})

	raymond.RegisterHelper("lowercase", func(str string) string {
		return strings.ToLower(str)
	})

	raymond.RegisterHelper("trim", func(str string) string {
		return strings.TrimSpace(str)
	})

	raymond.RegisterHelper("default", func(value interface{}, defaultValue interface{}) interface{} {
		if value == nil || value == "" {
			return defaultValue
		}
		return value
	})

	raymond.RegisterHelper("eq", func(a, b interface{}) bool {
		return a == b
	})

	// split turns a bullet-delimited field into a list for #each
	raymond.RegisterHelper("split", func(str, sep string) []string {
		return SplitList(str, sep)
	})

	raymond.RegisterHelper("join", func(arr []string, sep string) string {
		return strings.Join(arr, sep)
	})
}
