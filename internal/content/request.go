package content

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingDomain is returned when a request carries no domain to seed from.
	ErrMissingDomain = errors.New("domain is required")
	// ErrNoFields is returned when a request has nothing to render.
	ErrNoFields = errors.New("at least one field is required")
	// ErrEmptyFieldName is returned for a field without a name.
	ErrEmptyFieldName = errors.New("field name is required")
	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field name")
)

// Field is one spintax attribute of a page, such as a title or a paragraph
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Template string `json:"template" yaml:"template"`

	// SeedSuffix is appended to the domain to vary output per page type
	SeedSuffix string `json:"seed_suffix,omitempty" yaml:"seed_suffix,omitempty"`

	// When is an optional CEL condition; the field is skipped unless it is true
	When string `json:"when,omitempty" yaml:"when,omitempty"`
}

// RenderRequest describes a page to render for one site
type RenderRequest struct {
	RequestID string            `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Domain    string            `json:"domain" yaml:"domain"`
	Page      string            `json:"page,omitempty" yaml:"page,omitempty"`
	Vars      map[string]string `json:"vars,omitempty" yaml:"vars,omitempty"`
	Fields    []Field           `json:"fields" yaml:"fields"`
	Layout    string            `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// Validate checks the request before rendering
func (r *RenderRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("request is nil")
	}

	if r.Domain == "" {
		return ErrMissingDomain
	}

	if len(r.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]bool, len(r.Fields))
	for i, f := range r.Fields {
		if f.Name == "" {
			return fmt.Errorf("field %d: %w", i, ErrEmptyFieldName)
		}
		if seen[f.Name] {
			return fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		seen[f.Name] = true
	}

	return nil
}

// Seed returns the seed used to render field f
func (r *RenderRequest) Seed(f Field) string {
	return r.Domain + f.SeedSuffix
}

// RenderResult holds the rendered fields of a page
type RenderResult struct {
	RequestID  string            `json:"request_id"`
	Domain     string            `json:"domain"`
	Page       string            `json:"page,omitempty"`
	Fields     map[string]string `json:"fields"`
	Order      []string          `json:"order"`
	Skipped    []string          `json:"skipped,omitempty"`
	Document   string            `json:"document,omitempty"`
	RenderedAt time.Time         `json:"rendered_at"`
}
