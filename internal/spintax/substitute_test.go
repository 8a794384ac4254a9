package spintax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		text string
		vars Vars
		want string
	}{
		{"empty text", "", Vars{"city": "Austin"}, ""},
		{"no vars", "Hello {{name}}", nil, "Hello {{name}}"},
		{"double brace", "{{city}} roofing", Vars{"city": "Austin"}, "Austin roofing"},
		{"single brace", "{city} roofing", Vars{"city": "Austin"}, "Austin roofing"},
		{"case insensitive", "{{CITY}} and {City}", Vars{"city": "Austin"}, "Austin and Austin"},
		{"key case ignored", "{{city}}", Vars{"City": "Austin"}, "Austin"},
		{"all occurrences", "{city}, {city}, {{city}}", Vars{"city": "Reno"}, "Reno, Reno, Reno"},
		{"unknown left verbatim", "Call {{phone}} in {city}", Vars{"city": "Austin"}, "Call {{phone}} in Austin"},
		{"empty value", "Hi {{name}}!", Vars{"name": ""}, "Hi !"},
		{"groups untouched", "{a|b} in {city}", Vars{"city": "Austin"}, "{a|b} in Austin"},
		{"unterminated", "{{city", Vars{"city": "Austin"}, "{{city"},
		{"half open double", "{{city}", Vars{"city": "Austin"}, "{Austin"},
		{"spaces not trimmed", "{{ city }}", Vars{"city": "Austin"}, "{{ city }}"},
		{"multi key", "{{business_name}} serves {city}, {state}", Vars{
			"business_name": "Acme Roofing",
			"city":          "Austin",
			"state":         "TX",
		}, "Acme Roofing serves Austin, TX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.text, tt.vars))
		})
	}
}

func TestSubstitute_ValuesNotRescanned(t *testing.T) {
	vars := Vars{
		"a": "{b}",
		"b": "x",
	}
	// Independent of map iteration order.
	for i := 0; i < 20; i++ {
		assert.Equal(t, "{b} x", Substitute("{a} {b}", vars))
	}
}

func TestSubstitute_CaseCollision(t *testing.T) {
	vars := Vars{
		"city": "lower",
		"CITY": "upper",
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, "upper", Substitute("{{City}}", vars))
	}
}
