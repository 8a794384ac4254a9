package spintax

import (
	"sort"
	"strings"
)

// Vars maps placeholder names to replacement values.
type Vars map[string]string

// index returns the variables keyed by lower-cased name. When two names
// differ only by case, the one that sorts first wins.
func (v Vars) index() map[string]string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	idx := make(map[string]string, len(keys))
	for _, k := range keys {
		lk := strings.ToLower(k)
		if _, ok := idx[lk]; ok {
			continue
		}
		idx[lk] = v[k]
	}
	return idx
}

// Substitute replaces every {{name}} and {name} placeholder whose name is a
// key of vars (case-insensitive) with the key's value.
//
// The text is scanned once from left to right and replacement values are
// copied to the output without being scanned again, so a value can never
// introduce a new placeholder. Placeholders for unknown names are
// left verbatim. Empty text yields the empty string.
func Substitute(text string, vars Vars) string {
	return substitute(text, vars, nil)
}

// substitute is Substitute with an optional rewrite applied to every value
// written to the output.
func substitute(text string, vars Vars, rewrite *strings.Replacer) string {
	if text == "" || len(vars) == 0 {
		return text
	}
	idx := vars.index()
	if rewrite != nil {
		for k, v := range idx {
			idx[k] = rewrite.Replace(v)
		}
	}

	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '{' {
			next := strings.IndexByte(text[i:], '{')
			if next < 0 {
				b.WriteString(text[i:])
				break
			}
			b.WriteString(text[i : i+next])
			i += next
			continue
		}

		if value, n, ok := matchPlaceholder(text[i:], idx); ok {
			b.WriteString(value)
			i += n
			continue
		}

		b.WriteByte('{')
		i++
	}

	return b.String()
}

// matchPlaceholder reports whether s starts with {{name}} or {name} for a
// known name and returns its value and the length of the token. The double
// brace form is tried first.
func matchPlaceholder(s string, idx map[string]string) (string, int, bool) {
	if strings.HasPrefix(s, "{{") {
		if end := strings.Index(s[2:], "}}"); end > 0 {
			if value, ok := idx[strings.ToLower(s[2:2+end])]; ok {
				return value, end + 4, true
			}
		}
	}

	end := strings.IndexByte(s[1:], '}')
	if end <= 0 {
		return "", 0, false
	}
	value, ok := idx[strings.ToLower(s[1:1+end])]
	if !ok {
		return "", 0, false
	}
	return value, end + 2, true
}

// Private-use runes stand in for syntax characters of substituted values
// while groups are resolved.
const (
	shieldOpen  = "\uE000"
	shieldClose = "\uE001"
	shieldPipe  = "\uE002"
)

var (
	shield   = strings.NewReplacer("{", shieldOpen, "}", shieldClose, "|", shieldPipe)
	unshield = strings.NewReplacer(shieldOpen, "{", shieldClose, "}", shieldPipe, "|")
)
