// Package template provides a Handlebars layout engine that assembles
// rendered page fields into one document.
//
// Fields are rendered from spintax first; the layout only arranges the
// finished strings. Values are HTML-escaped unless written with triple
// braces.
//
// Example usage:
//
//	engine := template.NewEngine()
//
//	data := map[string]interface{}{
//	    "domain": "austinroofing.com",
//	    "fields": map[string]interface{}{
//	        "title":    "Austin Roof Repair Experts",
//	        "services": "Shingle repair | Leak detection | Storm damage",
//	    },
//	}
//
//	layout := "<h1>{{fields.title}}</h1><ul>{{#each (split fields.services \"|\")}}<li>{{this}}</li>{{/each}}</ul>"
//	result, err := engine.Render(layout, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Built-in helpers:
//   - uppercase - Convert string to uppercase
//   - lowercase - Convert string to lowercase
//   - trim - Trim whitespace from string
//   - default - Return default value if first arg is empty
//   - eq - Equality comparison
//   - split - Split a bullet-delimited string into trimmed, non-empty items
//   - join - Join items with a separator
package template
