// Package cel provides a CEL (Common Expression Language) evaluator for
// conditional page fields.
//
// A field may carry a `when` condition that decides whether it is rendered
// for a given site. Conditions see three variables:
//   - domain: the site domain (string)
//   - page: the page identifier (string)
//   - vars: the page's template variables (map of string to string)
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	act := cel.Activation("austinroofing.com", "storm-damage", map[string]string{
//	    "city": "Austin",
//	    "phone": "512-555-0100",
//	})
//
//	ok, err := evaluator.Matches(ctx, "'phone' in vars && vars.phone != ''", act)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - String operations: contains, startsWith, endsWith, matches
//   - Map access and membership: vars.city, vars["city"], 'city' in vars
package cel
