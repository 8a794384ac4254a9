// Package spintax expands spin-syntax templates into deterministic text.
//
// A template mixes two kinds of tokens:
//   - Placeholders, {{name}} or {name}, replaced from a variable map
//     (names match case-insensitively).
//   - Alternative groups, {a|b|c}, replaced by one of their options.
//
// The option picked for each group is driven by a seed string. The seed is
// hashed to a 32-bit value which initializes a linear congruential
// generator, so the same template, seed and variables always produce the
// same text while different seeds (usually site domains) produce different
// copy.
//
// Example usage:
//
//	out := spintax.Process(
//	    "{{city}} water damage {cleanup|restoration} experts",
//	    "example.com",
//	    spintax.Vars{"city": "Austin"},
//	)
//	// out is either "Austin water damage cleanup experts" or
//	// "Austin water damage restoration experts", always the same one
//	// for "example.com".
//
// Variables are substituted before groups are resolved, so a variable value
// may contain literal '{', '}' or '|' characters without being read as
// spin syntax.
//
// The generator is not cryptographically secure. It only exists to make
// choices repeatable.
package spintax
