// Package match ranks known names by edit distance to an unknown one, for
// "did you mean" hints on unknown rename rules and unmatched decode input.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest known names to an unknown one
package match
