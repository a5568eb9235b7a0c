// Package template loads input deck templates and renders them.
//
// Two rendering styles are supported: named {{TOKEN}} substitution driven by
// a parameter row (sweep mode), and ordered literal or case-insensitive
// replacement pairs with per-pair match counts (combination mode).
package template
