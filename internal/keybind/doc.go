// Package keybind assigns short keyboard shortcuts ("keybindings") to albums
// and interprets keystrokes against the resulting table.
//
// Given an album set, the allocator derives for each album a ranked list of
// candidate strings from the words of its name, then runs up to ten priority
// rounds. Each round resolves exact and prefix conflicts between candidates,
// trims surviving candidates to their minimal unambiguous length, and commits
// them. The finished Table is prefix-free: no assigned binding is a prefix of
// another, so keystroke-by-keystroke matching is never ambiguous.
//
// The Validator consumes a Table snapshot and classifies one keystroke at a
// time as an exact match, a valid continuation, or invalid. Tables are
// rebuilt wholesale whenever the album set changes; a Validator is tied to
// the table generation it was built from.
//
// Every function in this package is pure and total: there are no error
// returns. An album whose name yields no usable candidates simply ends up
// absent from the table, which callers must treat as a normal state.
package keybind
