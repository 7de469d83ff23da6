package keybind

import (
	"sort"

	"github.com/dshills/photokeys/internal/catalog"
)

// ResultKind classifies the outcome of a single keystroke.
type ResultKind int

const (
	// ResultExactMatch means the buffer now equals a table value; the
	// matched album is selected and the buffer resets.
	ResultExactMatch ResultKind = iota
	// ResultValidContinuation means the buffer is a proper prefix of at
	// least one table value.
	ResultValidContinuation
	// ResultInvalid means the keystroke extends no table value. The buffer
	// is left unchanged; the caller decides whether to clear it.
	ResultInvalid
)

// String returns the kind name for logging.
func (k ResultKind) String() string {
	switch k {
	case ResultExactMatch:
		return "exact"
	case ResultValidContinuation:
		return "partial"
	case ResultInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the classification of one keystroke.
type Result struct {
	Kind ResultKind

	// Album is the selected album, set for ResultExactMatch.
	Album catalog.AlbumID

	// Partial is the buffer after the keystroke, set for
	// ResultValidContinuation.
	Partial string

	// Rejected is the offending keystroke, set for ResultInvalid.
	Rejected rune
}

// trieNode is one node of the binding prefix tree. Children are keyed by
// byte; bindings are lowercase ASCII alphanumeric by construction.
type trieNode struct {
	children map[byte]*trieNode
	album    catalog.AlbumID
	terminal bool
}

// Validator interprets keystrokes against a fixed Table snapshot, one
// character at a time. It is tied to the table generation it was built
// from: when the table is rebuilt, build a fresh Validator and revalidate
// any in-flight partial input against it.
//
// Exact match wins immediately: if the buffer equals a table value, the
// album is selected even when a longer value shares that prefix. A properly
// allocated table is prefix-free, so the case only arises for externally
// constructed tables.
//
// Validator is not safe for concurrent use.
type Validator struct {
	root   *trieNode
	buffer string
}

// NewValidator builds a validator from a table snapshot.
func NewValidator(t Table) *Validator {
	root := newTrieNode()
	for _, id := range t.IDs() {
		node := root
		binding := t[id]
		for i := 0; i < len(binding); i++ {
			c := binding[i]
			child, ok := node.children[c]
			if !ok {
				child = newTrieNode()
				node.children[c] = child
			}
			node = child
		}
		node.terminal = true
		node.album = id
	}
	return &Validator{root: root}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[byte]*trieNode)}
}

// Partial returns the current partial input buffer.
func (v *Validator) Partial() string {
	return v.buffer
}

// Reset clears the partial input buffer. Called on Escape and when
// entering or leaving keybinding mode.
func (v *Validator) Reset() {
	v.buffer = ""
}

// Truncate removes the last character of the buffer (backspace) and
// returns the new buffer. Truncation is always valid.
func (v *Validator) Truncate() string {
	if v.buffer != "" {
		v.buffer = v.buffer[:len(v.buffer)-1]
	}
	return v.buffer
}

// Key processes one keystroke against the buffer and the table.
func (v *Validator) Key(c rune) Result {
	next := v.buffer + string(c)
	node := v.walk(next)

	switch {
	case node == nil:
		return Result{Kind: ResultInvalid, Rejected: c}
	case node.terminal:
		v.buffer = ""
		return Result{Kind: ResultExactMatch, Album: node.album}
	default:
		v.buffer = next
		return Result{Kind: ResultValidContinuation, Partial: next}
	}
}

// NextAvailable returns the sorted set of characters that extend partial
// toward (or onto) a table value. Used for UI hinting only.
func (v *Validator) NextAvailable(partial string) []rune {
	node := v.walk(partial)
	if node == nil || len(node.children) == 0 {
		return nil
	}

	out := make([]rune, 0, len(node.children))
	for c := range node.children {
		out = append(out, rune(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// walk descends the trie along s, returning nil if s leaves the tree.
// Multi-byte runes never match: children are keyed by the single-byte
// binding alphabet.
func (v *Validator) walk(s string) *trieNode {
	node := v.root
	for i := 0; i < len(s); i++ {
		child, ok := node.children[s[i]]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}
