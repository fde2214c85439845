// Package intern canonicalizes the short strings the parser looks up over
// and over: single-character short option names during clustering and
// folded option/command names. Interning keeps repeated lookups from
// allocating a fresh string per token.
package intern

import "sync"

// Interner is a thread-safe canonical string table. The read path is a
// shared RLock; inserts take the write lock and double-check.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewInterner creates an interner with the given initial capacity.
func NewInterner(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, inserting it on first sight.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	if canonical, ok := in.strings[s]; ok {
		in.mu.RUnlock()
		return canonical
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if canonical, ok := in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// Preload inserts a batch of strings up front, avoiding write-lock churn
// during parsing.
func (in *Interner) Preload(values []string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, v := range values {
		in.strings[v] = v
	}
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}

// Pre-allocated single character strings: a-z (0-25), A-Z (26-51),
// 0-9 (52-61).
var singleCharStrings = [62]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

// Char returns the canonical one-character string for b without touching
// the table for the common alphanumeric cases.
func Char(b byte) string {
	switch {
	case b >= 'a' && b <= 'z':
		return singleCharStrings[b-'a']
	case b >= 'A' && b <= 'Z':
		return singleCharStrings[26+b-'A']
	case b >= '0' && b <= '9':
		return singleCharStrings[52+b-'0']
	default:
		return string(rune(b))
	}
}
