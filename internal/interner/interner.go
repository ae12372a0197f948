// Package interner canonicalizes identifier strings so that equality is a
// single integer comparison. The table is process-wide and append-only:
// symbols stay valid for the lifetime of the session.
package interner

import "sync"

// Symbol is the interned handle for one identifier string. Two symbols are
// equal iff their textual forms are equal.
type Symbol uint32

var table = struct {
	mu    sync.RWMutex
	index map[string]Symbol
	names []string
}{
	index: make(map[string]Symbol),
}

// Intern returns the canonical symbol for name, adding it on first use.
func Intern(name string) Symbol {
	table.mu.RLock()
	sym, ok := table.index[name]
	table.mu.RUnlock()
	if ok {
		return sym
	}

	table.mu.Lock()
	defer table.mu.Unlock()

	// Another writer may have interned it between the two lock scopes.
	if sym, ok := table.index[name]; ok {
		return sym
	}

	sym = Symbol(len(table.names))
	table.names = append(table.names, name)
	table.index[name] = sym
	return sym
}

// String returns the original lexeme for the symbol.
func (s Symbol) String() string {
	table.mu.RLock()
	defer table.mu.RUnlock()

	if int(s) >= len(table.names) {
		return "<unknown symbol>"
	}
	return table.names[s]
}
