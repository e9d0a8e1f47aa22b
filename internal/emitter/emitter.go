// Package emitter renders a type-checked Verse program as target-language
// source text, tracking lexical scopes to tell locally-declared identifiers
// apart from host-supplied globals and injecting `await` at the read sites
// that need it.
package emitter

import "strings"

// scope is one lexical level of the emitter's declared-name stack. Unlike
// the checker's Scope, this carries no type information: the emitter only
// needs to know whether a name was declared locally.
type scope map[string]bool

// Emitter walks a checked tree, threading a scope stack and an
// async-context stack in lockstep with function/arrow/for bodies, exactly
// mirroring the checker's bracketing discipline.
type Emitter struct {
	scopes     []scope
	asyncStack []bool
}

// New creates an Emitter whose top-level scope starts empty (host context
// bindings are never locally declared, so they are candidates for `await`
// injection) and whose top-level async context starts true, matching the
// checker's "top-level is the body of an implicit async wrapper" rule.
func New() *Emitter {
	return &Emitter{
		scopes:     []scope{make(scope)},
		asyncStack: []bool{true},
	}
}

func (e *Emitter) inAsync() bool {
	return e.asyncStack[len(e.asyncStack)-1]
}

func (e *Emitter) pushAsync(v bool) {
	e.asyncStack = append(e.asyncStack, v)
}

func (e *Emitter) popAsync() {
	e.asyncStack = e.asyncStack[:len(e.asyncStack)-1]
}

func (e *Emitter) pushScope() {
	e.scopes = append(e.scopes, make(scope))
}

func (e *Emitter) popScope() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

func (e *Emitter) define(name string) {
	e.scopes[len(e.scopes)-1][name] = true
}

func (e *Emitter) isDeclared(name string) bool {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if e.scopes[i][name] {
			return true
		}
	}
	return false
}

// indent prefixes every non-empty line of s with two spaces.
func indent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
