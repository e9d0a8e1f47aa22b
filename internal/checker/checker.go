// Package checker implements Verse's type checker: inference, structural
// assignability, and the symbol-table/custom-type-registry bookkeeping the
// emitter later relies on.
package checker

import (
	"fmt"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/types"
)

// TypeError is the single error type returned by Check/InferReturnType,
// classified per spec.md §7 as a semantic error.
type TypeError struct {
	Message string
	Line    int
}

func (e *TypeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d", e.Message, e.Line)
	}
	return e.Message
}

// Scope is one lexical level of the symbol-table stack: a mapping from
// identifier to semantic type.
type Scope struct {
	symbols map[string]types.Type
}

func newScope() *Scope {
	return &Scope{symbols: make(map[string]types.Type)}
}

// Checker walks a parsed program, maintaining a symbol-table scope stack, a
// custom-type registry, and the two async-context flags from spec.md §4.3.
type Checker struct {
	scopes               []*Scope
	registry             *types.Registry
	inAsync              bool
	topLevelAwaitAllowed bool
}

// New creates a Checker seeded with contextTypes (host-supplied bindings,
// per spec.md §3 "top scope is seeded at construction") and sharing
// registry, which may already hold entries from prior compiles on the same
// compiler instance.
func New(contextTypes map[string]types.Type, registry *types.Registry) *Checker {
	c := &Checker{
		registry:             registry,
		topLevelAwaitAllowed: true,
	}
	root := newScope()
	for name, t := range contextTypes {
		root.symbols[name] = t
	}
	c.scopes = append(c.scopes, root)
	return c
}

func (c *Checker) pushScope() {
	c.scopes = append(c.scopes, newScope())
}

func (c *Checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *Checker) define(name string, t types.Type) {
	c.scopes[len(c.scopes)-1].symbols[name] = t
}

// lookup walks the scope stack inner->outer, falling back to the custom
// type registry (per spec.md §4.3's Identifier rule) when the name is not a
// bound symbol.
func (c *Checker) lookup(name string) types.Type {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if t, ok := c.scopes[i].symbols[name]; ok {
			return t
		}
	}
	if t, ok := c.registry.Lookup(name); ok {
		return t
	}
	return types.Unknown
}

// IsDeclared reports whether name is bound in any active scope. The emitter
// does not call it; it keeps its own declared-name stack.
func (c *Checker) IsDeclared(name string) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i].symbols[name]; ok {
			return true
		}
	}
	return false
}

func (c *Checker) enterAsync(async bool) (restore func()) {
	prev := c.inAsync
	c.inAsync = async
	return func() { c.inAsync = prev }
}

// Check walks program in declared order, populating the symbol table and
// custom-type registry as a side effect. It returns the type of the last
// top-level statement. Return statements are collected but discarded; use
// InferReturnType to get the program's return type.
func (c *Checker) Check(program *ast.Program) (types.Type, error) {
	restore := c.enterAsync(c.topLevelAwaitAllowed)
	defer restore()
	var acc []types.Type
	return c.checkStatements(program.Statements, &acc)
}

// checkStatements type-checks stmts in order, collecting any `return`
// expression types into acc. acc is shared across If/For bodies (they do
// not start a new function scope) but a FuncDecl gives its own body a fresh
// accumulator, per spec.md §4.3's "not through nested FuncDecl" rule.
func (c *Checker) checkStatements(stmts []ast.Statement, acc *[]types.Type) (types.Type, error) {
	var last types.Type = types.Unknown
	for _, s := range stmts {
		t, err := c.checkStatement(s, acc)
		if err != nil {
			return nil, err
		}
		last = t
	}
	return last, nil
}

// InferReturnType runs Check to populate the tables while collecting every
// `return` statement reachable through Program/If/For bodies (never through
// a nested FuncDecl), per spec.md §4.3.
func (c *Checker) InferReturnType(program *ast.Program) (types.Type, error) {
	restore := c.enterAsync(c.topLevelAwaitAllowed)
	defer restore()
	var acc []types.Type
	if _, err := c.checkStatements(program.Statements, &acc); err != nil {
		return nil, err
	}
	return unionOf(acc), nil
}

// unionOf implements spec.md §4.3's "Unknown when none; the sole type when
// one; otherwise a Union ... in encounter order" rule.
func unionOf(ts []types.Type) types.Type {
	switch len(ts) {
	case 0:
		return types.Unknown
	case 1:
		return ts[0]
	default:
		return &types.Union{Alternatives: ts}
	}
}
