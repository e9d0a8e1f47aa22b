// Package verse is the host-facing façade over the Verse compiler
// pipeline: lex, parse, type-check, emit, wrapped behind a small Compiler
// object that carries registration state across calls.
package verse

import (
	"time"

	"github.com/BardsBallad/Verse/internal/checker"
	"github.com/BardsBallad/Verse/internal/emitter"
	"github.com/BardsBallad/Verse/internal/errors"
	"github.com/BardsBallad/Verse/internal/lexer"
	"github.com/BardsBallad/Verse/internal/parser"
	"github.com/BardsBallad/Verse/internal/types"
	"github.com/BardsBallad/Verse/internal/verselog"
)

// Compiler owns the symbol seeds (host context bindings plus registered
// functions) and the custom-type registry, both of which survive across
// Compile calls on the same instance.
type Compiler struct {
	context  map[string]types.Type
	registry *types.Registry
}

// New creates a Compiler whose top scope is seeded with contextTypes (may
// be nil).
func New(contextTypes map[string]types.Type) *Compiler {
	ctx := make(map[string]types.Type, len(contextTypes))
	for name, t := range contextTypes {
		ctx[name] = t
	}
	return &Compiler{context: ctx, registry: types.NewRegistry()}
}

// RegisterType adds or replaces an entry in the custom-type registry.
func (c *Compiler) RegisterType(name string, t types.Type) {
	c.registry.Register(name, t)
	verselog.RegistryMutation("type", name)
}

// RegisterFunction seeds the symbol table with a named Function binding.
func (c *Compiler) RegisterFunction(name string, params []types.Type, ret types.Type, async bool) {
	c.context[name] = &types.Function{Params: params, Return: ret, Async: async}
	verselog.RegistryMutation("function", name)
}

// CreateObjectType constructs a named structural Object type for host-side
// registration.
func CreateObjectType(name string, fields []types.Field) *types.Object {
	return &types.Object{Name: name, Fields: fields}
}

// CreateArrayType constructs an Array<element> type for host-side
// registration.
func CreateArrayType(element types.Type) *types.Array {
	return &types.Array{Element: element}
}

// Result is the outcome of a Compile call: either a successful returnType
// plus emitted code, or a single formatted error.
type Result struct {
	OK         bool
	ReturnType string
	Code       string
	Err        *errors.CompilerError
}

// Error returns the empty string on success, matching the spec's
// `{ok:false, error}` shape for callers that want a plain string.
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Compile lexes, parses, type-checks and emits source, returning promptly
// on the first error encountered at any stage. The registry and the context
// bindings survive the call; the per-call pipeline state does not.
func (c *Compiler) Compile(source string) Result {
	start := time.Now()
	defer func() { verselog.StageTiming("compile", time.Since(start)) }()

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return c.fail(errors.Lexical, err, source)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return c.fail(errors.Syntactic, err, source)
	}

	chk := checker.New(c.context, c.registry)
	returnType, err := chk.InferReturnType(program)
	if err != nil {
		return c.fail(errors.Semantic, err, source)
	}

	stashObjectTypes(program, c.registry)
	code := emitter.Emit(program)

	return Result{OK: true, ReturnType: returnType.String(), Code: code}
}

// fail wraps err into a CompilerError of the given stage, carrying the
// source for caret rendering. It switches on err's concrete type (the
// pipeline stages each return their own error type rather than a shared
// one) only to recover the line, column and bare message.
func (c *Compiler) fail(stage errors.Stage, err error, source string) Result {
	line, column, message := 0, 0, err.Error()
	switch e := err.(type) {
	case *lexer.LexError:
		line, column, message = e.Line, e.Column, e.Message
	case *parser.ParseError:
		line, message = e.Line, e.Message
	case *checker.TypeError:
		line, message = e.Line, e.Message
	}
	ce := errors.New(stage, message, source, lexer.Position{Line: line, Column: column})
	return Result{Err: ce}
}
