package checker

import (
	"strconv"

	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/types"
)

// arrayMethodResult classifies how a call to an Array-receiver method
// shapes its result type, per spec.md §4.3's Call rule.
type arrayMethodResult int

const (
	arraySameArray arrayMethodResult = iota
	arrayElement
	arrayNumber
	arrayBoolean
)

var arrayMethods = map[string]arrayMethodResult{
	"filter":    arraySameArray,
	"map":       arraySameArray,
	"slice":     arraySameArray,
	"concat":    arraySameArray,
	"find":      arrayElement,
	"at":        arrayElement,
	"length":    arrayNumber,
	"findIndex": arrayNumber,
	"indexOf":   arrayNumber,
	"some":      arrayBoolean,
	"every":     arrayBoolean,
	"includes":  arrayBoolean,
}

func (c *Checker) inferExpr(e ast.Expression) (types.Type, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return c.inferLiteral(n), nil
	case *ast.Identifier:
		return c.lookup(n.Name), nil
	case *ast.Binary:
		return c.inferBinary(n)
	case *ast.Unary:
		return c.inferUnary(n)
	case *ast.Await:
		return c.inferAwait(n)
	case *ast.Call:
		return c.inferCall(n)
	case *ast.Member:
		return c.inferMember(n)
	case *ast.Array:
		return c.inferArray(n)
	case *ast.Object:
		return c.inferObject(n)
	case *ast.Conditional:
		return c.inferConditional(n)
	case *ast.Arrow:
		return c.inferArrow(n)
	case *ast.Assignment:
		return c.inferAssignment(n)
	}
	return types.Unknown, nil
}

func (c *Checker) inferLiteral(n *ast.Literal) types.Type {
	switch n.Kind {
	case ast.LiteralNumber:
		return types.Number
	case ast.LiteralString:
		return types.String
	case ast.LiteralBool:
		return types.Boolean
	case ast.LiteralNull:
		return types.Null
	}
	return types.Unknown
}

func (c *Checker) inferBinary(n *ast.Binary) (types.Type, error) {
	left, err := c.inferExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.inferExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "+":
		if isString(left) || isString(right) {
			return types.String, nil
		}
		return types.Number, nil
	case "-", "*", "/", "%":
		return types.Number, nil
	case "==", "!=", "<", "<=", ">", ">=", "&&", "||":
		return types.Boolean, nil
	}
	return types.Unknown, nil
}

func isString(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return ok && p.Name == "string"
}

func (c *Checker) inferUnary(n *ast.Unary) (types.Type, error) {
	if _, err := c.inferExpr(n.Operand); err != nil {
		return nil, err
	}
	switch n.Operator {
	case "!":
		return types.Boolean, nil
	case "-":
		return types.Number, nil
	}
	return types.Unknown, nil
}

func (c *Checker) inferAwait(n *ast.Await) (types.Type, error) {
	if !c.inAsync {
		return nil, &TypeError{Message: "await can only be used in async functions", Line: n.Pos().Line}
	}
	argType, err := c.inferExpr(n.Argument)
	if err != nil {
		return nil, err
	}
	if p, ok := argType.(*types.Promise); ok {
		return p.Resolve, nil
	}
	return argType, nil
}

func (c *Checker) inferCall(n *ast.Call) (types.Type, error) {
	for _, arg := range n.Args {
		if _, err := c.inferExpr(arg); err != nil {
			return nil, err
		}
	}

	if member, ok := n.Callee.(*ast.Member); ok {
		objType, err := c.inferExpr(member.Object)
		if err != nil {
			return nil, err
		}
		if arr, ok := objType.(*types.Array); ok {
			if name, ok := memberName(member); ok {
				if kind, known := arrayMethods[name]; known {
					switch kind {
					case arraySameArray:
						return arr, nil
					case arrayElement:
						return arr.Element, nil
					case arrayNumber:
						return types.Number, nil
					case arrayBoolean:
						return types.Boolean, nil
					}
				}
			}
		}
	}

	calleeType, err := c.inferExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	if fn, ok := calleeType.(*types.Function); ok {
		return fn.Return, nil
	}
	return types.Unknown, nil
}

// memberName returns the textual name of a non-computed Member's property,
// or a computed Member's literal-string property.
func memberName(m *ast.Member) (string, bool) {
	if !m.Computed {
		if id, ok := m.Property.(*ast.Identifier); ok {
			return id.Name, true
		}
		return "", false
	}
	if lit, ok := m.Property.(*ast.Literal); ok && lit.Kind == ast.LiteralString {
		return lit.String, true
	}
	return "", false
}

func (c *Checker) inferMember(n *ast.Member) (types.Type, error) {
	objType, err := c.inferExpr(n.Object)
	if err != nil {
		return nil, err
	}

	switch obj := objType.(type) {
	case *types.Object:
		if name, ok := memberName(n); ok {
			if ft, found := obj.Field(name); found {
				return ft, nil
			}
		}
		return types.Unknown, nil
	case *types.Array:
		if name, ok := memberName(n); ok && name == "length" {
			return types.Number, nil
		}
		if n.Computed {
			if lit, ok := n.Property.(*ast.Literal); ok && lit.Kind == ast.LiteralNumber {
				return obj.Element, nil
			}
		}
		return types.Unknown, nil
	}
	return types.Unknown, nil
}

func (c *Checker) inferArray(n *ast.Array) (types.Type, error) {
	if len(n.Elements) == 0 {
		return &types.Array{Element: types.Unknown}, nil
	}
	first, err := c.inferExpr(n.Elements[0])
	if err != nil {
		return nil, err
	}
	for _, el := range n.Elements[1:] {
		if _, err := c.inferExpr(el); err != nil {
			return nil, err
		}
	}
	return &types.Array{Element: first}, nil
}

func (c *Checker) inferObject(n *ast.Object) (types.Type, error) {
	fields := make([]types.Field, 0, len(n.Fields))
	for _, f := range n.Fields {
		ft, err := c.inferExpr(f.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, types.Field{Name: f.Key, Type: ft})
	}
	return &types.Object{Fields: fields}, nil
}

func (c *Checker) inferConditional(n *ast.Conditional) (types.Type, error) {
	if _, err := c.inferExpr(n.Test); err != nil {
		return nil, err
	}
	thenType, err := c.inferExpr(n.Then)
	if err != nil {
		return nil, err
	}
	elseType, err := c.inferExpr(n.Else)
	if err != nil {
		return nil, err
	}
	if thenType.Equals(elseType) {
		return thenType, nil
	}
	return &types.Union{Alternatives: []types.Type{thenType, elseType}}, nil
}

func (c *Checker) inferArrow(n *ast.Arrow) (types.Type, error) {
	c.pushScope()
	for _, p := range n.Params {
		c.define(p, types.Unknown)
	}
	restore := c.enterAsync(n.Async)
	bodyType, err := c.inferExpr(n.Body)
	restore()
	c.popScope()
	if err != nil {
		return nil, err
	}
	if n.Async {
		if _, isPromise := bodyType.(*types.Promise); !isPromise {
			bodyType = &types.Promise{Resolve: bodyType}
		}
	}
	paramTypes := make([]types.Type, len(n.Params))
	for i := range paramTypes {
		paramTypes[i] = types.Unknown
	}
	return &types.Function{Params: paramTypes, Return: bodyType, Async: n.Async}, nil
}

func (c *Checker) inferAssignment(n *ast.Assignment) (types.Type, error) {
	valueType, err := c.inferExpr(n.Value)
	if err != nil {
		return nil, err
	}
	if id, ok := n.Target.(*ast.Identifier); ok {
		c.define(id.Name, valueType)
		return valueType, nil
	}
	if _, err := c.inferExpr(n.Target); err != nil {
		return nil, err
	}
	return valueType, nil
}

// numericIndex parses a numeric literal's stringified value back to an
// integer index, used nowhere in checking today but kept alongside
// memberName since both implement the "resolvable literal key" rule from
// spec.md §4.2.
func numericIndex(lit *ast.Literal) (int, bool) {
	if lit.Kind != ast.LiteralNumber {
		return 0, false
	}
	i, err := strconv.Atoi(strconv.FormatFloat(lit.Number, 'f', -1, 64))
	if err != nil {
		return 0, false
	}
	return i, true
}
