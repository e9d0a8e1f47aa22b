package checker

import (
	"github.com/BardsBallad/Verse/internal/ast"
	"github.com/BardsBallad/Verse/internal/types"
)

func (c *Checker) checkStatement(s ast.Statement, acc *[]types.Type) (types.Type, error) {
	switch n := s.(type) {
	case *ast.TypeDecl:
		return c.checkTypeDecl(n)
	case *ast.InterfaceDecl:
		return c.checkInterfaceDecl(n)
	case *ast.VarDecl:
		return c.checkVarDecl(n)
	case *ast.FuncDecl:
		return c.checkFuncDecl(n)
	case *ast.Return:
		return c.checkReturn(n, acc)
	case *ast.If:
		return c.checkIf(n, acc)
	case *ast.For:
		return c.checkFor(n, acc)
	case *ast.ExprStmt:
		return c.inferExpr(n.Expr)
	}
	return types.Unknown, nil
}

func (c *Checker) checkTypeDecl(n *ast.TypeDecl) (types.Type, error) {
	t, err := c.resolveAnnotation(n.Type)
	if err != nil {
		return nil, err
	}
	if obj, ok := t.(*types.Object); ok && obj.Name == "" {
		t = &types.Object{Name: n.Name, Fields: obj.Fields}
	}
	c.registry.Register(n.Name, t)
	return t, nil
}

func (c *Checker) checkInterfaceDecl(n *ast.InterfaceDecl) (types.Type, error) {
	fields := make([]types.Field, 0, len(n.Fields))
	for _, f := range n.Fields {
		ft, err := c.resolveAnnotation(f.Type)
		if err != nil {
			return nil, err
		}
		fields = append(fields, types.Field{Name: f.Name, Type: ft})
	}
	t := &types.Object{Name: n.Name, Fields: fields}
	c.registry.Register(n.Name, t)
	return t, nil
}

func (c *Checker) checkVarDecl(n *ast.VarDecl) (types.Type, error) {
	valueType, err := c.inferExpr(n.Value)
	if err != nil {
		return nil, err
	}

	bound := valueType
	if n.Type != nil {
		declared, err := c.resolveAnnotation(n.Type)
		if err != nil {
			return nil, err
		}
		if !types.Assignable(valueType, declared) {
			return nil, &TypeError{
				Message: "Cannot assign " + valueType.String() + " to " + declared.String(),
				Line:    n.Pos().Line,
			}
		}
		bound = declared
	}
	n.Inferred = bound
	c.define(n.Name, bound)
	return bound, nil
}

func (c *Checker) checkFuncDecl(n *ast.FuncDecl) (types.Type, error) {
	c.pushScope()
	paramTypes := make([]types.Type, 0, len(n.Params))
	for _, param := range n.Params {
		var pt types.Type = types.Unknown
		if param.Type != nil {
			var err error
			pt, err = c.resolveAnnotation(param.Type)
			if err != nil {
				c.popScope()
				return nil, err
			}
		}
		paramTypes = append(paramTypes, pt)
		c.define(param.Name, pt)
	}

	restore := c.enterAsync(n.Async)
	var acc []types.Type
	if _, err := c.checkStatements(n.Body, &acc); err != nil {
		restore()
		c.popScope()
		return nil, err
	}
	restore()
	c.popScope()

	computed := unionOf(acc)
	if n.Async {
		if _, isPromise := computed.(*types.Promise); !isPromise {
			computed = &types.Promise{Resolve: computed}
		}
	}

	finalReturn := computed
	if n.ReturnType != nil {
		declared, err := c.resolveAnnotation(n.ReturnType)
		if err != nil {
			return nil, err
		}
		if !types.Assignable(computed, declared) {
			return nil, &TypeError{
				Message: "Function " + n.Name + " returns " + computed.String() + " but declared " + declared.String(),
				Line:    n.Pos().Line,
			}
		}
		finalReturn = declared
	}

	fnType := &types.Function{Params: paramTypes, Return: finalReturn, Async: n.Async}
	c.define(n.Name, fnType)
	return fnType, nil
}

func (c *Checker) checkReturn(n *ast.Return, acc *[]types.Type) (types.Type, error) {
	if n.Value == nil {
		return types.Unknown, nil
	}
	t, err := c.inferExpr(n.Value)
	if err != nil {
		return nil, err
	}
	if acc != nil {
		*acc = append(*acc, t)
	}
	return t, nil
}

func (c *Checker) checkIf(n *ast.If, acc *[]types.Type) (types.Type, error) {
	if _, err := c.inferExpr(n.Condition); err != nil {
		return nil, err
	}
	last, err := c.checkStatements(n.Then, acc)
	if err != nil {
		return nil, err
	}
	if n.Else != nil {
		last, err = c.checkStatements(n.Else, acc)
		if err != nil {
			return nil, err
		}
	}
	return last, nil
}

func (c *Checker) checkFor(n *ast.For, acc *[]types.Type) (types.Type, error) {
	iterType, err := c.inferExpr(n.Iterable)
	if err != nil {
		return nil, err
	}

	var elemType types.Type = types.Unknown
	if n.Await {
		if !c.inAsync {
			return nil, &TypeError{Message: "for await...of requires an async iterable (Promise<T[]>)", Line: n.Pos().Line}
		}
		promise, ok := iterType.(*types.Promise)
		if !ok {
			return nil, &TypeError{Message: "for await...of requires an async iterable (Promise<T[]>)", Line: n.Pos().Line}
		}
		arr, ok := promise.Resolve.(*types.Array)
		if !ok {
			return nil, &TypeError{Message: "for await...of requires an async iterable (Promise<T[]>)", Line: n.Pos().Line}
		}
		elemType = arr.Element
	} else if arr, ok := iterType.(*types.Array); ok {
		elemType = arr.Element
	}

	c.pushScope()
	c.define(n.Var, elemType)
	last, err := c.checkStatements(n.Body, acc)
	c.popScope()
	if err != nil {
		return nil, err
	}
	return last, nil
}
