package ast

import "github.com/BardsBallad/Verse/internal/lexer"

// TypeAnnotation is the surface syntax of a type position: a parameter
// annotation, a var/const annotation, or a return-type annotation. It is a
// tagged variant over the six annotation shapes the grammar accepts.
type TypeAnnotation struct {
	Token lexer.Token

	// Exactly one of the following is populated, selected by Kind.
	Kind      AnnotationKind
	Primitive string            // "number" | "string" | "boolean" | "null"
	Element   *TypeAnnotation   // Kind == AnnotationArray
	Fields    []ObjectFieldAnn  // Kind == AnnotationObject (ordered)
	Alts      []*TypeAnnotation // Kind == AnnotationUnion (ordered)
	Reference string            // Kind == AnnotationReference
	Resolve   *TypeAnnotation   // Kind == AnnotationPromise
}

// AnnotationKind discriminates the TypeAnnotation variant.
type AnnotationKind int

const (
	AnnotationPrimitive AnnotationKind = iota
	AnnotationArray
	AnnotationObject
	AnnotationUnion
	AnnotationReference
	AnnotationPromise
)

// ObjectFieldAnn is a single `name: Type` entry of an inline object
// annotation, in declared order.
type ObjectFieldAnn struct {
	Name string
	Type *TypeAnnotation
}

func (t *TypeAnnotation) Pos() lexer.Position { return t.Token.Pos() }
