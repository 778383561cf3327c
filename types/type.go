/*
 * Tern - A gradual type system for dynamic languages
 *
 * Copyright Tern Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package types contains the structural type algebra of Tern:
// the immutable recursive tree representation of type expressions,
// plus the operations to build, inspect, transform, compare,
// and serialize them.
//
// All types are immutable after construction. Transformations return
// new trees and share unchanged subtrees structurally, so trees may be
// read concurrently without coordination.
//
// All types implement the json.Marshaler interface
// and so can be serialized to a standardized/stable JSON format.
package types

import (
	"fmt"
	"iter"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/errors"
)

// Type is the interface implemented by all type expressions.
type Type interface {
	fmt.Stringer
	isType()
	precedence() precedence

	// Equal returns true if the receiver and the given type
	// are structurally equal, ignoring locations.
	Equal(other Type) bool

	// Location returns the source span this type was parsed from,
	// or nil if the type was constructed synthetically.
	Location() *common.Location

	// Doc returns the pretty-printer document for this type.
	Doc() prettier.Doc

	// FreeVariables adds the names of all type variables occurring in
	// this type to the given accumulator and returns it.
	// The accumulator may be nil for leaves which add nothing.
	// Use the package-level FreeVariables function to always get a set.
	FreeVariables(accumulator IdentifierSet) IdentifierSet

	// Substitute returns a type with all type variables
	// that resolve in the given substitution replaced.
	// Types without matching variables are returned unchanged.
	Substitute(sub Substitution) Type

	// MapTypeName returns a type with the given rewrite applied
	// to the name of every named type in the tree.
	MapTypeName(rewrite TypeNameRewrite) Type

	// EachType invokes the given function once per direct child type,
	// in declaration order, one level deep. The method value is usable
	// as an iter.Seq[Type]: the sequence is lazy and restartable.
	EachType(yield func(Type) bool)

	MarshalJSON() ([]byte, error)
}

// Substitution resolves type variable names to replacement types.
// It is produced by the type checker when instantiating generics.
type Substitution interface {
	// Lookup returns the replacement type for the given variable name.
	// A missing entry is not an error: the variable is left as-is.
	Lookup(name Identifier) (Type, bool)

	// InstanceType returns the type the `instance` placeholder
	// is specialized to, or nil if there is no current instance type.
	InstanceType() Type
}

// TypeNameRewrite rewrites the qualified name of a named type.
// It receives the node carrying the name as the owner.
type TypeNameRewrite func(
	name common.TypeName,
	location *common.Location,
	owner Type,
) common.TypeName

// precedence is the binding strength of a type's syntax,
// used to decide parenthesization when rendering
type precedence int

const (
	precedenceUnknown precedence = iota
	precedenceUnion
	precedenceIntersection
	precedenceOptional
	precedenceAtom
)

// precedenceOperand is the parent precedence for members of unions and
// intersections and for the operand of an optional: union and intersection
// members parenthesize there, everything else does not
const precedenceOperand = precedenceOptional

func parenthesizedTypeString(t Type, parentPrecedence precedence) string {
	s := t.String()
	if t.precedence() >= parentPrecedence {
		return s
	}
	return "(" + s + ")"
}

func parenthesizedTypeDoc(t Type, parentPrecedence precedence) prettier.Doc {
	doc := t.Doc()
	if t.precedence() >= parentPrecedence {
		return doc
	}
	return prettier.WrapParentheses(doc, prettier.SoftLine{})
}

const prettyIndent = "    "

// Pretty returns a pretty-printed rendering of the given type,
// wrapped to the given maximum line width.
//
// Unlike String, the result may span multiple lines. Both renderings
// parse to the same tree.
func Pretty(t Type, maxLineWidth int) string {
	var sb strings.Builder
	prettier.Prettier(&sb, t.Doc(), maxLineWidth, prettyIndent)
	return sb.String()
}

// IsLeafType returns true if the given type has no direct child types
// (base types, variables, class singletons, alias references, and literals).
func IsLeafType(t Type) bool {
	switch t.(type) {
	case *BoolType, *VoidType, *AnyType, *NilType,
		*TopType, *BottomType, *SelfType, *InstanceType, *ClassType,
		*VariableType, *ClassSingletonType, *AliasType, *LiteralType:
		return true
	case *InterfaceType, *ClassInstanceType, *TupleType, *RecordType,
		*OptionalType, *UnionType, *IntersectionType, *ProcType:
		return false
	default:
		panic(errors.NewUnreachableError())
	}
}

// ChildTypes returns the direct child types of the given type
// as a lazy, restartable sequence.
func ChildTypes(t Type) iter.Seq[Type] {
	return t.EachType
}

// WalkTypes visits the given type and all its descendants, depth-first.
func WalkTypes(t Type, f func(Type)) {
	f(t)
	t.EachType(func(child Type) bool {
		WalkTypes(child, f)
		return true
	})
}

// FreeVariables returns the names of all type variables occurring in
// the given type. The result is never nil.
func FreeVariables(t Type) IdentifierSet {
	return t.FreeVariables(IdentifierSet{})
}

func substituteTypes(ts []Type, sub Substitution) []Type {
	result := make([]Type, len(ts))
	for i, t := range ts {
		result[i] = t.Substitute(sub)
	}
	return result
}

func mapTypeNames(ts []Type, rewrite TypeNameRewrite) []Type {
	result := make([]Type, len(ts))
	for i, t := range ts {
		result[i] = t.MapTypeName(rewrite)
	}
	return result
}

func freeVariablesOfTypes(ts []Type, accumulator IdentifierSet) IdentifierSet {
	for _, t := range ts {
		accumulator = t.FreeVariables(accumulator)
	}
	return accumulator
}

func eachTypeOf(ts []Type, yield func(Type) bool) bool {
	for _, t := range ts {
		if !yield(t) {
			return false
		}
	}
	return true
}

func typesEqual(ts, others []Type) bool {
	if len(ts) != len(others) {
		return false
	}
	for i, t := range ts {
		if !t.Equal(others[i]) {
			return false
		}
	}
	return true
}
