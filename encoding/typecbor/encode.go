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

// Package typecbor implements a compact binary encoding of type trees,
// for interchange with external tools where the JSON encoding is too
// verbose.
//
// Every type encodes as a CBOR array whose first element is a numeric
// kind, followed by the payload. The encoding is canonical and
// deterministic: equal types encode to equal bytes. Locations are
// metadata and are not preserved.
package typecbor

import (
	"slices"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/errors"
	"github.com/tern-lang/tern/types"
)

// numeric type kinds. The values are part of the wire format
// and must not be reordered.
const (
	kindBool uint64 = iota
	kindVoid
	kindAny
	kindNil
	kindTop
	kindBottom
	kindSelf
	kindInstance
	kindClass
	kindVariable
	kindClassSingleton
	kindAlias
	kindInterface
	kindClassInstance
	kindLiteral
	kindTuple
	kindRecord
	kindOptional
	kindUnion
	kindIntersection
	kindProc
)

// numeric literal value kinds
const (
	literalKindString uint64 = iota
	literalKindInt
	literalKindSymbol
	literalKindTrue
	literalKindFalse
)

var encMode = func() cbor.EncMode {
	options := cbor.CanonicalEncOptions()
	encMode, err := options.EncMode()
	if err != nil {
		panic(errors.NewUnexpectedError("invalid CBOR encoding options: %w", err))
	}
	return encMode
}()

// Encode returns the CBOR encoding of the given type.
func Encode(t types.Type) ([]byte, error) {
	return encMode.Marshal(encodedType(t))
}

// MustEncode returns the CBOR encoding of the given type.
// It panics if the type cannot be encoded.
func MustEncode(t types.Type) []byte {
	data, err := Encode(t)
	if err != nil {
		panic(err)
	}
	return data
}

// EncodeFunction returns the CBOR encoding of the given function signature.
func EncodeFunction(f *types.Function) ([]byte, error) {
	return encMode.Marshal(encodedFunction(f))
}

func encodedType(t types.Type) []any {
	switch t := t.(type) {
	case *types.BoolType:
		return []any{kindBool}

	case *types.VoidType:
		return []any{kindVoid}

	case *types.AnyType:
		return []any{kindAny}

	case *types.NilType:
		return []any{kindNil}

	case *types.TopType:
		return []any{kindTop}

	case *types.BottomType:
		return []any{kindBottom}

	case *types.SelfType:
		return []any{kindSelf}

	case *types.InstanceType:
		return []any{kindInstance}

	case *types.ClassType:
		return []any{kindClass}

	case *types.VariableType:
		return []any{kindVariable, string(t.Name)}

	case *types.ClassSingletonType:
		return []any{kindClassSingleton, encodedTypeName(t.Name)}

	case *types.AliasType:
		return []any{kindAlias, encodedTypeName(t.Name)}

	case *types.InterfaceType:
		return []any{kindInterface, encodedTypeName(t.Name), encodedTypes(t.Args)}

	case *types.ClassInstanceType:
		return []any{kindClassInstance, encodedTypeName(t.Name), encodedTypes(t.Args)}

	case *types.LiteralType:
		return append([]any{kindLiteral}, encodedLiteralValue(t.Value)...)

	case *types.TupleType:
		return []any{kindTuple, encodedTypes(t.Types)}

	case *types.RecordType:
		fields := make([]any, 0, t.Fields.Len())
		t.Fields.Foreach(func(key types.Identifier, fieldType types.Type) {
			fields = append(fields, []any{string(key), encodedType(fieldType)})
		})
		sortEncodedPairs(fields)
		return []any{kindRecord, fields}

	case *types.OptionalType:
		return []any{kindOptional, encodedType(t.Type)}

	case *types.UnionType:
		return []any{kindUnion, encodedTypes(t.Types)}

	case *types.IntersectionType:
		return []any{kindIntersection, encodedTypes(t.Types)}

	case *types.ProcType:
		var block any
		if t.Block != nil {
			block = encodedBlock(t.Block)
		}
		return []any{kindProc, encodedFunction(t.Type), block}

	default:
		panic(errors.NewUnreachableError())
	}
}

func encodedTypes(ts []types.Type) []any {
	encoded := make([]any, len(ts))
	for i, t := range ts {
		encoded[i] = encodedType(t)
	}
	return encoded
}

func encodedTypeName(name common.TypeName) []any {
	return []any{string(name.Namespace), name.Name}
}

func encodedLiteralValue(value types.LiteralValue) []any {
	switch value := value.(type) {
	case types.StringLiteral:
		return []any{literalKindString, string(value)}
	case types.IntLiteral:
		return []any{literalKindInt, int64(value)}
	case types.SymbolLiteral:
		return []any{literalKindSymbol, string(value)}
	case types.TrueLiteral:
		return []any{literalKindTrue}
	case types.FalseLiteral:
		return []any{literalKindFalse}
	default:
		panic(errors.NewUnreachableError())
	}
}

func encodedFunction(f *types.Function) []any {
	var restPositionals any
	if f.RestPositionals != nil {
		restPositionals = encodedParam(f.RestPositionals)
	}
	var restKeywords any
	if f.RestKeywords != nil {
		restKeywords = encodedParam(f.RestKeywords)
	}

	return []any{
		encodedParams(f.RequiredPositionals),
		encodedParams(f.OptionalPositionals),
		restPositionals,
		encodedParams(f.TrailingPositionals),
		encodedKeywordParams(f.RequiredKeywords),
		encodedKeywordParams(f.OptionalKeywords),
		restKeywords,
		encodedType(f.ReturnType),
	}
}

func encodedParam(param *types.Param) []any {
	return []any{string(param.Name), encodedType(param.Type)}
}

func encodedParams(params []*types.Param) []any {
	encoded := make([]any, len(params))
	for i, param := range params {
		encoded[i] = encodedParam(param)
	}
	return encoded
}

func encodedKeywordParams(params *types.KeywordParams) []any {
	encoded := make([]any, 0, params.Len())
	params.Foreach(func(name types.Identifier, param *types.Param) {
		encoded = append(encoded, []any{string(name), encodedParam(param)})
	})
	sortEncodedPairs(encoded)
	return encoded
}

// sortEncodedPairs sorts an encoded key/pair list by key.
// Record fields and keyword parameters compare order-independently,
// so their pair lists must be emitted in a fixed order
// to keep the encoding of equal types byte-identical.
func sortEncodedPairs(pairs []any) {
	slices.SortFunc(pairs, func(a, b any) int {
		return strings.Compare(
			a.([]any)[0].(string),
			b.([]any)[0].(string),
		)
	})
}

func encodedBlock(block *types.Block) []any {
	return []any{block.Required, encodedFunction(block.Type)}
}
