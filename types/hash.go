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

package types

import (
	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/errors"
)

// Structural hashing, consistent with Equal: equal types hash equal,
// and locations are excluded. The hash is FNV-1a based and
// NOT cryptographic.
//
// Hashes of unordered payloads (record fields, keyword parameters) are
// combined commutatively, since their equality is order-independent.

const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = (h ^ uint64(s[i])) * fnvPrime
	}
	// length separator, so that consecutive strings don't collide
	return hashUint64(h, uint64(len(s)))
}

func hashUint64(h uint64, value uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = (h ^ (value & 0xff)) * fnvPrime
		value >>= 8
	}
	return h
}

func hashBool(h uint64, value bool) uint64 {
	if value {
		return hashUint64(h, 1)
	}
	return hashUint64(h, 0)
}

func hashTypes(h uint64, types []Type) uint64 {
	h = hashUint64(h, uint64(len(types)))
	for _, t := range types {
		h = hashUint64(h, Hash(t))
	}
	return h
}

// Hash returns the structural hash of the given type.
func Hash(t Type) uint64 {
	h := fnvOffsetBasis

	switch t := t.(type) {
	case *BoolType:
		return hashString(h, "bool")

	case *VoidType:
		return hashString(h, "void")

	case *AnyType:
		return hashString(h, "untyped")

	case *NilType:
		return hashString(h, "nil")

	case *TopType:
		return hashString(h, "top")

	case *BottomType:
		return hashString(h, "bot")

	case *SelfType:
		return hashString(h, "self")

	case *InstanceType:
		return hashString(h, "instance")

	case *ClassType:
		return hashString(h, "class")

	case *VariableType:
		h = hashString(h, "variable")
		return hashString(h, string(t.Name))

	case *ClassSingletonType:
		h = hashString(h, "singleton")
		return hashTypeName(h, t.Name)

	case *AliasType:
		h = hashString(h, "alias")
		return hashTypeName(h, t.Name)

	case *InterfaceType:
		h = hashString(h, "interface")
		h = hashTypeName(h, t.Name)
		return hashTypes(h, t.Args)

	case *ClassInstanceType:
		h = hashString(h, "classInstance")
		h = hashTypeName(h, t.Name)
		return hashTypes(h, t.Args)

	case *LiteralType:
		h = hashString(h, "literal")
		return hashString(h, t.Value.String())

	case *TupleType:
		h = hashString(h, "tuple")
		return hashTypes(h, t.Types)

	case *RecordType:
		h = hashString(h, "record")
		h = hashUint64(h, uint64(t.Fields.Len()))

		// commutative: field order does not affect equality
		var fieldsHash uint64
		t.Fields.Foreach(func(key Identifier, fieldType Type) {
			fieldHash := hashString(fnvOffsetBasis, string(key))
			fieldHash = hashUint64(fieldHash, Hash(fieldType))
			fieldsHash += fieldHash
		})
		return hashUint64(h, fieldsHash)

	case *OptionalType:
		h = hashString(h, "optional")
		return hashUint64(h, Hash(t.Type))

	case *UnionType:
		h = hashString(h, "union")
		return hashTypes(h, t.Types)

	case *IntersectionType:
		h = hashString(h, "intersection")
		return hashTypes(h, t.Types)

	case *ProcType:
		h = hashString(h, "proc")
		h = hashUint64(h, HashFunction(t.Type))
		if t.Block != nil {
			h = hashUint64(h, HashBlock(t.Block))
		}
		return h

	default:
		panic(errors.NewUnreachableError())
	}
}

func hashTypeName(h uint64, name common.TypeName) uint64 {
	h = hashString(h, string(name.Namespace))
	return hashString(h, name.Name)
}

// HashFunction returns the structural hash of the given function
// signature, consistent with Function.Equal.
func HashFunction(f *Function) uint64 {
	h := hashString(fnvOffsetBasis, "function")
	h = hashParams(h, f.RequiredPositionals)
	h = hashParams(h, f.OptionalPositionals)
	h = hashOptionalParam(h, f.RestPositionals)
	h = hashParams(h, f.TrailingPositionals)
	h = hashKeywordParams(h, f.RequiredKeywords)
	h = hashKeywordParams(h, f.OptionalKeywords)
	h = hashOptionalParam(h, f.RestKeywords)
	return hashUint64(h, Hash(f.ReturnType))
}

// HashBlock returns the structural hash of the given block descriptor,
// consistent with Block.Equal.
func HashBlock(b *Block) uint64 {
	h := hashString(fnvOffsetBasis, "block")
	h = hashBool(h, b.Required)
	return hashUint64(h, HashFunction(b.Type))
}

func hashParam(h uint64, param *Param) uint64 {
	h = hashString(h, string(param.Name))
	return hashUint64(h, Hash(param.Type))
}

func hashParams(h uint64, params []*Param) uint64 {
	h = hashUint64(h, uint64(len(params)))
	for _, param := range params {
		h = hashParam(h, param)
	}
	return h
}

func hashOptionalParam(h uint64, param *Param) uint64 {
	if param == nil {
		return hashUint64(h, 0)
	}
	h = hashUint64(h, 1)
	return hashParam(h, param)
}

// commutative: declaration order does not affect equality
func hashKeywordParams(h uint64, params *KeywordParams) uint64 {
	h = hashUint64(h, uint64(params.Len()))

	var paramsHash uint64
	params.Foreach(func(name Identifier, param *Param) {
		keywordHash := hashString(fnvOffsetBasis, string(name))
		keywordHash = hashParam(keywordHash, param)
		paramsHash += keywordHash
	})
	return hashUint64(h, paramsHash)
}
