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
	"encoding/json"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
)

// UnionType represents the union of the member types, `A | B`.
//
// Member order is preserved and is part of the type's identity:
// unions are not normalized in this layer.
type UnionType struct {
	Types []Type
	Loc   *common.Location `json:"Location,omitempty"`
}

var _ Type = &UnionType{}

func NewUnion(types []Type, location *common.Location) *UnionType {
	return &UnionType{
		Types: types,
		Loc:   location,
	}
}

func (*UnionType) isType() {}

func (*UnionType) precedence() precedence {
	return precedenceUnion
}

func (t *UnionType) String() string {
	memberStrings := make([]string, len(t.Types))
	for i, memberType := range t.Types {
		memberStrings[i] = parenthesizedTypeString(memberType, precedenceOperand)
	}
	return strings.Join(memberStrings, " | ")
}

var unionTypeSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Line{},
	prettier.Text("| "),
}

func (t *UnionType) Doc() prettier.Doc {
	memberDocs := make([]prettier.Doc, len(t.Types))
	for i, memberType := range t.Types {
		memberDocs[i] = parenthesizedTypeDoc(memberType, precedenceOperand)
	}
	return prettier.Group{
		Doc: prettier.Join(unionTypeSeparatorDoc, memberDocs...),
	}
}

func (t *UnionType) Location() *common.Location {
	return t.Loc
}

func (t *UnionType) Equal(other Type) bool {
	otherUnion, ok := other.(*UnionType)
	if !ok {
		return false
	}
	return typesEqual(t.Types, otherUnion.Types)
}

func (t *UnionType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return freeVariablesOfTypes(t.Types, accumulator)
}

func (t *UnionType) Substitute(sub Substitution) Type {
	return NewUnion(
		substituteTypes(t.Types, sub),
		t.Loc,
	)
}

func (t *UnionType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewUnion(
		mapTypeNames(t.Types, rewrite),
		t.Loc,
	)
}

func (t *UnionType) EachType(yield func(Type) bool) {
	eachTypeOf(t.Types, yield)
}

func (t *UnionType) MarshalJSON() ([]byte, error) {
	type Alias UnionType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "UnionType",
		Alias: (*Alias)(t),
	})
}
