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

// IntersectionType represents the intersection of the member types, `A & B`.
//
// Member order is preserved and is part of the type's identity,
// like for unions.
type IntersectionType struct {
	Types []Type
	Loc   *common.Location `json:"Location,omitempty"`
}

var _ Type = &IntersectionType{}

func NewIntersection(types []Type, location *common.Location) *IntersectionType {
	return &IntersectionType{
		Types: types,
		Loc:   location,
	}
}

func (*IntersectionType) isType() {}

func (*IntersectionType) precedence() precedence {
	return precedenceIntersection
}

func (t *IntersectionType) String() string {
	memberStrings := make([]string, len(t.Types))
	for i, memberType := range t.Types {
		memberStrings[i] = parenthesizedTypeString(memberType, precedenceOperand)
	}
	return strings.Join(memberStrings, " & ")
}

var intersectionTypeSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Line{},
	prettier.Text("& "),
}

func (t *IntersectionType) Doc() prettier.Doc {
	memberDocs := make([]prettier.Doc, len(t.Types))
	for i, memberType := range t.Types {
		memberDocs[i] = parenthesizedTypeDoc(memberType, precedenceOperand)
	}
	return prettier.Group{
		Doc: prettier.Join(intersectionTypeSeparatorDoc, memberDocs...),
	}
}

func (t *IntersectionType) Location() *common.Location {
	return t.Loc
}

func (t *IntersectionType) Equal(other Type) bool {
	otherIntersection, ok := other.(*IntersectionType)
	if !ok {
		return false
	}
	return typesEqual(t.Types, otherIntersection.Types)
}

func (t *IntersectionType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return freeVariablesOfTypes(t.Types, accumulator)
}

func (t *IntersectionType) Substitute(sub Substitution) Type {
	return NewIntersection(
		substituteTypes(t.Types, sub),
		t.Loc,
	)
}

func (t *IntersectionType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewIntersection(
		mapTypeNames(t.Types, rewrite),
		t.Loc,
	)
}

func (t *IntersectionType) EachType(yield func(Type) bool) {
	eachTypeOf(t.Types, yield)
}

func (t *IntersectionType) MarshalJSON() ([]byte, error) {
	type Alias IntersectionType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "IntersectionType",
		Alias: (*Alias)(t),
	})
}
