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

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
)

// OptionalType represents the optional variant of another type:
// `T?` is inhabited by the values of T and by nil
type OptionalType struct {
	Type Type             `json:"ElementType"`
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &OptionalType{}

func NewOptional(elementType Type, location *common.Location) *OptionalType {
	return &OptionalType{
		Type: elementType,
		Loc:  location,
	}
}

func (*OptionalType) isType() {}

func (*OptionalType) precedence() precedence {
	return precedenceOptional
}

func (t *OptionalType) String() string {
	inner := parenthesizedTypeString(t.Type, precedenceOperand)

	// a `?` directly after a symbol literal would be lexed
	// as part of the symbol
	if literalType, ok := t.Type.(*LiteralType); ok {
		if _, ok := literalType.Value.(SymbolLiteral); ok {
			return inner + " ?"
		}
	}

	return inner + "?"
}

func (t *OptionalType) Doc() prettier.Doc {
	return prettier.Concat{
		parenthesizedTypeDoc(t.Type, precedenceOperand),
		prettier.Text("?"),
	}
}

func (t *OptionalType) Location() *common.Location {
	return t.Loc
}

func (t *OptionalType) Equal(other Type) bool {
	otherOptional, ok := other.(*OptionalType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherOptional.Type)
}

func (t *OptionalType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return t.Type.FreeVariables(accumulator)
}

func (t *OptionalType) Substitute(sub Substitution) Type {
	return NewOptional(
		t.Type.Substitute(sub),
		t.Loc,
	)
}

func (t *OptionalType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewOptional(
		t.Type.MapTypeName(rewrite),
		t.Loc,
	)
}

func (t *OptionalType) EachType(yield func(Type) bool) {
	yield(t.Type)
}

func (t *OptionalType) MarshalJSON() ([]byte, error) {
	type Alias OptionalType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "OptionalType",
		Alias: (*Alias)(t),
	})
}
