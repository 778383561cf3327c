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

// TupleType represents a fixed-length heterogeneous sequence type.
// Element order is semantically significant.
type TupleType struct {
	Types []Type
	Loc   *common.Location `json:"Location,omitempty"`
}

var _ Type = &TupleType{}

func NewTuple(types []Type, location *common.Location) *TupleType {
	return &TupleType{
		Types: types,
		Loc:   location,
	}
}

func (*TupleType) isType() {}

func (*TupleType) precedence() precedence {
	return precedenceAtom
}

func (t *TupleType) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elementType := range t.Types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elementType.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

var tupleTypeSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (t *TupleType) Doc() prettier.Doc {
	if len(t.Types) == 0 {
		return prettier.Text("[]")
	}

	elementDocs := make([]prettier.Doc, len(t.Types))
	for i, elementType := range t.Types {
		elementDocs[i] = elementType.Doc()
	}

	return prettier.WrapBrackets(
		prettier.Join(tupleTypeSeparatorDoc, elementDocs...),
		prettier.SoftLine{},
	)
}

func (t *TupleType) Location() *common.Location {
	return t.Loc
}

func (t *TupleType) Equal(other Type) bool {
	otherTuple, ok := other.(*TupleType)
	if !ok {
		return false
	}
	return typesEqual(t.Types, otherTuple.Types)
}

func (t *TupleType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return freeVariablesOfTypes(t.Types, accumulator)
}

func (t *TupleType) Substitute(sub Substitution) Type {
	return NewTuple(
		substituteTypes(t.Types, sub),
		t.Loc,
	)
}

func (t *TupleType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewTuple(
		mapTypeNames(t.Types, rewrite),
		t.Loc,
	)
}

func (t *TupleType) EachType(yield func(Type) bool) {
	eachTypeOf(t.Types, yield)
}

func (t *TupleType) MarshalJSON() ([]byte, error) {
	type Alias TupleType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TupleType",
		Alias: (*Alias)(t),
	})
}
