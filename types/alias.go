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

// AliasType represents a reference to a separately-defined type alias.
// Resolving the alias to its definition happens elsewhere.
type AliasType struct {
	Name common.TypeName
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &AliasType{}

func NewAlias(name common.TypeName, location *common.Location) *AliasType {
	return &AliasType{
		Name: name,
		Loc:  location,
	}
}

func (*AliasType) isType() {}

func (*AliasType) precedence() precedence {
	return precedenceAtom
}

func (t *AliasType) String() string {
	return t.Name.String()
}

func (t *AliasType) Doc() prettier.Doc {
	return prettier.Text(t.Name.String())
}

func (t *AliasType) Location() *common.Location {
	return t.Loc
}

func (t *AliasType) Equal(other Type) bool {
	otherAlias, ok := other.(*AliasType)
	if !ok {
		return false
	}
	return t.Name.Equal(otherAlias.Name)
}

func (*AliasType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *AliasType) Substitute(_ Substitution) Type {
	return t
}

func (t *AliasType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewAlias(
		rewrite(t.Name, t.Loc, t),
		t.Loc,
	)
}

func (*AliasType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *AliasType) MarshalJSON() ([]byte, error) {
	type Alias AliasType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "AliasType",
		Alias: (*Alias)(t),
	})
}
