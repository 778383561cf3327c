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
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
)

// ClassSingletonType represents the type of a class object itself,
// rendered `singleton(Name)`. Its instances have type ClassInstanceType.
type ClassSingletonType struct {
	Name common.TypeName
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &ClassSingletonType{}

func NewClassSingleton(name common.TypeName, location *common.Location) *ClassSingletonType {
	return &ClassSingletonType{
		Name: name,
		Loc:  location,
	}
}

func (*ClassSingletonType) isType() {}

func (*ClassSingletonType) precedence() precedence {
	return precedenceAtom
}

func (t *ClassSingletonType) String() string {
	return fmt.Sprintf("singleton(%s)", t.Name)
}

func (t *ClassSingletonType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("singleton("),
		prettier.Text(t.Name.String()),
		prettier.Text(")"),
	}
}

func (t *ClassSingletonType) Location() *common.Location {
	return t.Loc
}

func (t *ClassSingletonType) Equal(other Type) bool {
	otherSingleton, ok := other.(*ClassSingletonType)
	if !ok {
		return false
	}
	return t.Name.Equal(otherSingleton.Name)
}

func (*ClassSingletonType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *ClassSingletonType) Substitute(_ Substitution) Type {
	return t
}

func (t *ClassSingletonType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewClassSingleton(
		rewrite(t.Name, t.Loc, t),
		t.Loc,
	)
}

func (*ClassSingletonType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *ClassSingletonType) MarshalJSON() ([]byte, error) {
	type Alias ClassSingletonType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ClassSingletonType",
		Alias: (*Alias)(t),
	})
}
