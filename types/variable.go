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
	"sync/atomic"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
)

// VariableType represents a reference to a type parameter
type VariableType struct {
	Name Identifier
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &VariableType{}

func NewVariable(name Identifier, location *common.Location) *VariableType {
	return &VariableType{
		Name: name,
		Loc:  location,
	}
}

// NewVariables is a convenience constructor for a list of
// synthetic type variables with the given names
func NewVariables(names ...Identifier) []*VariableType {
	variables := make([]*VariableType, len(names))
	for i, name := range names {
		variables[i] = NewVariable(name, nil)
	}
	return variables
}

func (*VariableType) isType() {}

func (*VariableType) precedence() precedence {
	return precedenceAtom
}

func (t *VariableType) String() string {
	return string(t.Name)
}

func (t *VariableType) Doc() prettier.Doc {
	return prettier.Text(string(t.Name))
}

func (t *VariableType) Location() *common.Location {
	return t.Loc
}

func (t *VariableType) Equal(other Type) bool {
	otherVariable, ok := other.(*VariableType)
	if !ok {
		return false
	}
	return t.Name == otherVariable.Name
}

func (t *VariableType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	if accumulator == nil {
		accumulator = IdentifierSet{}
	}
	accumulator.Add(t.Name)
	return accumulator
}

func (t *VariableType) Substitute(sub Substitution) Type {
	if replacement, ok := sub.Lookup(t.Name); ok {
		return replacement
	}
	return t
}

func (t *VariableType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*VariableType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *VariableType) MarshalJSON() ([]byte, error) {
	type Alias VariableType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VariableType",
		Alias: (*Alias)(t),
	})
}

// VariableGenerator issues fresh type variables with names that are
// guaranteed to never have been issued by the same generator before.
//
// The counter is incremented atomically, so a generator may be shared
// by concurrent callers.
type VariableGenerator struct {
	counter atomic.Uint64
}

func NewVariableGenerator() *VariableGenerator {
	return &VariableGenerator{}
}

// DefaultFreshVariablePrefix is used by Fresh when no prefix is given
const DefaultFreshVariablePrefix = "T"

// Fresh returns a new type variable whose name has the given prefix
// (DefaultFreshVariablePrefix if empty) and is distinct from the name of
// every variable previously returned by this generator.
func (g *VariableGenerator) Fresh(prefix string) *VariableType {
	if prefix == "" {
		prefix = DefaultFreshVariablePrefix
	}
	count := g.counter.Add(1)
	name := Identifier(fmt.Sprintf("%s@%d", prefix, count))
	return NewVariable(name, nil)
}

// defaultVariableGenerator backs the package-level FreshVariable function
var defaultVariableGenerator = NewVariableGenerator()

// FreshVariable returns a fresh type variable from the process-wide
// default generator.
//
// Components which need reproducible names should hold their own
// VariableGenerator instead.
func FreshVariable(prefix string) *VariableType {
	return defaultVariableGenerator.Fresh(prefix)
}
