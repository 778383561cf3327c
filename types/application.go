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

// application-shaped types: a named type constructor
// applied to an ordered argument list

func applicationTypeString(name common.TypeName, args []Type) string {
	if len(args) == 0 {
		return name.String()
	}

	var sb strings.Builder
	sb.WriteString(name.String())
	sb.WriteByte('[')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

var typeArgumentSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func applicationTypeDoc(name common.TypeName, args []Type) prettier.Doc {
	if len(args) == 0 {
		return prettier.Text(name.String())
	}

	argDocs := make([]prettier.Doc, len(args))
	for i, arg := range args {
		argDocs[i] = arg.Doc()
	}

	return prettier.Concat{
		prettier.Text(name.String()),
		prettier.WrapBrackets(
			prettier.Join(typeArgumentSeparatorDoc, argDocs...),
			prettier.SoftLine{},
		),
	}
}

// InterfaceType represents a behavioral interface
// applied to type arguments
type InterfaceType struct {
	Name common.TypeName
	Args []Type
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &InterfaceType{}

func NewInterface(name common.TypeName, args []Type, location *common.Location) *InterfaceType {
	return &InterfaceType{
		Name: name,
		Args: args,
		Loc:  location,
	}
}

func (*InterfaceType) isType() {}

func (*InterfaceType) precedence() precedence {
	return precedenceAtom
}

func (t *InterfaceType) String() string {
	return applicationTypeString(t.Name, t.Args)
}

func (t *InterfaceType) Doc() prettier.Doc {
	return applicationTypeDoc(t.Name, t.Args)
}

func (t *InterfaceType) Location() *common.Location {
	return t.Loc
}

func (t *InterfaceType) Equal(other Type) bool {
	otherInterface, ok := other.(*InterfaceType)
	if !ok {
		return false
	}
	return t.Name.Equal(otherInterface.Name) &&
		typesEqual(t.Args, otherInterface.Args)
}

func (t *InterfaceType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return freeVariablesOfTypes(t.Args, accumulator)
}

func (t *InterfaceType) Substitute(sub Substitution) Type {
	return NewInterface(
		t.Name,
		substituteTypes(t.Args, sub),
		t.Loc,
	)
}

func (t *InterfaceType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewInterface(
		rewrite(t.Name, t.Loc, t),
		mapTypeNames(t.Args, rewrite),
		t.Loc,
	)
}

func (t *InterfaceType) EachType(yield func(Type) bool) {
	eachTypeOf(t.Args, yield)
}

func (t *InterfaceType) MarshalJSON() ([]byte, error) {
	type Alias InterfaceType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "InterfaceType",
		Alias: (*Alias)(t),
	})
}

// ClassInstanceType represents the instance type of a class
// applied to type arguments
type ClassInstanceType struct {
	Name common.TypeName
	Args []Type
	Loc  *common.Location `json:"Location,omitempty"`
}

var _ Type = &ClassInstanceType{}

func NewClassInstance(name common.TypeName, args []Type, location *common.Location) *ClassInstanceType {
	return &ClassInstanceType{
		Name: name,
		Args: args,
		Loc:  location,
	}
}

func (*ClassInstanceType) isType() {}

func (*ClassInstanceType) precedence() precedence {
	return precedenceAtom
}

func (t *ClassInstanceType) String() string {
	return applicationTypeString(t.Name, t.Args)
}

func (t *ClassInstanceType) Doc() prettier.Doc {
	return applicationTypeDoc(t.Name, t.Args)
}

func (t *ClassInstanceType) Location() *common.Location {
	return t.Loc
}

func (t *ClassInstanceType) Equal(other Type) bool {
	otherInstance, ok := other.(*ClassInstanceType)
	if !ok {
		return false
	}
	return t.Name.Equal(otherInstance.Name) &&
		typesEqual(t.Args, otherInstance.Args)
}

func (t *ClassInstanceType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return freeVariablesOfTypes(t.Args, accumulator)
}

func (t *ClassInstanceType) Substitute(sub Substitution) Type {
	return NewClassInstance(
		t.Name,
		substituteTypes(t.Args, sub),
		t.Loc,
	)
}

func (t *ClassInstanceType) MapTypeName(rewrite TypeNameRewrite) Type {
	return NewClassInstance(
		rewrite(t.Name, t.Loc, t),
		mapTypeNames(t.Args, rewrite),
		t.Loc,
	)
}

func (t *ClassInstanceType) EachType(yield func(Type) bool) {
	eachTypeOf(t.Args, yield)
}

func (t *ClassInstanceType) MarshalJSON() ([]byte, error) {
	type Alias ClassInstanceType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ClassInstanceType",
		Alias: (*Alias)(t),
	})
}
