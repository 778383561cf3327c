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

// BoolType represents the `bool` base type
type BoolType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &BoolType{}

func NewBoolType(location *common.Location) *BoolType {
	return &BoolType{Loc: location}
}

func (*BoolType) isType() {}

func (*BoolType) precedence() precedence {
	return precedenceAtom
}

func (*BoolType) String() string {
	return "bool"
}

var boolTypeDoc prettier.Doc = prettier.Text("bool")

func (*BoolType) Doc() prettier.Doc {
	return boolTypeDoc
}

func (t *BoolType) Location() *common.Location {
	return t.Loc
}

func (t *BoolType) Equal(other Type) bool {
	_, ok := other.(*BoolType)
	return ok
}

func (*BoolType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *BoolType) Substitute(_ Substitution) Type {
	return t
}

func (t *BoolType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*BoolType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *BoolType) MarshalJSON() ([]byte, error) {
	type Alias BoolType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BoolType",
		Alias: (*Alias)(t),
	})
}

// VoidType represents the `void` base type, the type of no value
type VoidType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &VoidType{}

func NewVoidType(location *common.Location) *VoidType {
	return &VoidType{Loc: location}
}

func (*VoidType) isType() {}

func (*VoidType) precedence() precedence {
	return precedenceAtom
}

func (*VoidType) String() string {
	return "void"
}

var voidTypeDoc prettier.Doc = prettier.Text("void")

func (*VoidType) Doc() prettier.Doc {
	return voidTypeDoc
}

func (t *VoidType) Location() *common.Location {
	return t.Loc
}

func (t *VoidType) Equal(other Type) bool {
	_, ok := other.(*VoidType)
	return ok
}

func (*VoidType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *VoidType) Substitute(_ Substitution) Type {
	return t
}

func (t *VoidType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*VoidType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *VoidType) MarshalJSON() ([]byte, error) {
	type Alias VoidType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VoidType",
		Alias: (*Alias)(t),
	})
}

// AnyType represents the dynamic type, rendered `untyped`:
// the unknown type gradual typing defers checking for
type AnyType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &AnyType{}

func NewAnyType(location *common.Location) *AnyType {
	return &AnyType{Loc: location}
}

func (*AnyType) isType() {}

func (*AnyType) precedence() precedence {
	return precedenceAtom
}

func (*AnyType) String() string {
	return "untyped"
}

var anyTypeDoc prettier.Doc = prettier.Text("untyped")

func (*AnyType) Doc() prettier.Doc {
	return anyTypeDoc
}

func (t *AnyType) Location() *common.Location {
	return t.Loc
}

func (t *AnyType) Equal(other Type) bool {
	_, ok := other.(*AnyType)
	return ok
}

func (*AnyType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *AnyType) Substitute(_ Substitution) Type {
	return t
}

func (t *AnyType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*AnyType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *AnyType) MarshalJSON() ([]byte, error) {
	type Alias AnyType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "AnyType",
		Alias: (*Alias)(t),
	})
}

// NilType represents the `nil` base type, inhabited only by nil
type NilType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &NilType{}

func NewNilType(location *common.Location) *NilType {
	return &NilType{Loc: location}
}

func (*NilType) isType() {}

func (*NilType) precedence() precedence {
	return precedenceAtom
}

func (*NilType) String() string {
	return "nil"
}

var nilTypeDoc prettier.Doc = prettier.Text("nil")

func (*NilType) Doc() prettier.Doc {
	return nilTypeDoc
}

func (t *NilType) Location() *common.Location {
	return t.Loc
}

func (t *NilType) Equal(other Type) bool {
	_, ok := other.(*NilType)
	return ok
}

func (*NilType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *NilType) Substitute(_ Substitution) Type {
	return t
}

func (t *NilType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*NilType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *NilType) MarshalJSON() ([]byte, error) {
	type Alias NilType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "NilType",
		Alias: (*Alias)(t),
	})
}

// TopType represents the top type, the supertype of all types
type TopType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &TopType{}

func NewTopType(location *common.Location) *TopType {
	return &TopType{Loc: location}
}

func (*TopType) isType() {}

func (*TopType) precedence() precedence {
	return precedenceAtom
}

func (*TopType) String() string {
	return "top"
}

var topTypeDoc prettier.Doc = prettier.Text("top")

func (*TopType) Doc() prettier.Doc {
	return topTypeDoc
}

func (t *TopType) Location() *common.Location {
	return t.Loc
}

func (t *TopType) Equal(other Type) bool {
	_, ok := other.(*TopType)
	return ok
}

func (*TopType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *TopType) Substitute(_ Substitution) Type {
	return t
}

func (t *TopType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*TopType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *TopType) MarshalJSON() ([]byte, error) {
	type Alias TopType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TopType",
		Alias: (*Alias)(t),
	})
}

// BottomType represents the bottom type, the subtype of all types,
// rendered `bot`
type BottomType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &BottomType{}

func NewBottomType(location *common.Location) *BottomType {
	return &BottomType{Loc: location}
}

func (*BottomType) isType() {}

func (*BottomType) precedence() precedence {
	return precedenceAtom
}

func (*BottomType) String() string {
	return "bot"
}

var bottomTypeDoc prettier.Doc = prettier.Text("bot")

func (*BottomType) Doc() prettier.Doc {
	return bottomTypeDoc
}

func (t *BottomType) Location() *common.Location {
	return t.Loc
}

func (t *BottomType) Equal(other Type) bool {
	_, ok := other.(*BottomType)
	return ok
}

func (*BottomType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *BottomType) Substitute(_ Substitution) Type {
	return t
}

func (t *BottomType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*BottomType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *BottomType) MarshalJSON() ([]byte, error) {
	type Alias BottomType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "BottomType",
		Alias: (*Alias)(t),
	})
}

// SelfType represents the `self` placeholder type,
// the type of the enclosing declaration's receiver
type SelfType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &SelfType{}

func NewSelfType(location *common.Location) *SelfType {
	return &SelfType{Loc: location}
}

func (*SelfType) isType() {}

func (*SelfType) precedence() precedence {
	return precedenceAtom
}

func (*SelfType) String() string {
	return "self"
}

var selfTypeDoc prettier.Doc = prettier.Text("self")

func (*SelfType) Doc() prettier.Doc {
	return selfTypeDoc
}

func (t *SelfType) Location() *common.Location {
	return t.Loc
}

func (t *SelfType) Equal(other Type) bool {
	_, ok := other.(*SelfType)
	return ok
}

func (*SelfType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *SelfType) Substitute(_ Substitution) Type {
	return t
}

func (t *SelfType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*SelfType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *SelfType) MarshalJSON() ([]byte, error) {
	type Alias SelfType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "SelfType",
		Alias: (*Alias)(t),
	})
}

// InstanceType represents the `instance` placeholder type,
// the instance type of the enclosing class.
//
// Unlike the other base types it participates in substitution:
// when a substitution carries a current instance type,
// the placeholder is rewritten to it.
type InstanceType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &InstanceType{}

func NewInstanceType(location *common.Location) *InstanceType {
	return &InstanceType{Loc: location}
}

func (*InstanceType) isType() {}

func (*InstanceType) precedence() precedence {
	return precedenceAtom
}

func (*InstanceType) String() string {
	return "instance"
}

var instanceTypeDoc prettier.Doc = prettier.Text("instance")

func (*InstanceType) Doc() prettier.Doc {
	return instanceTypeDoc
}

func (t *InstanceType) Location() *common.Location {
	return t.Loc
}

func (t *InstanceType) Equal(other Type) bool {
	_, ok := other.(*InstanceType)
	return ok
}

func (*InstanceType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *InstanceType) Substitute(sub Substitution) Type {
	if instanceType := sub.InstanceType(); instanceType != nil {
		return instanceType
	}
	return t
}

func (t *InstanceType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*InstanceType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *InstanceType) MarshalJSON() ([]byte, error) {
	type Alias InstanceType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "InstanceType",
		Alias: (*Alias)(t),
	})
}

// ClassType represents the `class` placeholder type,
// the singleton type of the enclosing class
type ClassType struct {
	Loc *common.Location `json:"Location,omitempty"`
}

var _ Type = &ClassType{}

func NewClassType(location *common.Location) *ClassType {
	return &ClassType{Loc: location}
}

func (*ClassType) isType() {}

func (*ClassType) precedence() precedence {
	return precedenceAtom
}

func (*ClassType) String() string {
	return "class"
}

var classTypeDoc prettier.Doc = prettier.Text("class")

func (*ClassType) Doc() prettier.Doc {
	return classTypeDoc
}

func (t *ClassType) Location() *common.Location {
	return t.Loc
}

func (t *ClassType) Equal(other Type) bool {
	_, ok := other.(*ClassType)
	return ok
}

func (*ClassType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *ClassType) Substitute(_ Substitution) Type {
	return t
}

func (t *ClassType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*ClassType) EachType(_ func(Type) bool) {
	// NO-OP
}

func (t *ClassType) MarshalJSON() ([]byte, error) {
	type Alias ClassType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ClassType",
		Alias: (*Alias)(t),
	})
}
