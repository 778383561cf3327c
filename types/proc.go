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

// ProcType represents the type of a callable value: a call signature,
// plus an optional block argument for callables which themselves
// accept a further callable.
type ProcType struct {
	Type  *Function
	Block *Block
	Loc   *common.Location `json:"Location,omitempty"`
}

var _ Type = &ProcType{}

func NewProc(functionType *Function, block *Block, location *common.Location) *ProcType {
	return &ProcType{
		Type:  functionType,
		Block: block,
		Loc:   location,
	}
}

func (*ProcType) isType() {}

func (*ProcType) precedence() precedence {
	return precedenceAtom
}

func (t *ProcType) String() string {
	var sb strings.Builder
	sb.WriteString("^(")
	sb.WriteString(t.Type.ParametersString())
	sb.WriteByte(')')
	if t.Block != nil {
		sb.WriteByte(' ')
		sb.WriteString(t.Block.String())
	}
	sb.WriteString(" -> ")
	sb.WriteString(t.Type.ReturnTypeString())
	return sb.String()
}

func (t *ProcType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("^"),
		t.Type.ParametersDoc(),
	}
	if t.Block != nil {
		doc = append(
			doc,
			prettier.Text(" "),
			t.Block.Doc(),
		)
	}
	return prettier.Group{
		Doc: append(
			doc,
			prettier.Text(" -> "),
			t.Type.ReturnType.Doc(),
		),
	}
}

func (t *ProcType) Location() *common.Location {
	return t.Loc
}

func (t *ProcType) Equal(other Type) bool {
	otherProc, ok := other.(*ProcType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherProc.Type) &&
		common.DeepEquals[*Block](t.Block, otherProc.Block)
}

func (t *ProcType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	accumulator = t.Type.FreeVariables(accumulator)
	if t.Block != nil {
		accumulator = t.Block.FreeVariables(accumulator)
	}
	return accumulator
}

func (t *ProcType) Substitute(sub Substitution) Type {
	var block *Block
	if t.Block != nil {
		block = t.Block.Substitute(sub)
	}
	return NewProc(
		t.Type.Substitute(sub),
		block,
		t.Loc,
	)
}

func (t *ProcType) MapTypeName(rewrite TypeNameRewrite) Type {
	var block *Block
	if t.Block != nil {
		block = t.Block.MapTypeName(rewrite)
	}
	return NewProc(
		t.Type.MapTypeName(rewrite),
		block,
		t.Loc,
	)
}

func (t *ProcType) EachType(yield func(Type) bool) {
	proceed := true
	t.Type.EachType(func(childType Type) bool {
		proceed = yield(childType)
		return proceed
	})
	if !proceed || t.Block == nil {
		return
	}
	t.Block.Type.EachType(yield)
}

func (t *ProcType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type         string
		FunctionType *Function
		Block        *Block           `json:",omitempty"`
		Location     *common.Location `json:",omitempty"`
	}{
		Type:         "ProcType",
		FunctionType: t.Type,
		Block:        t.Block,
		Location:     t.Loc,
	})
}
