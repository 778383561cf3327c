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
)

// Block describes the block argument of a callable:
// the block's own signature, plus whether callers may omit it.
type Block struct {
	Type     *Function
	Required bool
}

func NewBlock(functionType *Function, required bool) *Block {
	return &Block{
		Type:     functionType,
		Required: required,
	}
}

// String renders the block as `{ signature }`,
// prefixed with `?` if the block may be omitted.
func (b *Block) String() string {
	s := "{ " + b.Type.String() + " }"
	if !b.Required {
		return "?" + s
	}
	return s
}

func (b *Block) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("{ "),
		b.Type.Doc(),
		prettier.Text(" }"),
	}
	if !b.Required {
		return prettier.Concat{
			prettier.Text("?"),
			doc,
		}
	}
	return doc
}

func (b *Block) Equal(other *Block) bool {
	return b.Required == other.Required &&
		b.Type.Equal(other.Type)
}

func (b *Block) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return b.Type.FreeVariables(accumulator)
}

func (b *Block) Substitute(sub Substitution) *Block {
	return NewBlock(
		b.Type.Substitute(sub),
		b.Required,
	)
}

func (b *Block) MapType(mapType func(Type) Type) *Block {
	return NewBlock(
		b.Type.MapType(mapType),
		b.Required,
	)
}

func (b *Block) MapTypeName(rewrite TypeNameRewrite) *Block {
	return NewBlock(
		b.Type.MapTypeName(rewrite),
		b.Required,
	)
}

func (b *Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type         string
		FunctionType *Function
		Required     bool
	}{
		Type:         "Block",
		FunctionType: b.Type,
		Required:     b.Required,
	})
}
