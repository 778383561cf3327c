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
	"strconv"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/errors"
)

// LiteralValue is the value inhabiting a literal type:
// a string, an integer, a symbol, true, or false.
//
// True and false are distinct variants, not a shared boolean variant:
// each denotes a different singleton type, and downstream subtype
// reasoning treats them as unrelated.
type LiteralValue interface {
	isLiteralValue()
	// String returns the canonical literal notation of the value
	String() string
}

type StringLiteral string

var _ LiteralValue = StringLiteral("")

func (StringLiteral) isLiteralValue() {}

func (l StringLiteral) String() string {
	return strconv.Quote(string(l))
}

type IntLiteral int64

var _ LiteralValue = IntLiteral(0)

func (IntLiteral) isLiteralValue() {}

func (l IntLiteral) String() string {
	return strconv.FormatInt(int64(l), 10)
}

type SymbolLiteral Identifier

var _ LiteralValue = SymbolLiteral("")

func (SymbolLiteral) isLiteralValue() {}

func (l SymbolLiteral) String() string {
	return ":" + string(l)
}

type TrueLiteral struct{}

var _ LiteralValue = TrueLiteral{}

func (TrueLiteral) isLiteralValue() {}

func (TrueLiteral) String() string {
	return "true"
}

type FalseLiteral struct{}

var _ LiteralValue = FalseLiteral{}

func (FalseLiteral) isLiteralValue() {}

func (FalseLiteral) String() string {
	return "false"
}

// LiteralValueOf converts a Go value into the corresponding LiteralValue.
// Only strings, integers, identifiers (symbols), and booleans are
// permitted literal payloads: anything else is a programming error
// and panics immediately instead of being coerced.
func LiteralValueOf(value any) LiteralValue {
	switch value := value.(type) {
	case LiteralValue:
		return value
	case string:
		return StringLiteral(value)
	case int:
		return IntLiteral(value)
	case int64:
		return IntLiteral(value)
	case Identifier:
		return SymbolLiteral(value)
	case bool:
		if value {
			return TrueLiteral{}
		}
		return FalseLiteral{}
	default:
		panic(errors.NewUnexpectedError(
			"invalid literal value: %T (%v)",
			value,
			value,
		))
	}
}

// LiteralType represents a singleton type inhabited by exactly one value
type LiteralType struct {
	Value LiteralValue `json:"-"`
	Loc   *common.Location
}

var _ Type = &LiteralType{}

func NewLiteral(value LiteralValue, location *common.Location) *LiteralType {
	if value == nil {
		panic(errors.NewUnexpectedError("missing literal value"))
	}
	return &LiteralType{
		Value: value,
		Loc:   location,
	}
}

func (*LiteralType) isType() {}

func (*LiteralType) precedence() precedence {
	return precedenceAtom
}

func (t *LiteralType) String() string {
	return t.Value.String()
}

func (t *LiteralType) Doc() prettier.Doc {
	return prettier.Text(t.Value.String())
}

func (t *LiteralType) Location() *common.Location {
	return t.Loc
}

func (t *LiteralType) Equal(other Type) bool {
	otherLiteral, ok := other.(*LiteralType)
	if !ok {
		return false
	}
	// all literal value variants are comparable
	return t.Value == otherLiteral.Value
}

func (*LiteralType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return accumulator
}

func (t *LiteralType) Substitute(_ Substitution) Type {
	return t
}

func (t *LiteralType) MapTypeName(_ TypeNameRewrite) Type {
	return t
}

func (*LiteralType) EachType(_ func(Type) bool) {
	// NO-OP
}

// JSON struct definitions for literal values

type literalValueObject struct {
	Kind  string
	Value string
}

type emptyLiteralValueObject struct {
	Kind string
}

func literalValueJSON(value LiteralValue) any {
	switch value := value.(type) {
	case StringLiteral:
		return literalValueObject{
			Kind:  "String",
			Value: string(value),
		}
	case IntLiteral:
		return literalValueObject{
			Kind:  "Int",
			Value: strconv.FormatInt(int64(value), 10),
		}
	case SymbolLiteral:
		return literalValueObject{
			Kind:  "Symbol",
			Value: string(value),
		}
	case TrueLiteral:
		return emptyLiteralValueObject{Kind: "True"}
	case FalseLiteral:
		return emptyLiteralValueObject{Kind: "False"}
	default:
		panic(errors.NewUnreachableError())
	}
}

func (t *LiteralType) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type     string
		Literal  any
		Location *common.Location `json:",omitempty"`
	}{
		Type:     "LiteralType",
		Literal:  literalValueJSON(t.Value),
		Location: t.Loc,
	})
}
