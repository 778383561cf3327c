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
	"github.com/tern-lang/tern/common/orderedmap"
	"github.com/tern-lang/tern/errors"
)

// Param is a single parameter of a function signature:
// a type plus an optional name.
// The name is empty for anonymous positional parameters.
type Param struct {
	Type Type
	Name Identifier `json:",omitempty"`
}

func NewParam(parameterType Type, name Identifier) *Param {
	return &Param{
		Type: parameterType,
		Name: name,
	}
}

func (p *Param) String() string {
	if p.Name == "" {
		return p.Type.String()
	}
	return p.Type.String() + " " + string(p.Name)
}

func (p *Param) Doc() prettier.Doc {
	typeDoc := p.Type.Doc()
	if p.Name == "" {
		return typeDoc
	}
	return prettier.Concat{
		typeDoc,
		prettier.Text(" "),
		prettier.Text(string(p.Name)),
	}
}

func (p *Param) Equal(other *Param) bool {
	return p.Name == other.Name &&
		p.Type.Equal(other.Type)
}

func (p *Param) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	return p.Type.FreeVariables(accumulator)
}

func (p *Param) Substitute(sub Substitution) *Param {
	return NewParam(
		p.Type.Substitute(sub),
		p.Name,
	)
}

func (p *Param) MapType(f func(Type) Type) *Param {
	return NewParam(
		f(p.Type),
		p.Name,
	)
}

func (p *Param) MapTypeName(rewrite TypeNameRewrite) *Param {
	return NewParam(
		p.Type.MapTypeName(rewrite),
		p.Name,
	)
}

// KeywordParams is the parameter mapping of a keyword slot,
// preserving declaration order
type KeywordParams = orderedmap.OrderedMap[Identifier, *Param]

// KeywordParam is a single keyword-parameter pair,
// used by the convenience constructor NewKeywordParams
type KeywordParam struct {
	Name  Identifier
	Param *Param
}

func NewKeywordParams(keywords ...KeywordParam) *KeywordParams {
	params := orderedmap.New[Identifier, *Param](len(keywords))
	for _, keyword := range keywords {
		if _, present := params.Set(keyword.Name, keyword.Param); present {
			panic(errors.NewUnexpectedError(
				"duplicate keyword parameter: %s",
				keyword.Name,
			))
		}
	}
	return params
}

// Function describes a callable's parameter list and return type.
//
// Positional parameters fill four slots which are matched left-to-right:
// required, optional, an optional rest parameter, and trailing parameters
// bound after the rest. Keyword parameters fill three more:
// required, optional, and an optional rest-keyword parameter.
//
// A Function is immutable. Update and the Drop operations return
// new values and never modify the receiver.
type Function struct {
	RequiredPositionals []*Param
	OptionalPositionals []*Param
	RestPositionals     *Param
	TrailingPositionals []*Param
	RequiredKeywords    *KeywordParams
	OptionalKeywords    *KeywordParams
	RestKeywords        *Param
	ReturnType          Type
}

// EmptyFunction returns the canonical zero-argument signature
// with the given return type.
func EmptyFunction(returnType Type) *Function {
	return &Function{
		ReturnType: returnType,
	}
}

// A FunctionOption overrides one field of a Function in an Update call
type FunctionOption func(*Function)

func WithRequiredPositionals(params ...*Param) FunctionOption {
	return func(f *Function) {
		f.RequiredPositionals = params
	}
}

func WithOptionalPositionals(params ...*Param) FunctionOption {
	return func(f *Function) {
		f.OptionalPositionals = params
	}
}

func WithRestPositionals(param *Param) FunctionOption {
	return func(f *Function) {
		f.RestPositionals = param
	}
}

func WithTrailingPositionals(params ...*Param) FunctionOption {
	return func(f *Function) {
		f.TrailingPositionals = params
	}
}

func WithRequiredKeywords(params *KeywordParams) FunctionOption {
	return func(f *Function) {
		f.RequiredKeywords = params
	}
}

func WithOptionalKeywords(params *KeywordParams) FunctionOption {
	return func(f *Function) {
		f.OptionalKeywords = params
	}
}

func WithRestKeywords(param *Param) FunctionOption {
	return func(f *Function) {
		f.RestKeywords = param
	}
}

func WithReturnType(returnType Type) FunctionOption {
	return func(f *Function) {
		f.ReturnType = returnType
	}
}

// Update returns a new Function with the fields selected by the given
// options replaced and all other fields copied from the receiver.
func (f *Function) Update(options ...FunctionOption) *Function {
	updated := *f
	for _, option := range options {
		option(&updated)
	}
	return &updated
}

// WithReturnType returns a copy of the function
// with only the return type replaced.
func (f *Function) WithReturnType(returnType Type) *Function {
	return f.Update(WithReturnType(returnType))
}

// IsEmpty returns true if every parameter slot is empty,
// irrespective of the return type.
func (f *Function) IsEmpty() bool {
	return len(f.RequiredPositionals) == 0 &&
		len(f.OptionalPositionals) == 0 &&
		f.RestPositionals == nil &&
		len(f.TrailingPositionals) == 0 &&
		!f.HasKeywords()
}

// HasKeywords returns true if any keyword slot is non-empty.
func (f *Function) HasKeywords() bool {
	return f.RequiredKeywords.Len() > 0 ||
		f.OptionalKeywords.Len() > 0 ||
		f.RestKeywords != nil
}

// DropHead removes the first required positional parameter and returns it,
// paired with a function identical to the receiver except for the removal.
//
// It is meant for algorithms which consume required arguments
// left-to-right, and panics if there are no required positionals left:
// callers must check the slot first.
func (f *Function) DropHead() (*Param, *Function) {
	if len(f.RequiredPositionals) == 0 {
		panic(errors.NewUnexpectedError(
			"cannot drop head of a function without required positional parameters",
		))
	}
	head := f.RequiredPositionals[0]
	return head, f.Update(
		WithRequiredPositionals(f.RequiredPositionals[1:]...),
	)
}

// DropTail removes the last positional parameter bound from the right:
// the last trailing positional if any exist, the last required positional
// otherwise. Like DropHead, it panics if both slots are empty.
func (f *Function) DropTail() (*Param, *Function) {
	if count := len(f.TrailingPositionals); count > 0 {
		tail := f.TrailingPositionals[count-1]
		return tail, f.Update(
			WithTrailingPositionals(f.TrailingPositionals[:count-1]...),
		)
	}

	if count := len(f.RequiredPositionals); count > 0 {
		tail := f.RequiredPositionals[count-1]
		return tail, f.Update(
			WithRequiredPositionals(f.RequiredPositionals[:count-1]...),
		)
	}

	panic(errors.NewUnexpectedError(
		"cannot drop tail of a function without positional parameters",
	))
}

func (f *Function) Equal(other *Function) bool {
	return paramsEqual(f.RequiredPositionals, other.RequiredPositionals) &&
		paramsEqual(f.OptionalPositionals, other.OptionalPositionals) &&
		common.DeepEquals[*Param](f.RestPositionals, other.RestPositionals) &&
		paramsEqual(f.TrailingPositionals, other.TrailingPositionals) &&
		keywordParamsEqual(f.RequiredKeywords, other.RequiredKeywords) &&
		keywordParamsEqual(f.OptionalKeywords, other.OptionalKeywords) &&
		common.DeepEquals[*Param](f.RestKeywords, other.RestKeywords) &&
		f.ReturnType.Equal(other.ReturnType)
}

func paramsEqual(params, others []*Param) bool {
	if len(params) != len(others) {
		return false
	}
	for i, param := range params {
		if !param.Equal(others[i]) {
			return false
		}
	}
	return true
}

// keywordParamsEqual is mapping equality:
// declaration order does not affect it
func keywordParamsEqual(params, others *KeywordParams) bool {
	if params.Len() != others.Len() {
		return false
	}

	equal := true
	params.Foreach(func(name Identifier, param *Param) {
		otherParam, present := others.Get(name)
		if !present || !param.Equal(otherParam) {
			equal = false
		}
	})
	return equal
}

// ParametersString renders just the parameter-list portion of the
// signature, without the surrounding parentheses.
//
// Slots render in declaration order: required positionals,
// optional positionals suffixed `?`, the rest positional prefixed `*`,
// trailing positionals, required keywords as `name: type`,
// optional keywords as `name?: type`,
// and the rest-keyword parameter prefixed `**`.
func (f *Function) ParametersString() string {
	var elements []string

	for _, param := range f.RequiredPositionals {
		elements = append(elements, param.String())
	}
	for _, param := range f.OptionalPositionals {
		elements = append(elements, param.String()+"?")
	}
	if f.RestPositionals != nil {
		elements = append(elements, "*"+f.RestPositionals.String())
	}
	for _, param := range f.TrailingPositionals {
		elements = append(elements, param.String())
	}
	f.RequiredKeywords.Foreach(func(name Identifier, param *Param) {
		elements = append(elements, string(name)+": "+param.String())
	})
	f.OptionalKeywords.Foreach(func(name Identifier, param *Param) {
		elements = append(elements, string(name)+"?: "+param.String())
	})
	if f.RestKeywords != nil {
		elements = append(elements, "**"+f.RestKeywords.String())
	}

	return strings.Join(elements, ", ")
}

// ReturnTypeString renders just the return-type portion of the signature.
func (f *Function) ReturnTypeString() string {
	return f.ReturnType.String()
}

func (f *Function) String() string {
	return "(" + f.ParametersString() + ") -> " + f.ReturnTypeString()
}

var functionParameterSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

// ParametersDoc is the pretty-printer document
// for the parameter-list portion of the signature,
// including the surrounding parentheses.
func (f *Function) ParametersDoc() prettier.Doc {
	var elementDocs []prettier.Doc

	for _, param := range f.RequiredPositionals {
		elementDocs = append(elementDocs, param.Doc())
	}
	for _, param := range f.OptionalPositionals {
		elementDocs = append(
			elementDocs,
			prettier.Concat{
				param.Doc(),
				prettier.Text("?"),
			},
		)
	}
	if f.RestPositionals != nil {
		elementDocs = append(
			elementDocs,
			prettier.Concat{
				prettier.Text("*"),
				f.RestPositionals.Doc(),
			},
		)
	}
	for _, param := range f.TrailingPositionals {
		elementDocs = append(elementDocs, param.Doc())
	}
	f.RequiredKeywords.Foreach(func(name Identifier, param *Param) {
		elementDocs = append(
			elementDocs,
			prettier.Concat{
				prettier.Text(string(name)),
				prettier.Text(": "),
				param.Doc(),
			},
		)
	})
	f.OptionalKeywords.Foreach(func(name Identifier, param *Param) {
		elementDocs = append(
			elementDocs,
			prettier.Concat{
				prettier.Text(string(name)),
				prettier.Text("?: "),
				param.Doc(),
			},
		)
	})
	if f.RestKeywords != nil {
		elementDocs = append(
			elementDocs,
			prettier.Concat{
				prettier.Text("**"),
				f.RestKeywords.Doc(),
			},
		)
	}

	if len(elementDocs) == 0 {
		return prettier.Text("()")
	}

	return prettier.WrapParentheses(
		prettier.Join(functionParameterSeparatorDoc, elementDocs...),
		prettier.SoftLine{},
	)
}

func (f *Function) Doc() prettier.Doc {
	return prettier.Group{
		Doc: prettier.Concat{
			f.ParametersDoc(),
			prettier.Text(" -> "),
			f.ReturnType.Doc(),
		},
	}
}

// EachParam invokes the given function once per parameter,
// in declaration order of the slots: required positionals,
// optional positionals, the rest positional, trailing positionals,
// required keywords, optional keywords, and the rest-keyword parameter.
// The method value is usable as an iter.Seq[*Param].
func (f *Function) EachParam(yield func(*Param) bool) {
	for _, param := range f.RequiredPositionals {
		if !yield(param) {
			return
		}
	}
	for _, param := range f.OptionalPositionals {
		if !yield(param) {
			return
		}
	}
	if f.RestPositionals != nil {
		if !yield(f.RestPositionals) {
			return
		}
	}
	for _, param := range f.TrailingPositionals {
		if !yield(param) {
			return
		}
	}
	for _, pair := range f.RequiredKeywords.Pairs() {
		if !yield(pair.Value) {
			return
		}
	}
	for _, pair := range f.OptionalKeywords.Pairs() {
		if !yield(pair.Value) {
			return
		}
	}
	if f.RestKeywords != nil {
		if !yield(f.RestKeywords) {
			return
		}
	}
}

// EachType invokes the given function once per parameter type,
// in the order of EachParam, and finally for the return type.
func (f *Function) EachType(yield func(Type) bool) {
	proceed := true
	f.EachParam(func(param *Param) bool {
		proceed = yield(param.Type)
		return proceed
	})
	if !proceed {
		return
	}
	yield(f.ReturnType)
}

func (f *Function) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	f.EachParam(func(param *Param) bool {
		accumulator = param.FreeVariables(accumulator)
		return true
	})
	return f.ReturnType.FreeVariables(accumulator)
}

func (f *Function) Substitute(sub Substitution) *Function {
	return f.MapType(func(t Type) Type {
		return t.Substitute(sub)
	})
}

func (f *Function) MapTypeName(rewrite TypeNameRewrite) *Function {
	return f.MapType(func(t Type) Type {
		return t.MapTypeName(rewrite)
	})
}

// MapType returns a new Function with the given function applied to
// every parameter type and to the return type.
func (f *Function) MapType(mapType func(Type) Type) *Function {
	return &Function{
		RequiredPositionals: mapParamTypes(f.RequiredPositionals, mapType),
		OptionalPositionals: mapParamTypes(f.OptionalPositionals, mapType),
		RestPositionals:     mapParamType(f.RestPositionals, mapType),
		TrailingPositionals: mapParamTypes(f.TrailingPositionals, mapType),
		RequiredKeywords:    mapKeywordParamTypes(f.RequiredKeywords, mapType),
		OptionalKeywords:    mapKeywordParamTypes(f.OptionalKeywords, mapType),
		RestKeywords:        mapParamType(f.RestKeywords, mapType),
		ReturnType:          mapType(f.ReturnType),
	}
}

func mapParamType(param *Param, mapType func(Type) Type) *Param {
	if param == nil {
		return nil
	}
	return param.MapType(mapType)
}

func mapParamTypes(params []*Param, mapType func(Type) Type) []*Param {
	if params == nil {
		return nil
	}
	result := make([]*Param, len(params))
	for i, param := range params {
		result[i] = param.MapType(mapType)
	}
	return result
}

func mapKeywordParamTypes(params *KeywordParams, mapType func(Type) Type) *KeywordParams {
	if params.Len() == 0 {
		return params
	}
	result := orderedmap.New[Identifier, *Param](params.Len())
	params.Foreach(func(name Identifier, param *Param) {
		result.Set(name, param.MapType(mapType))
	})
	return result
}

// JSON struct definition for keyword parameters,
// encoded as a pair list to preserve declaration order

type keywordParamObject struct {
	Name  Identifier
	Param *Param
}

func keywordParamObjects(params *KeywordParams) []keywordParamObject {
	keywords := make([]keywordParamObject, 0, params.Len())
	params.Foreach(func(name Identifier, param *Param) {
		keywords = append(keywords, keywordParamObject{
			Name:  name,
			Param: param,
		})
	})
	return keywords
}

func (f *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type                string
		RequiredPositionals []*Param              `json:",omitempty"`
		OptionalPositionals []*Param              `json:",omitempty"`
		RestPositionals     *Param                `json:",omitempty"`
		TrailingPositionals []*Param              `json:",omitempty"`
		RequiredKeywords    []keywordParamObject  `json:",omitempty"`
		OptionalKeywords    []keywordParamObject  `json:",omitempty"`
		RestKeywords        *Param                `json:",omitempty"`
		ReturnType          Type
	}{
		Type:                "Function",
		RequiredPositionals: f.RequiredPositionals,
		OptionalPositionals: f.OptionalPositionals,
		RestPositionals:     f.RestPositionals,
		TrailingPositionals: f.TrailingPositionals,
		RequiredKeywords:    keywordParamObjects(f.RequiredKeywords),
		OptionalKeywords:    keywordParamObjects(f.OptionalKeywords),
		RestKeywords:        f.RestKeywords,
		ReturnType:          f.ReturnType,
	})
}
