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

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/common/orderedmap"
	"github.com/tern-lang/tern/errors"
)

// Decoding of the JSON encoding produced by the MarshalJSON methods.
// Malformed input is a user error, never a panic.

// DecodeType decodes a type from its JSON encoding.
func DecodeType(data []byte) (Type, error) {
	var tagged struct {
		Type     string
		Location *common.Location
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, errors.NewDefaultUserError("invalid type encoding: %w", err)
	}

	switch tagged.Type {
	case "BoolType":
		return NewBoolType(tagged.Location), nil

	case "VoidType":
		return NewVoidType(tagged.Location), nil

	case "AnyType":
		return NewAnyType(tagged.Location), nil

	case "NilType":
		return NewNilType(tagged.Location), nil

	case "TopType":
		return NewTopType(tagged.Location), nil

	case "BottomType":
		return NewBottomType(tagged.Location), nil

	case "SelfType":
		return NewSelfType(tagged.Location), nil

	case "InstanceType":
		return NewInstanceType(tagged.Location), nil

	case "ClassType":
		return NewClassType(tagged.Location), nil

	case "VariableType":
		var encoded struct {
			Name     Identifier
			Location *common.Location
		}
		if err := json.Unmarshal(data, &encoded); err != nil {
			return nil, errors.NewDefaultUserError("invalid variable type encoding: %w", err)
		}
		return NewVariable(encoded.Name, encoded.Location), nil

	case "ClassSingletonType":
		name, location, err := decodeNamedType(data)
		if err != nil {
			return nil, err
		}
		return NewClassSingleton(name, location), nil

	case "AliasType":
		name, location, err := decodeNamedType(data)
		if err != nil {
			return nil, err
		}
		return NewAlias(name, location), nil

	case "InterfaceType":
		name, args, location, err := decodeApplicationType(data)
		if err != nil {
			return nil, err
		}
		return NewInterface(name, args, location), nil

	case "ClassInstanceType":
		name, args, location, err := decodeApplicationType(data)
		if err != nil {
			return nil, err
		}
		return NewClassInstance(name, args, location), nil

	case "LiteralType":
		return decodeLiteralType(data)

	case "TupleType":
		types, location, err := decodeCompositeType(data)
		if err != nil {
			return nil, err
		}
		return NewTuple(types, location), nil

	case "RecordType":
		return decodeRecordType(data)

	case "OptionalType":
		var encoded struct {
			ElementType json.RawMessage
			Location    *common.Location
		}
		if err := json.Unmarshal(data, &encoded); err != nil {
			return nil, errors.NewDefaultUserError("invalid optional type encoding: %w", err)
		}
		elementType, err := DecodeType(encoded.ElementType)
		if err != nil {
			return nil, err
		}
		return NewOptional(elementType, encoded.Location), nil

	case "UnionType":
		types, location, err := decodeCompositeType(data)
		if err != nil {
			return nil, err
		}
		return NewUnion(types, location), nil

	case "IntersectionType":
		types, location, err := decodeCompositeType(data)
		if err != nil {
			return nil, err
		}
		return NewIntersection(types, location), nil

	case "ProcType":
		return decodeProcType(data)

	default:
		return nil, errors.NewDefaultUserError("unknown type tag: %q", tagged.Type)
	}
}

func decodeTypes(raw []json.RawMessage) ([]Type, error) {
	if raw == nil {
		return nil, nil
	}
	types := make([]Type, len(raw))
	for i, rawType := range raw {
		decoded, err := DecodeType(rawType)
		if err != nil {
			return nil, err
		}
		types[i] = decoded
	}
	return types, nil
}

func decodeNamedType(data []byte) (common.TypeName, *common.Location, error) {
	var encoded struct {
		Name     common.TypeName
		Location *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return common.TypeName{}, nil,
			errors.NewDefaultUserError("invalid named type encoding: %w", err)
	}
	return encoded.Name, encoded.Location, nil
}

func decodeApplicationType(data []byte) (common.TypeName, []Type, *common.Location, error) {
	var encoded struct {
		Name     common.TypeName
		Args     []json.RawMessage
		Location *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return common.TypeName{}, nil, nil,
			errors.NewDefaultUserError("invalid application type encoding: %w", err)
	}
	args, err := decodeTypes(encoded.Args)
	if err != nil {
		return common.TypeName{}, nil, nil, err
	}
	return encoded.Name, args, encoded.Location, nil
}

func decodeCompositeType(data []byte) ([]Type, *common.Location, error) {
	var encoded struct {
		Types    []json.RawMessage
		Location *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, nil, errors.NewDefaultUserError("invalid composite type encoding: %w", err)
	}
	types, err := decodeTypes(encoded.Types)
	if err != nil {
		return nil, nil, err
	}
	return types, encoded.Location, nil
}

func decodeLiteralType(data []byte) (Type, error) {
	var encoded struct {
		Literal struct {
			Kind  string
			Value string
		}
		Location *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid literal type encoding: %w", err)
	}

	var value LiteralValue
	switch encoded.Literal.Kind {
	case "String":
		value = StringLiteral(encoded.Literal.Value)
	case "Int":
		intValue, err := strconv.ParseInt(encoded.Literal.Value, 10, 64)
		if err != nil {
			return nil, errors.NewDefaultUserError(
				"invalid integer literal value: %q",
				encoded.Literal.Value,
			)
		}
		value = IntLiteral(intValue)
	case "Symbol":
		value = SymbolLiteral(encoded.Literal.Value)
	case "True":
		value = TrueLiteral{}
	case "False":
		value = FalseLiteral{}
	default:
		return nil, errors.NewDefaultUserError(
			"unknown literal value kind: %q",
			encoded.Literal.Kind,
		)
	}

	return NewLiteral(value, encoded.Location), nil
}

func decodeRecordType(data []byte) (Type, error) {
	var encoded struct {
		Fields []struct {
			Key  Identifier
			Type json.RawMessage
		}
		Location *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid record type encoding: %w", err)
	}

	fields := orderedmap.New[Identifier, Type](len(encoded.Fields))
	for _, field := range encoded.Fields {
		fieldType, err := DecodeType(field.Type)
		if err != nil {
			return nil, err
		}
		if _, present := fields.Set(field.Key, fieldType); present {
			return nil, errors.NewDefaultUserError(
				"duplicate record field: %s",
				field.Key,
			)
		}
	}

	return NewRecord(fields, encoded.Location), nil
}

func decodeProcType(data []byte) (Type, error) {
	var encoded struct {
		FunctionType json.RawMessage
		Block        json.RawMessage
		Location     *common.Location
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid proc type encoding: %w", err)
	}

	functionType, err := DecodeFunction(encoded.FunctionType)
	if err != nil {
		return nil, err
	}

	var block *Block
	if encoded.Block != nil {
		block, err = DecodeBlock(encoded.Block)
		if err != nil {
			return nil, err
		}
	}

	return NewProc(functionType, block, encoded.Location), nil
}

// DecodeFunction decodes a function signature from its JSON encoding.
func DecodeFunction(data []byte) (*Function, error) {
	var encoded struct {
		Type                string
		RequiredPositionals []json.RawMessage
		OptionalPositionals []json.RawMessage
		RestPositionals     json.RawMessage
		TrailingPositionals []json.RawMessage
		RequiredKeywords    []rawKeywordParam
		OptionalKeywords    []rawKeywordParam
		RestKeywords        json.RawMessage
		ReturnType          json.RawMessage
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid function encoding: %w", err)
	}
	if encoded.Type != "Function" {
		return nil, errors.NewDefaultUserError("unknown function tag: %q", encoded.Type)
	}

	requiredPositionals, err := decodeParams(encoded.RequiredPositionals)
	if err != nil {
		return nil, err
	}
	optionalPositionals, err := decodeParams(encoded.OptionalPositionals)
	if err != nil {
		return nil, err
	}
	restPositionals, err := decodeOptionalParam(encoded.RestPositionals)
	if err != nil {
		return nil, err
	}
	trailingPositionals, err := decodeParams(encoded.TrailingPositionals)
	if err != nil {
		return nil, err
	}
	requiredKeywords, err := decodeKeywordParams(encoded.RequiredKeywords)
	if err != nil {
		return nil, err
	}
	optionalKeywords, err := decodeKeywordParams(encoded.OptionalKeywords)
	if err != nil {
		return nil, err
	}
	restKeywords, err := decodeOptionalParam(encoded.RestKeywords)
	if err != nil {
		return nil, err
	}
	returnType, err := DecodeType(encoded.ReturnType)
	if err != nil {
		return nil, err
	}

	return &Function{
		RequiredPositionals: requiredPositionals,
		OptionalPositionals: optionalPositionals,
		RestPositionals:     restPositionals,
		TrailingPositionals: trailingPositionals,
		RequiredKeywords:    requiredKeywords,
		OptionalKeywords:    optionalKeywords,
		RestKeywords:        restKeywords,
		ReturnType:          returnType,
	}, nil
}

// DecodeBlock decodes a block descriptor from its JSON encoding.
func DecodeBlock(data []byte) (*Block, error) {
	var encoded struct {
		Type         string
		FunctionType json.RawMessage
		Required     bool
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid block encoding: %w", err)
	}
	if encoded.Type != "Block" {
		return nil, errors.NewDefaultUserError("unknown block tag: %q", encoded.Type)
	}

	functionType, err := DecodeFunction(encoded.FunctionType)
	if err != nil {
		return nil, err
	}

	return NewBlock(functionType, encoded.Required), nil
}

// DecodeParam decodes a single parameter from its JSON encoding.
func DecodeParam(data []byte) (*Param, error) {
	var encoded struct {
		Type json.RawMessage
		Name Identifier
	}
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, errors.NewDefaultUserError("invalid parameter encoding: %w", err)
	}

	parameterType, err := DecodeType(encoded.Type)
	if err != nil {
		return nil, err
	}

	return NewParam(parameterType, encoded.Name), nil
}

func decodeParams(raw []json.RawMessage) ([]*Param, error) {
	if raw == nil {
		return nil, nil
	}
	params := make([]*Param, len(raw))
	for i, rawParam := range raw {
		param, err := DecodeParam(rawParam)
		if err != nil {
			return nil, err
		}
		params[i] = param
	}
	return params, nil
}

func decodeOptionalParam(raw json.RawMessage) (*Param, error) {
	if raw == nil {
		return nil, nil
	}
	return DecodeParam(raw)
}

type rawKeywordParam struct {
	Name  Identifier
	Param json.RawMessage
}

func decodeKeywordParams(raw []rawKeywordParam) (*KeywordParams, error) {
	if raw == nil {
		return nil, nil
	}
	params := orderedmap.New[Identifier, *Param](len(raw))
	for _, rawKeyword := range raw {
		param, err := DecodeParam(rawKeyword.Param)
		if err != nil {
			return nil, err
		}
		if _, present := params.Set(rawKeyword.Name, param); present {
			return nil, errors.NewDefaultUserError(
				"duplicate keyword parameter: %s",
				rawKeyword.Name,
			)
		}
	}
	return params, nil
}
