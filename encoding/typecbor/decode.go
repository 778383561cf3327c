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

package typecbor

import (
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/common/orderedmap"
	"github.com/tern-lang/tern/errors"
	"github.com/tern-lang/tern/types"
)

var decMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic(errors.NewUnexpectedError("invalid CBOR decoding options: %w", err))
	}
	return decMode
}()

// Decode decodes a type from its CBOR encoding.
func Decode(data []byte) (types.Type, error) {
	var value any
	if err := decMode.Unmarshal(data, &value); err != nil {
		return nil, errors.NewDefaultUserError("invalid CBOR type encoding: %w", err)
	}
	return decodeType(value)
}

// DecodeFunction decodes a function signature from its CBOR encoding.
func DecodeFunction(data []byte) (*types.Function, error) {
	var value any
	if err := decMode.Unmarshal(data, &value); err != nil {
		return nil, errors.NewDefaultUserError("invalid CBOR function encoding: %w", err)
	}
	return decodeFunction(value)
}

func decodeType(value any) (types.Type, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, errors.NewDefaultUserError("missing type kind")
	}
	kind, err := decodeUint(elements[0])
	if err != nil {
		return nil, err
	}
	payload := elements[1:]

	switch kind {
	case kindBool:
		return types.NewBoolType(nil), nil

	case kindVoid:
		return types.NewVoidType(nil), nil

	case kindAny:
		return types.NewAnyType(nil), nil

	case kindNil:
		return types.NewNilType(nil), nil

	case kindTop:
		return types.NewTopType(nil), nil

	case kindBottom:
		return types.NewBottomType(nil), nil

	case kindSelf:
		return types.NewSelfType(nil), nil

	case kindInstance:
		return types.NewInstanceType(nil), nil

	case kindClass:
		return types.NewClassType(nil), nil

	case kindVariable:
		name, err := decodePayloadString(payload)
		if err != nil {
			return nil, err
		}
		return types.NewVariable(types.Identifier(name), nil), nil

	case kindClassSingleton:
		name, err := decodePayloadTypeName(payload)
		if err != nil {
			return nil, err
		}
		return types.NewClassSingleton(name, nil), nil

	case kindAlias:
		name, err := decodePayloadTypeName(payload)
		if err != nil {
			return nil, err
		}
		return types.NewAlias(name, nil), nil

	case kindInterface:
		name, args, err := decodePayloadApplication(payload)
		if err != nil {
			return nil, err
		}
		return types.NewInterface(name, args, nil), nil

	case kindClassInstance:
		name, args, err := decodePayloadApplication(payload)
		if err != nil {
			return nil, err
		}
		return types.NewClassInstance(name, args, nil), nil

	case kindLiteral:
		literalValue, err := decodeLiteralValue(payload)
		if err != nil {
			return nil, err
		}
		return types.NewLiteral(literalValue, nil), nil

	case kindTuple:
		elementTypes, err := decodePayloadTypes(payload)
		if err != nil {
			return nil, err
		}
		return types.NewTuple(elementTypes, nil), nil

	case kindRecord:
		return decodeRecord(payload)

	case kindOptional:
		if len(payload) != 1 {
			return nil, errors.NewDefaultUserError("invalid optional type payload")
		}
		elementType, err := decodeType(payload[0])
		if err != nil {
			return nil, err
		}
		return types.NewOptional(elementType, nil), nil

	case kindUnion:
		memberTypes, err := decodePayloadTypes(payload)
		if err != nil {
			return nil, err
		}
		return types.NewUnion(memberTypes, nil), nil

	case kindIntersection:
		memberTypes, err := decodePayloadTypes(payload)
		if err != nil {
			return nil, err
		}
		return types.NewIntersection(memberTypes, nil), nil

	case kindProc:
		return decodeProc(payload)

	default:
		return nil, errors.NewDefaultUserError("unknown type kind: %d", kind)
	}
}

func decodeArray(value any) ([]any, error) {
	elements, ok := value.([]any)
	if !ok {
		return nil, errors.NewDefaultUserError("expected array, got %T", value)
	}
	return elements, nil
}

func decodeUint(value any) (uint64, error) {
	result, ok := value.(uint64)
	if !ok {
		return 0, errors.NewDefaultUserError("expected unsigned integer, got %T", value)
	}
	return result, nil
}

func decodeInt(value any) (int64, error) {
	switch value := value.(type) {
	case uint64:
		if value > math.MaxInt64 {
			return 0, errors.NewDefaultUserError("integer out of range: %d", value)
		}
		return int64(value), nil
	case int64:
		return value, nil
	default:
		return 0, errors.NewDefaultUserError("expected integer, got %T", value)
	}
}

func decodeString(value any) (string, error) {
	result, ok := value.(string)
	if !ok {
		return "", errors.NewDefaultUserError("expected string, got %T", value)
	}
	return result, nil
}

func decodeBool(value any) (bool, error) {
	result, ok := value.(bool)
	if !ok {
		return false, errors.NewDefaultUserError("expected boolean, got %T", value)
	}
	return result, nil
}

func decodePayloadString(payload []any) (string, error) {
	if len(payload) != 1 {
		return "", errors.NewDefaultUserError("invalid name payload")
	}
	return decodeString(payload[0])
}

func decodeTypeName(value any) (common.TypeName, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return common.TypeName{}, err
	}
	if len(elements) != 2 {
		return common.TypeName{}, errors.NewDefaultUserError("invalid type name payload")
	}
	namespace, err := decodeString(elements[0])
	if err != nil {
		return common.TypeName{}, err
	}
	name, err := decodeString(elements[1])
	if err != nil {
		return common.TypeName{}, err
	}
	return common.NewTypeName(common.Namespace(namespace), name), nil
}

func decodePayloadTypeName(payload []any) (common.TypeName, error) {
	if len(payload) != 1 {
		return common.TypeName{}, errors.NewDefaultUserError("invalid named type payload")
	}
	return decodeTypeName(payload[0])
}

func decodeTypes(value any) ([]types.Type, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}
	result := make([]types.Type, len(elements))
	for i, element := range elements {
		decoded, err := decodeType(element)
		if err != nil {
			return nil, err
		}
		result[i] = decoded
	}
	return result, nil
}

func decodePayloadTypes(payload []any) ([]types.Type, error) {
	if len(payload) != 1 {
		return nil, errors.NewDefaultUserError("invalid composite type payload")
	}
	return decodeTypes(payload[0])
}

func decodePayloadApplication(payload []any) (common.TypeName, []types.Type, error) {
	if len(payload) != 2 {
		return common.TypeName{}, nil,
			errors.NewDefaultUserError("invalid application type payload")
	}
	name, err := decodeTypeName(payload[0])
	if err != nil {
		return common.TypeName{}, nil, err
	}
	args, err := decodeTypes(payload[1])
	if err != nil {
		return common.TypeName{}, nil, err
	}
	return name, args, nil
}

func decodeLiteralValue(payload []any) (types.LiteralValue, error) {
	if len(payload) == 0 {
		return nil, errors.NewDefaultUserError("missing literal value kind")
	}
	kind, err := decodeUint(payload[0])
	if err != nil {
		return nil, err
	}

	switch kind {
	case literalKindString:
		value, err := decodePayloadString(payload[1:])
		if err != nil {
			return nil, err
		}
		return types.StringLiteral(value), nil

	case literalKindInt:
		if len(payload) != 2 {
			return nil, errors.NewDefaultUserError("invalid integer literal payload")
		}
		value, err := decodeInt(payload[1])
		if err != nil {
			return nil, err
		}
		return types.IntLiteral(value), nil

	case literalKindSymbol:
		value, err := decodePayloadString(payload[1:])
		if err != nil {
			return nil, err
		}
		return types.SymbolLiteral(value), nil

	case literalKindTrue:
		return types.TrueLiteral{}, nil

	case literalKindFalse:
		return types.FalseLiteral{}, nil

	default:
		return nil, errors.NewDefaultUserError("unknown literal value kind: %d", kind)
	}
}

func decodeRecord(payload []any) (types.Type, error) {
	if len(payload) != 1 {
		return nil, errors.NewDefaultUserError("invalid record type payload")
	}
	elements, err := decodeArray(payload[0])
	if err != nil {
		return nil, err
	}

	fields := orderedmap.New[types.Identifier, types.Type](len(elements))
	for _, element := range elements {
		pair, err := decodeArray(element)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errors.NewDefaultUserError("invalid record field payload")
		}
		key, err := decodeString(pair[0])
		if err != nil {
			return nil, err
		}
		fieldType, err := decodeType(pair[1])
		if err != nil {
			return nil, err
		}
		if _, present := fields.Set(types.Identifier(key), fieldType); present {
			return nil, errors.NewDefaultUserError("duplicate record field: %s", key)
		}
	}

	return types.NewRecord(fields, nil), nil
}

func decodeProc(payload []any) (types.Type, error) {
	if len(payload) != 2 {
		return nil, errors.NewDefaultUserError("invalid proc type payload")
	}
	functionType, err := decodeFunction(payload[0])
	if err != nil {
		return nil, err
	}

	var block *types.Block
	if payload[1] != nil {
		block, err = decodeBlock(payload[1])
		if err != nil {
			return nil, err
		}
	}

	return types.NewProc(functionType, block, nil), nil
}

func decodeBlock(value any) (*types.Block, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) != 2 {
		return nil, errors.NewDefaultUserError("invalid block payload")
	}
	required, err := decodeBool(elements[0])
	if err != nil {
		return nil, err
	}
	functionType, err := decodeFunction(elements[1])
	if err != nil {
		return nil, err
	}
	return types.NewBlock(functionType, required), nil
}

func decodeFunction(value any) (*types.Function, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) != 8 {
		return nil, errors.NewDefaultUserError("invalid function payload")
	}

	requiredPositionals, err := decodeParams(elements[0])
	if err != nil {
		return nil, err
	}
	optionalPositionals, err := decodeParams(elements[1])
	if err != nil {
		return nil, err
	}
	restPositionals, err := decodeOptionalParam(elements[2])
	if err != nil {
		return nil, err
	}
	trailingPositionals, err := decodeParams(elements[3])
	if err != nil {
		return nil, err
	}
	requiredKeywords, err := decodeKeywordParams(elements[4])
	if err != nil {
		return nil, err
	}
	optionalKeywords, err := decodeKeywordParams(elements[5])
	if err != nil {
		return nil, err
	}
	restKeywords, err := decodeOptionalParam(elements[6])
	if err != nil {
		return nil, err
	}
	returnType, err := decodeType(elements[7])
	if err != nil {
		return nil, err
	}

	return &types.Function{
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

func decodeParam(value any) (*types.Param, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) != 2 {
		return nil, errors.NewDefaultUserError("invalid parameter payload")
	}
	name, err := decodeString(elements[0])
	if err != nil {
		return nil, err
	}
	parameterType, err := decodeType(elements[1])
	if err != nil {
		return nil, err
	}
	return types.NewParam(parameterType, types.Identifier(name)), nil
}

func decodeParams(value any) ([]*types.Param, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}
	params := make([]*types.Param, len(elements))
	for i, element := range elements {
		param, err := decodeParam(element)
		if err != nil {
			return nil, err
		}
		params[i] = param
	}
	return params, nil
}

func decodeOptionalParam(value any) (*types.Param, error) {
	if value == nil {
		return nil, nil
	}
	return decodeParam(value)
}

func decodeKeywordParams(value any) (*types.KeywordParams, error) {
	elements, err := decodeArray(value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}

	keywords := orderedmap.New[types.Identifier, *types.Param](len(elements))
	for _, element := range elements {
		pair, err := decodeArray(element)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errors.NewDefaultUserError("invalid keyword parameter payload")
		}
		name, err := decodeString(pair[0])
		if err != nil {
			return nil, err
		}
		param, err := decodeParam(pair[1])
		if err != nil {
			return nil, err
		}
		if _, present := keywords.Set(types.Identifier(name), param); present {
			return nil, errors.NewDefaultUserError("duplicate keyword parameter: %s", name)
		}
	}

	return keywords, nil
}
