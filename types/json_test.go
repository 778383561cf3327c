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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tern-lang/tern/errors"
	"github.com/tern-lang/tern/test_utils"
)

func TestTypeMarshalJSON(t *testing.T) {

	t.Parallel()

	test := func(name string, ty Type, expected string) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			actual, err := json.Marshal(ty)
			require.NoError(t, err)

			assert.JSONEq(t, expected, string(actual))
		})
	}

	test(
		"base type",
		NewBoolType(nil),
		`{"Type": "BoolType"}`,
	)

	test(
		"base type with location",
		NewBoolType(test_utils.TestLocation),
		`
        {
            "Type": "BoolType",
            "Location": {
                "StartPos": {"Offset": 0, "Line": 1, "Column": 0},
                "EndPos": {"Offset": 3, "Line": 1, "Column": 3}
            }
        }
        `,
	)

	test(
		"variable",
		NewVariable("Elem", nil),
		`{"Type": "VariableType", "Name": "Elem"}`,
	)

	test(
		"class singleton",
		NewClassSingleton(accountTypeName(), nil),
		`
        {
            "Type": "ClassSingletonType",
            "Name": {"Namespace": "::Banking::", "Name": "Account"}
        }
        `,
	)

	test(
		"alias",
		NewAlias(enumerableTypeName(), nil),
		`
        {
            "Type": "AliasType",
            "Name": {"Namespace": "::", "Name": "Enumerable"}
        }
        `,
	)

	test(
		"interface",
		NewInterface(
			enumerableTypeName(),
			[]Type{NewVariable("Elem", nil)},
			nil,
		),
		`
        {
            "Type": "InterfaceType",
            "Name": {"Namespace": "::", "Name": "Enumerable"},
            "Args": [
                {"Type": "VariableType", "Name": "Elem"}
            ]
        }
        `,
	)

	test(
		"tuple",
		NewTuple(
			[]Type{
				NewBoolType(nil),
				NewNilType(nil),
			},
			nil,
		),
		`
        {
            "Type": "TupleType",
            "Types": [
                {"Type": "BoolType"},
                {"Type": "NilType"}
            ]
        }
        `,
	)

	test(
		"record preserves field order",
		NewRecordWithFields(
			nil,
			RecordField{Key: "b", Type: NewBoolType(nil)},
			RecordField{Key: "a", Type: NewNilType(nil)},
		),
		`
        {
            "Type": "RecordType",
            "Fields": [
                {"Key": "b", "Type": {"Type": "BoolType"}},
                {"Key": "a", "Type": {"Type": "NilType"}}
            ]
        }
        `,
	)

	test(
		"optional",
		NewOptional(NewBoolType(nil), nil),
		`
        {
            "Type": "OptionalType",
            "ElementType": {"Type": "BoolType"}
        }
        `,
	)

	test(
		"union",
		NewUnion(
			[]Type{
				NewBoolType(nil),
				NewNilType(nil),
			},
			nil,
		),
		`
        {
            "Type": "UnionType",
            "Types": [
                {"Type": "BoolType"},
                {"Type": "NilType"}
            ]
        }
        `,
	)

	test(
		"string literal",
		NewLiteral(StringLiteral("on"), nil),
		`
        {
            "Type": "LiteralType",
            "Literal": {"Kind": "String", "Value": "on"}
        }
        `,
	)

	test(
		"integer literal",
		NewLiteral(IntLiteral(-3), nil),
		`
        {
            "Type": "LiteralType",
            "Literal": {"Kind": "Int", "Value": "-3"}
        }
        `,
	)

	test(
		"true literal",
		NewLiteral(TrueLiteral{}, nil),
		`
        {
            "Type": "LiteralType",
            "Literal": {"Kind": "True"}
        }
        `,
	)

	test(
		"proc",
		NewProc(
			EmptyFunction(NewVoidType(nil)),
			NewBlock(EmptyFunction(NewBoolType(nil)), true),
			nil,
		),
		`
        {
            "Type": "ProcType",
            "FunctionType": {
                "Type": "Function",
                "ReturnType": {"Type": "VoidType"}
            },
            "Block": {
                "Type": "Block",
                "FunctionType": {
                    "Type": "Function",
                    "ReturnType": {"Type": "BoolType"}
                },
                "Required": true
            }
        }
        `,
	)

	test(
		"function with parameters",
		procWithParameters(),
		`
        {
            "Type": "ProcType",
            "FunctionType": {
                "Type": "Function",
                "RequiredPositionals": [
                    {"Type": {"Type": "BoolType"}, "Name": "x"}
                ],
                "RequiredKeywords": [
                    {
                        "Name": "k",
                        "Param": {"Type": {"Type": "NilType"}}
                    }
                ],
                "ReturnType": {"Type": "VoidType"}
            }
        }
        `,
	)
}

// procWithParameters returns a proc used by the JSON tests,
// with one required positional and one required keyword.
func procWithParameters() Type {
	return NewProc(
		EmptyFunction(NewVoidType(nil)).Update(
			WithRequiredPositionals(NewParam(NewBoolType(nil), "x")),
			WithRequiredKeywords(NewKeywordParams(
				KeywordParam{Name: "k", Param: NewParam(NewNilType(nil), "")},
			)),
		),
		nil,
		nil,
	)
}

func TestDecodeType(t *testing.T) {

	t.Parallel()

	t.Run("round trips", func(t *testing.T) {
		t.Parallel()

		trees := []Type{
			NewBoolType(nil),
			NewAnyType(test_utils.TestLocation),
			NewVariable("Elem", nil),
			NewClassSingleton(accountTypeName(), nil),
			NewAlias(enumerableTypeName(), nil),
			NewInterface(
				enumerableTypeName(),
				[]Type{NewVariable("Elem", nil)},
				nil,
			),
			NewClassInstance(
				accountTypeName(),
				[]Type{NewAnyType(nil)},
				test_utils.TestLocation,
			),
			NewLiteral(StringLiteral("on"), nil),
			NewLiteral(IntLiteral(-42), nil),
			NewLiteral(SymbolLiteral("pending"), nil),
			NewLiteral(TrueLiteral{}, nil),
			NewLiteral(FalseLiteral{}, nil),
			NewTuple(
				[]Type{
					NewBoolType(nil),
					NewNilType(nil),
				},
				nil,
			),
			NewRecordWithFields(
				nil,
				RecordField{Key: "balance", Type: NewAnyType(nil)},
				RecordField{Key: "frozen", Type: NewBoolType(nil)},
			),
			NewOptional(
				NewUnion(
					[]Type{
						NewBoolType(nil),
						NewNilType(nil),
					},
					nil,
				),
				nil,
			),
			NewIntersection(
				[]Type{
					NewTopType(nil),
					NewSelfType(nil),
				},
				nil,
			),
			NewProc(
				EmptyFunction(NewVariable("Result", nil)).Update(
					WithRequiredPositionals(NewParam(NewBoolType(nil), "x")),
					WithOptionalPositionals(NewParam(NewNilType(nil), "")),
					WithRestPositionals(NewParam(NewAnyType(nil), "rest")),
					WithTrailingPositionals(NewParam(NewTopType(nil), "z")),
					WithRequiredKeywords(NewKeywordParams(
						KeywordParam{Name: "k", Param: NewParam(NewBoolType(nil), "")},
					)),
					WithOptionalKeywords(NewKeywordParams(
						KeywordParam{Name: "l", Param: NewParam(NewNilType(nil), "")},
					)),
					WithRestKeywords(NewParam(NewAnyType(nil), "")),
				),
				NewBlock(EmptyFunction(NewVoidType(nil)), false),
				nil,
			),
		}

		for _, tree := range trees {
			t.Run(tree.String(), func(t *testing.T) {
				t.Parallel()

				encoded, err := json.Marshal(tree)
				require.NoError(t, err)

				decoded, err := DecodeType(encoded)
				require.NoError(t, err)

				assert.True(t, tree.Equal(decoded))
				test_utils.AssertEqualWithDiff(t, tree, decoded)
			})
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeType([]byte(`{"Type": "MysteryType"}`))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeType([]byte(`{`))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("unknown literal kind", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeType([]byte(`
            {
                "Type": "LiteralType",
                "Literal": {"Kind": "Float", "Value": "1.5"}
            }
        `))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("duplicate record field", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeType([]byte(`
            {
                "Type": "RecordType",
                "Fields": [
                    {"Key": "a", "Type": {"Type": "BoolType"}},
                    {"Key": "a", "Type": {"Type": "NilType"}}
                ]
            }
        `))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}

func TestDecodeFunction(t *testing.T) {

	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		f := fullFunction()

		encoded, err := f.MarshalJSON()
		require.NoError(t, err)

		decoded, err := DecodeFunction(encoded)
		require.NoError(t, err)

		assert.True(t, f.Equal(decoded))
	})

	t.Run("wrong tag", func(t *testing.T) {
		t.Parallel()

		_, err := DecodeFunction([]byte(`{"Type": "BoolType"}`))
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}
