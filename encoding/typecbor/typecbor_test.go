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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/errors"
	"github.com/tern-lang/tern/test_utils"
	"github.com/tern-lang/tern/types"
)

func accountTypeName() common.TypeName {
	return common.NewTypeName(
		common.NewNamespace("Banking"),
		"Account",
	)
}

func representativeTypes() []types.Type {
	return []types.Type{
		types.NewBoolType(nil),
		types.NewVoidType(nil),
		types.NewAnyType(nil),
		types.NewNilType(nil),
		types.NewTopType(nil),
		types.NewBottomType(nil),
		types.NewSelfType(nil),
		types.NewInstanceType(nil),
		types.NewClassType(nil),
		types.NewVariable("Elem", nil),
		types.NewClassSingleton(accountTypeName(), nil),
		types.NewAlias(
			common.NewTypeName(common.RootNamespace, "Enumerable"),
			nil,
		),
		types.NewInterface(
			common.NewTypeName(common.RootNamespace, "Enumerable"),
			[]types.Type{types.NewVariable("Elem", nil)},
			nil,
		),
		types.NewClassInstance(
			accountTypeName(),
			[]types.Type{types.NewAnyType(nil)},
			nil,
		),
		types.NewLiteral(types.StringLiteral("on"), nil),
		types.NewLiteral(types.IntLiteral(-42), nil),
		types.NewLiteral(types.SymbolLiteral("pending"), nil),
		types.NewLiteral(types.TrueLiteral{}, nil),
		types.NewLiteral(types.FalseLiteral{}, nil),
		types.NewTuple(
			[]types.Type{
				types.NewBoolType(nil),
				types.NewNilType(nil),
			},
			nil,
		),
		types.NewRecordWithFields(
			nil,
			types.RecordField{Key: "balance", Type: types.NewAnyType(nil)},
			types.RecordField{Key: "frozen", Type: types.NewBoolType(nil)},
		),
		types.NewOptional(
			types.NewUnion(
				[]types.Type{
					types.NewBoolType(nil),
					types.NewNilType(nil),
				},
				nil,
			),
			nil,
		),
		types.NewIntersection(
			[]types.Type{
				types.NewTopType(nil),
				types.NewSelfType(nil),
			},
			nil,
		),
		types.NewProc(
			types.EmptyFunction(types.NewVariable("Result", nil)).Update(
				types.WithRequiredPositionals(
					types.NewParam(types.NewBoolType(nil), "x"),
				),
				types.WithOptionalPositionals(
					types.NewParam(types.NewNilType(nil), ""),
				),
				types.WithRestPositionals(
					types.NewParam(types.NewAnyType(nil), "rest"),
				),
				types.WithTrailingPositionals(
					types.NewParam(types.NewTopType(nil), "z"),
				),
				types.WithRequiredKeywords(types.NewKeywordParams(
					types.KeywordParam{
						Name:  "k",
						Param: types.NewParam(types.NewBoolType(nil), ""),
					},
				)),
				types.WithOptionalKeywords(types.NewKeywordParams(
					types.KeywordParam{
						Name:  "l",
						Param: types.NewParam(types.NewNilType(nil), ""),
					},
				)),
				types.WithRestKeywords(
					types.NewParam(types.NewAnyType(nil), ""),
				),
			),
			types.NewBlock(
				types.EmptyFunction(types.NewVoidType(nil)),
				false,
			),
			nil,
		),
		types.NewProc(
			types.EmptyFunction(types.NewBoolType(nil)),
			types.NewBlock(
				types.EmptyFunction(types.NewVoidType(nil)).Update(
					types.WithRequiredPositionals(
						types.NewParam(types.NewAnyType(nil), ""),
					),
				),
				true,
			),
			nil,
		),
	}
}

func TestRoundTrip(t *testing.T) {

	t.Parallel()

	for _, tree := range representativeTypes() {
		t.Run(tree.String(), func(t *testing.T) {
			t.Parallel()

			encoded, err := Encode(tree)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)

			assert.True(t, tree.Equal(decoded), "decoded to %s", decoded)
		})
	}
}

func TestEncodeDeterminism(t *testing.T) {

	t.Parallel()

	t.Run("repeated encoding is stable", func(t *testing.T) {
		t.Parallel()

		tree := types.NewOptional(
			types.NewUnion(
				[]types.Type{
					types.NewBoolType(nil),
					types.NewNilType(nil),
				},
				nil,
			),
			nil,
		)

		first := MustEncode(tree)
		second := MustEncode(tree)

		assert.Equal(t, first, second)
	})

	t.Run("locations do not affect the encoding", func(t *testing.T) {
		t.Parallel()

		without := types.NewVariable("Elem", nil)
		with := types.NewVariable("Elem", test_utils.TestLocation)

		assert.Equal(t, MustEncode(without), MustEncode(with))
	})

	t.Run("record field order does not affect the encoding", func(t *testing.T) {
		t.Parallel()

		first := types.NewRecordWithFields(
			nil,
			types.RecordField{Key: "balance", Type: types.NewAnyType(nil)},
			types.RecordField{Key: "frozen", Type: types.NewBoolType(nil)},
		)
		second := types.NewRecordWithFields(
			nil,
			types.RecordField{Key: "frozen", Type: types.NewBoolType(nil)},
			types.RecordField{Key: "balance", Type: types.NewAnyType(nil)},
		)

		require.True(t, first.Equal(second))
		assert.Equal(t, MustEncode(first), MustEncode(second))
	})

	t.Run("keyword order does not affect the encoding", func(t *testing.T) {
		t.Parallel()

		keywordProc := func(keywords ...types.KeywordParam) types.Type {
			return types.NewProc(
				types.EmptyFunction(types.NewVoidType(nil)).Update(
					types.WithRequiredKeywords(
						types.NewKeywordParams(keywords...),
					),
				),
				nil,
				nil,
			)
		}

		first := keywordProc(
			types.KeywordParam{
				Name:  "k",
				Param: types.NewParam(types.NewBoolType(nil), ""),
			},
			types.KeywordParam{
				Name:  "l",
				Param: types.NewParam(types.NewNilType(nil), ""),
			},
		)
		second := keywordProc(
			types.KeywordParam{
				Name:  "l",
				Param: types.NewParam(types.NewNilType(nil), ""),
			},
			types.KeywordParam{
				Name:  "k",
				Param: types.NewParam(types.NewBoolType(nil), ""),
			},
		)

		require.True(t, first.Equal(second))
		assert.Equal(t, MustEncode(first), MustEncode(second))
	})
}

func TestEncodeFunction(t *testing.T) {

	t.Parallel()

	f := types.EmptyFunction(types.NewBoolType(nil)).Update(
		types.WithRequiredPositionals(
			types.NewParam(types.NewAnyType(nil), "value"),
		),
	)

	encoded, err := EncodeFunction(f)
	require.NoError(t, err)

	decoded, err := DecodeFunction(encoded)
	require.NoError(t, err)

	assert.True(t, f.Equal(decoded))
}

func TestDecodeErrors(t *testing.T) {

	t.Parallel()

	t.Run("garbage input", func(t *testing.T) {
		t.Parallel()

		_, err := Decode([]byte{0xff, 0x00})
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		encoded, err := encMode.Marshal([]any{uint64(99)})
		require.NoError(t, err)

		_, err = Decode(encoded)
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("non-array payload", func(t *testing.T) {
		t.Parallel()

		encoded, err := encMode.Marshal("not a type")
		require.NoError(t, err)

		_, err = Decode(encoded)
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("integer literal out of range", func(t *testing.T) {
		t.Parallel()

		encoded, err := encMode.Marshal([]any{
			kindLiteral,
			literalKindInt,
			uint64(math.MaxInt64) + 1,
		})
		require.NoError(t, err)

		_, err = Decode(encoded)
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})
}
