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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tern-lang/tern/test_utils"
)

func TestHash(t *testing.T) {

	t.Parallel()

	t.Run("equal types hash equal", func(t *testing.T) {
		t.Parallel()

		pairs := [][2]Type{
			{
				NewBoolType(nil),
				NewBoolType(test_utils.TestLocation),
			},
			{
				NewVariable("Elem", nil),
				NewVariable("Elem", test_utils.TestLocation),
			},
			{
				NewInterface(
					enumerableTypeName(),
					[]Type{NewVariable("Elem", nil)},
					nil,
				),
				NewInterface(
					enumerableTypeName(),
					[]Type{NewVariable("Elem", test_utils.TestLocation)},
					test_utils.TestLocation,
				),
			},
			{
				NewOptional(NewBoolType(nil), nil),
				NewOptional(NewBoolType(test_utils.TestLocation), nil),
			},
		}

		for _, pair := range pairs {
			assert.True(t, pair[0].Equal(pair[1]))
			assert.Equal(t,
				Hash(pair[0]),
				Hash(pair[1]),
				"hash mismatch for %s",
				pair[0],
			)
		}
	})

	t.Run("record field order does not affect the hash", func(t *testing.T) {
		t.Parallel()

		ab := NewRecordWithFields(
			nil,
			RecordField{Key: "a", Type: NewBoolType(nil)},
			RecordField{Key: "b", Type: NewNilType(nil)},
		)
		ba := NewRecordWithFields(
			nil,
			RecordField{Key: "b", Type: NewNilType(nil)},
			RecordField{Key: "a", Type: NewBoolType(nil)},
		)

		assert.True(t, ab.Equal(ba))
		assert.Equal(t, Hash(ab), Hash(ba))
	})

	t.Run("distinct types hash differently", func(t *testing.T) {
		t.Parallel()

		distinct := []Type{
			NewBoolType(nil),
			NewVoidType(nil),
			NewNilType(nil),
			NewVariable("Elem", nil),
			NewVariable("Other", nil),
			NewLiteral(TrueLiteral{}, nil),
			NewLiteral(FalseLiteral{}, nil),
			NewLiteral(StringLiteral("true"), nil),
			NewUnion(
				[]Type{
					NewBoolType(nil),
					NewNilType(nil),
				},
				nil,
			),
			NewUnion(
				[]Type{
					NewNilType(nil),
					NewBoolType(nil),
				},
				nil,
			),
			NewTuple(
				[]Type{
					NewBoolType(nil),
					NewNilType(nil),
				},
				nil,
			),
		}

		seen := make(map[uint64]Type, len(distinct))
		for _, ty := range distinct {
			h := Hash(ty)
			if previous, ok := seen[h]; ok {
				t.Errorf("hash collision between %s and %s", previous, ty)
			}
			seen[h] = ty
		}
	})
}

func TestHashFunction(t *testing.T) {

	t.Parallel()

	t.Run("keyword declaration order does not affect the hash", func(t *testing.T) {
		t.Parallel()

		kl := EmptyFunction(NewVoidType(nil)).Update(
			WithRequiredKeywords(NewKeywordParams(
				KeywordParam{Name: "k", Param: NewParam(NewBoolType(nil), "")},
				KeywordParam{Name: "l", Param: NewParam(NewNilType(nil), "")},
			)),
		)
		lk := EmptyFunction(NewVoidType(nil)).Update(
			WithRequiredKeywords(NewKeywordParams(
				KeywordParam{Name: "l", Param: NewParam(NewNilType(nil), "")},
				KeywordParam{Name: "k", Param: NewParam(NewBoolType(nil), "")},
			)),
		)

		assert.True(t, kl.Equal(lk))
		assert.Equal(t, HashFunction(kl), HashFunction(lk))
	})

	t.Run("rest parameter presence affects the hash", func(t *testing.T) {
		t.Parallel()

		without := EmptyFunction(NewVoidType(nil))
		with := without.Update(
			WithRestPositionals(NewParam(NewAnyType(nil), "")),
		)

		assert.NotEqual(t, HashFunction(without), HashFunction(with))
	})

	t.Run("consistent with proc hashing", func(t *testing.T) {
		t.Parallel()

		signature := fullFunction()

		first := NewProc(
			signature,
			NewBlock(EmptyFunction(NewBoolType(nil)), true),
			nil,
		)
		second := NewProc(
			signature,
			NewBlock(EmptyFunction(NewBoolType(nil)), true),
			test_utils.TestLocation,
		)

		assert.True(t, first.Equal(second))
		assert.Equal(t, Hash(first), Hash(second))
	})
}
