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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	t.Run("unexpected error", func(t *testing.T) {
		t.Parallel()

		err := NewUnexpectedError("something broke: %d", 42)
		assert.True(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
		assert.Equal(t, "something broke: 42", err.Error())
	})

	t.Run("unreachable error", func(t *testing.T) {
		t.Parallel()

		err := NewUnreachableError()
		assert.True(t, IsInternalError(err))
		assert.Contains(t, err.Error(), "unreachable")
		assert.NotEmpty(t, err.Stack)
	})

	t.Run("wrapped in the chain", func(t *testing.T) {
		t.Parallel()

		inner := NewUnexpectedError("inner")
		wrapped := fmt.Errorf("outer: %w", inner)

		assert.True(t, IsInternalError(wrapped))
		assert.False(t, IsUserError(wrapped))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("plain")
		assert.False(t, IsInternalError(err))
		assert.False(t, IsUserError(err))
	})
}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	t.Run("default user error", func(t *testing.T) {
		t.Parallel()

		err := NewDefaultUserError("bad input: %q", "x")
		assert.True(t, IsUserError(err))
		assert.False(t, IsInternalError(err))
		assert.Equal(t, `bad input: "x"`, err.Error())
	})

	t.Run("wrapped in the chain", func(t *testing.T) {
		t.Parallel()

		inner := NewDefaultUserError("inner")
		wrapped := fmt.Errorf("outer: %w", inner)

		assert.True(t, IsUserError(wrapped))
	})
}
