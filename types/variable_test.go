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
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVariables(t *testing.T) {

	t.Parallel()

	variables := NewVariables("Key", "Value")

	require.Len(t, variables, 2)
	assert.Equal(t, Identifier("Key"), variables[0].Name)
	assert.Equal(t, Identifier("Value"), variables[1].Name)
	assert.Nil(t, variables[0].Location())
}

func TestVariableGeneratorFresh(t *testing.T) {

	t.Parallel()

	t.Run("uniqueness", func(t *testing.T) {
		t.Parallel()

		generator := NewVariableGenerator()

		const count = 10_000

		seen := make(map[Identifier]struct{}, count)
		for range count {
			variable := generator.Fresh("")
			_, duplicate := seen[variable.Name]
			require.False(t, duplicate, "duplicate fresh name: %s", variable.Name)
			seen[variable.Name] = struct{}{}
		}

		assert.Len(t, seen, count)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		generator := NewVariableGenerator()

		assert.True(t,
			strings.HasPrefix(
				string(generator.Fresh("Elem").Name),
				"Elem@",
			),
		)
		assert.True(t,
			strings.HasPrefix(
				string(generator.Fresh("").Name),
				DefaultFreshVariablePrefix+"@",
			),
		)
	})

	t.Run("concurrent callers never collide", func(t *testing.T) {
		t.Parallel()

		generator := NewVariableGenerator()

		const workers = 4
		const perWorker = 1000

		results := make([][]Identifier, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				names := make([]Identifier, 0, perWorker)
				for range perWorker {
					names = append(names, generator.Fresh("").Name)
				}
				results[i] = names
			}()
		}
		wg.Wait()

		seen := make(map[Identifier]struct{}, workers*perWorker)
		for _, names := range results {
			for _, name := range names {
				_, duplicate := seen[name]
				require.False(t, duplicate, "duplicate fresh name: %s", name)
				seen[name] = struct{}{}
			}
		}

		assert.Len(t, seen, workers*perWorker)
	})

	t.Run("independent generators are independent", func(t *testing.T) {
		t.Parallel()

		first := NewVariableGenerator()
		second := NewVariableGenerator()

		assert.Equal(t, first.Fresh("").Name, second.Fresh("").Name)
	})
}

func TestFreshVariable(t *testing.T) {

	t.Parallel()

	first := FreshVariable("")
	second := FreshVariable("")

	assert.NotEqual(t, first.Name, second.Name)
}
