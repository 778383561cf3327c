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

// Identifier is a simple (unqualified) name:
// a type variable name, a record field key, or a keyword parameter name.
type Identifier string

func (i Identifier) String() string {
	return string(i)
}

// IdentifierSet is a set of identifiers
type IdentifierSet map[Identifier]struct{}

func NewIdentifierSet(identifiers ...Identifier) IdentifierSet {
	set := make(IdentifierSet, len(identifiers))
	for _, identifier := range identifiers {
		set.Add(identifier)
	}
	return set
}

func (s IdentifierSet) Add(identifier Identifier) {
	s[identifier] = struct{}{}
}

func (s IdentifierSet) Contains(identifier Identifier) bool {
	_, ok := s[identifier]
	return ok
}
