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

// MapSubstitution is a Substitution backed by a plain map,
// optionally carrying a current instance type.
//
// The zero value is the identity substitution.
type MapSubstitution struct {
	replacements map[Identifier]Type
	instanceType Type
}

var _ Substitution = &MapSubstitution{}

func NewSubstitution(replacements map[Identifier]Type) *MapSubstitution {
	return &MapSubstitution{
		replacements: replacements,
	}
}

// NewIdentitySubstitution returns a substitution which resolves nothing:
// applying it returns a structurally equal tree.
func NewIdentitySubstitution() *MapSubstitution {
	return NewSubstitution(nil)
}

// WithInstanceType returns a copy of the substitution which additionally
// rewrites the `instance` placeholder to the given type.
func (s *MapSubstitution) WithInstanceType(instanceType Type) *MapSubstitution {
	return &MapSubstitution{
		replacements: s.replacements,
		instanceType: instanceType,
	}
}

func (s *MapSubstitution) Lookup(name Identifier) (Type, bool) {
	replacement, ok := s.replacements[name]
	return replacement, ok
}

func (s *MapSubstitution) InstanceType() Type {
	return s.instanceType
}
