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

package common

import "strings"

// Namespace is a canonical `::`-separated module path, e.g. `::Collections::`.
// The root namespace is `::`, and the empty namespace is relative to
// the enclosing context.
type Namespace string

const (
	EmptyNamespace Namespace = ""
	RootNamespace  Namespace = "::"
)

// NewNamespace returns the absolute namespace for the given path components.
func NewNamespace(components ...string) Namespace {
	if len(components) == 0 {
		return RootNamespace
	}
	var sb strings.Builder
	sb.WriteString("::")
	for _, component := range components {
		sb.WriteString(component)
		sb.WriteString("::")
	}
	return Namespace(sb.String())
}

func (namespace Namespace) IsEmpty() bool {
	return namespace == EmptyNamespace
}

func (namespace Namespace) String() string {
	return string(namespace)
}

// TypeName is the qualified name of a class, interface, or type alias:
// a namespace path plus a simple name.
//
// TypeName values are resolved elsewhere; this package only needs them
// to be comparable and renderable.
type TypeName struct {
	Namespace Namespace
	Name      string
}

func NewTypeName(namespace Namespace, name string) TypeName {
	return TypeName{
		Namespace: namespace,
		Name:      name,
	}
}

func (name TypeName) Equal(other TypeName) bool {
	return name == other
}

func (name TypeName) String() string {
	return string(name.Namespace) + name.Name
}
