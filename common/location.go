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

import "fmt"

// Position defines a row/column position within a source file,
// including the byte offset
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

func NewPosition(offset, line, column int) Position {
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

// Location is the source span a type expression was parsed from.
//
// Locations are metadata only: types constructed programmatically have none,
// and no semantic operation (equality, hashing, substitution) considers them.
type Location struct {
	StartPos Position
	EndPos   Position
}

func NewLocation(startPos, endPos Position) *Location {
	return &Location{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func (location *Location) StartPosition() Position {
	return location.StartPos
}

func (location *Location) EndPosition() Position {
	return location.EndPos
}

func (location *Location) String() string {
	return fmt.Sprintf(
		"%s-%s",
		location.StartPos,
		location.EndPos,
	)
}
