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
	"strings"

	"github.com/turbolent/prettier"

	"github.com/tern-lang/tern/common"
	"github.com/tern-lang/tern/common/orderedmap"
	"github.com/tern-lang/tern/errors"
)

// RecordFields is the field mapping of a record type,
// preserving field declaration order
type RecordFields = orderedmap.OrderedMap[Identifier, Type]

// RecordType represents a structural object type with a fixed
// set of uniquely named fields.
//
// Field order is preserved for rendering, but is not part of the
// type's identity: equality is mapping equality.
type RecordType struct {
	Fields *RecordFields
	Loc    *common.Location `json:"Location,omitempty"`
}

var _ Type = &RecordType{}

func NewRecord(fields *RecordFields, location *common.Location) *RecordType {
	return &RecordType{
		Fields: fields,
		Loc:    location,
	}
}

// RecordField is a single key-type pair,
// used by the convenience constructor NewRecordWithFields
type RecordField struct {
	Key  Identifier
	Type Type
}

func NewRecordWithFields(location *common.Location, fields ...RecordField) *RecordType {
	fieldMap := orderedmap.New[Identifier, Type](len(fields))
	for _, field := range fields {
		if _, present := fieldMap.Set(field.Key, field.Type); present {
			panic(errors.NewUnexpectedError(
				"duplicate record field: %s",
				field.Key,
			))
		}
	}
	return NewRecord(fieldMap, location)
}

func (*RecordType) isType() {}

func (*RecordType) precedence() precedence {
	return precedenceAtom
}

func (t *RecordType) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	i := 0
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(key))
		sb.WriteString(": ")
		sb.WriteString(fieldType.String())
		i++
	})
	sb.WriteByte('}')
	return sb.String()
}

var recordTypeSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (t *RecordType) Doc() prettier.Doc {
	if t.Fields.Len() == 0 {
		return prettier.Text("{}")
	}

	fieldDocs := make([]prettier.Doc, 0, t.Fields.Len())
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		fieldDocs = append(
			fieldDocs,
			prettier.Concat{
				prettier.Text(string(key)),
				prettier.Text(": "),
				fieldType.Doc(),
			},
		)
	})

	return prettier.WrapBraces(
		prettier.Join(recordTypeSeparatorDoc, fieldDocs...),
		prettier.SoftLine{},
	)
}

func (t *RecordType) Location() *common.Location {
	return t.Loc
}

func (t *RecordType) Equal(other Type) bool {
	otherRecord, ok := other.(*RecordType)
	if !ok {
		return false
	}

	if t.Fields.Len() != otherRecord.Fields.Len() {
		return false
	}

	equal := true
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		otherFieldType, present := otherRecord.Fields.Get(key)
		if !present || !fieldType.Equal(otherFieldType) {
			equal = false
		}
	})
	return equal
}

func (t *RecordType) FreeVariables(accumulator IdentifierSet) IdentifierSet {
	t.Fields.Foreach(func(_ Identifier, fieldType Type) {
		accumulator = fieldType.FreeVariables(accumulator)
	})
	return accumulator
}

func (t *RecordType) Substitute(sub Substitution) Type {
	fields := orderedmap.New[Identifier, Type](t.Fields.Len())
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		fields.Set(key, fieldType.Substitute(sub))
	})
	return NewRecord(fields, t.Loc)
}

func (t *RecordType) MapTypeName(rewrite TypeNameRewrite) Type {
	fields := orderedmap.New[Identifier, Type](t.Fields.Len())
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		fields.Set(key, fieldType.MapTypeName(rewrite))
	})
	return NewRecord(fields, t.Loc)
}

func (t *RecordType) EachType(yield func(Type) bool) {
	for _, pair := range t.Fields.Pairs() {
		if !yield(pair.Value) {
			return
		}
	}
}

// JSON struct definition for record fields,
// encoded as a pair list to preserve field order

type recordFieldObject struct {
	Key  Identifier
	Type Type
}

func (t *RecordType) MarshalJSON() ([]byte, error) {
	fields := make([]recordFieldObject, 0, t.Fields.Len())
	t.Fields.Foreach(func(key Identifier, fieldType Type) {
		fields = append(fields, recordFieldObject{
			Key:  key,
			Type: fieldType,
		})
	})

	return json.Marshal(&struct {
		Type     string
		Fields   []recordFieldObject
		Location *common.Location `json:",omitempty"`
	}{
		Type:     "RecordType",
		Fields:   fields,
		Location: t.Loc,
	})
}
