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
 *
 * Based on https://github.com/wk8/go-ordered-map, Copyright Jean Rougé
 */

package orderedmap

// OrderedMap is a map which preserves key insertion order.
//
// It is built once and then only read, so it is backed by a pair slice
// plus a key index instead of a linked list.
type OrderedMap[K comparable, V any] struct {
	pairs []*Pair[K, V]
	index map[K]int
}

// New returns a new OrderedMap with the given size hint.
func New[K comparable, V any](size int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		pairs: make([]*Pair[K, V], 0, size),
		index: make(map[K]int, size),
	}
}

func (om *OrderedMap[K, V]) ensureInitialized() {
	if om.index != nil {
		return
	}
	om.index = make(map[K]int)
}

// Get returns the value associated with the given key.
// The second return value indicates if the key is present in the map.
func (om *OrderedMap[K, V]) Get(key K) (result V, present bool) {
	if om == nil || om.index == nil {
		return
	}

	var i int
	if i, present = om.index[key]; present {
		return om.pairs[i].Value, present
	}
	return
}

// Contains returns true if the key is present in the map
// and false otherwise.
func (om *OrderedMap[K, V]) Contains(key K) (present bool) {
	if om == nil || om.index == nil {
		return
	}

	_, present = om.index[key]
	return
}

// Set sets the key-value pair, and returns what `Get` would have returned
// on that key prior to the call to `Set`.
func (om *OrderedMap[K, V]) Set(key K, value V) (oldValue V, present bool) {
	om.ensureInitialized()

	var i int
	if i, present = om.index[key]; present {
		oldValue = om.pairs[i].Value
		om.pairs[i].Value = value
		return
	}

	om.index[key] = len(om.pairs)
	om.pairs = append(om.pairs, &Pair[K, V]{
		Key:   key,
		Value: value,
	})

	return
}

// Len returns the length of the ordered map.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.pairs)
}

// Pairs returns the key-value pairs of the map, in insertion order.
// The returned slice must not be modified.
func (om *OrderedMap[K, V]) Pairs() []*Pair[K, V] {
	if om == nil {
		return nil
	}
	return om.pairs
}

// Foreach iterates over the entries of the map in the insertion order, and invokes
// the provided function for each key-value pair.
func (om *OrderedMap[K, V]) Foreach(f func(key K, value V)) {
	if om == nil {
		return
	}

	for _, pair := range om.pairs {
		f(pair.Key, pair.Value)
	}
}

// ForeachWithError iterates over the entries of the map in the insertion order,
// and invokes the provided function for each key-value pair.
// If the passed function returns an error, iteration breaks and the error is returned.
func (om *OrderedMap[K, V]) ForeachWithError(f func(key K, value V) error) error {
	if om == nil {
		return nil
	}

	for _, pair := range om.pairs {
		err := f(pair.Key, pair.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

// Pair is an entry in an OrderedMap
type Pair[K any, V any] struct {
	Key   K
	Value V
}
