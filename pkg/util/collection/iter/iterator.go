// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package iter

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Iterator is an Enumerator which can additionally be cloned, meaning a
// sequence can be restarted (or revisited) from any cursor position.
type Iterator[T any] interface {
	Enumerator[T]

	// Clone creates a copy of this iterator at the given cursor position.
	// Modifying the clone (i.e. by calling Next) iterator will not modify the
	// original.
	Clone() Iterator[T]

	// Collect allocates a new array containing all items of this iterator.
	// This drains the iterator.
	Collect() []T
}

// ===============================================================
// Default implementations
// ===============================================================

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.  This drains the enumerator up to (and
// including) the matching item.
func Find[T any, S Enumerator[T]](iter S, predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for iter.HasNext() {
		if predicate(iter.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// All checks whether every remaining item satisfies a given predicate.  This
// drains the enumerator up to the first failing item.
func All[T any, S Enumerator[T]](iter S, predicate Predicate[T]) bool {
	_, found := Find(iter, func(item T) bool { return !predicate(item) })
	//
	return !found
}

// Nth returns the nth remaining item, panicking if there are insufficient
// items.  This drains the enumerator up to (and including) that item.
func Nth[T any, S Enumerator[T]](iter S, n uint) T {
	index := uint(0)

	for iter.HasNext() {
		ith := iter.Next()
		if index == n {
			return ith
		}

		index++
	}
	// Issue!
	panic("iterator out-of-bounds")
}

// Count the number of items remaining.  This drains the enumerator.
func Count[T any, S Enumerator[T]](iter S) uint {
	count := uint(0)

	for iter.HasNext() {
		iter.Next()
		//
		count++
	}

	return count
}

// Collect provides a default implementation of Iterator.Collect which can be used by
// items.  This drains the enumerator up to (and including) that item.
func Collect[T any, S Enumerator[T]](iter S) []T {
	var items []T = make([]T, 0)
	//
	for iter.HasNext() {
		items = append(items, iter.Next())
	}
	//
	return items
}
