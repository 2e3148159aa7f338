/*
 * Clock node
 * Copyright (C) 2026 Clock community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

// Package cdll implements a generic circular doubly linked list.
// It is the in-memory ordered container backing the alarm, stopwatch and
// timezone engines: every node links to both neighbors and the last node
// links back to the first, so the list can be navigated in both directions
// without ever running off an end.
package cdll

// Node is a single list cell. It holds one value and links to both neighbors.
// In a list with a single node, both links reference the node itself.
type Node[T any] struct {
	// Value is the payload carried by this node. The list never inspects it
	// except through caller-supplied equality, comparison and predicate funcs.
	Value T

	prev, next *Node[T]
}

// Next returns the next node, wrapping around to the head at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous node, wrapping around to the tail at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a circular doubly linked list. The head is the only distinguished
// node; the tail is always head.Prev(). A nil head means the list is empty.
//
// A List is not safe for concurrent use; owners serialize access.
type List[T any] struct {
	head *Node[T]
	eq   func(a, b T) bool
}

// New creates an empty list. Values are compared with eq, which should match
// on identifying fields (inserting equal values is allowed; deletion removes
// the first match walking forward from the head).
func New[T any](eq func(a, b T) bool) *List[T] {
	return &List[T]{eq: eq}
}

// IsEmpty returns true if the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the nodes by walking the list once.
func (l *List[T]) Len() int {
	if l.IsEmpty() {
		return 0
	}

	count := 1
	for current := l.head.next; current != l.head; current = current.next {
		count++
	}
	return count
}

// Head returns the head node, or nil if the list is empty.
// The tail is Head().Prev().
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// PushFront inserts a new node before the current head and makes it the head.
func (l *List[T]) PushFront(value T) {
	node := l.splice(value)
	l.head = node
}

// PushBack inserts a new node as the tail, leaving the head unchanged.
func (l *List[T]) PushBack(value T) {
	l.splice(value)
}

// splice links a new node between the current tail and head and returns it.
// On an empty list the node becomes the head, linked to itself.
func (l *List[T]) splice(value T) *Node[T] {
	node := &Node[T]{Value: value}

	if l.head == nil {
		node.next = node
		node.prev = node
		l.head = node
		return node
	}

	tail := l.head.prev
	node.next = l.head
	node.prev = tail
	l.head.prev = node
	tail.next = node
	return node
}

// InsertSorted inserts value so the list stays ordered ascending according to
// cmp. Equal keys are placed after all existing equal-or-smaller keys, so
// repeated insertion with the same cmp is stable.
func (l *List[T]) InsertSorted(value T, cmp func(a, b T) int) {
	if l.head == nil {
		l.splice(value)
		return
	}

	// new smallest key becomes the head
	if cmp(value, l.head.Value) < 0 {
		l.PushFront(value)
		return
	}

	current := l.head
	for {
		if current.next == l.head || cmp(current.next.Value, value) > 0 {
			node := &Node[T]{Value: value, prev: current, next: current.next}
			current.next.prev = node
			current.next = node
			return
		}
		current = current.next
	}
}

// Delete removes the first node whose value equals the given value.
// It returns false if no node matched after a full circuit.
func (l *List[T]) Delete(value T) bool {
	if l.IsEmpty() {
		return false
	}

	current := l.head
	for {
		if l.eq(current.Value, value) {
			l.unlink(current)
			return true
		}

		current = current.next
		if current == l.head {
			return false
		}
	}
}

func (l *List[T]) unlink(node *Node[T]) {
	if node.next == node {
		// only node in the list
		l.head = nil
		return
	}
	if node == l.head {
		l.head = node.next
	}
	node.prev.next = node.next
	node.next.prev = node.prev
}

// DeleteFunc removes every node whose value matches the predicate and returns
// the number of removed nodes. It collects matches in a first pass and deletes
// in a second, so the walk never observes its own mutations.
func (l *List[T]) DeleteFunc(predicate func(T) bool) int {
	matches := l.FindAll(predicate)

	deleted := 0
	for _, value := range matches {
		if l.Delete(value) {
			deleted++
		}
	}
	return deleted
}

// Clear drops all nodes at once.
func (l *List[T]) Clear() {
	l.head = nil
}

// Search returns the first node whose value equals the given value, or nil.
func (l *List[T]) Search(value T) *Node[T] {
	return l.Find(func(candidate T) bool {
		return l.eq(candidate, value)
	})
}

// Find returns the first node matching the predicate, or nil.
func (l *List[T]) Find(predicate func(T) bool) *Node[T] {
	if l.IsEmpty() {
		return nil
	}

	current := l.head
	for {
		if predicate(current.Value) {
			return current
		}

		current = current.next
		if current == l.head {
			return nil
		}
	}
}

// FindAll returns the values of all nodes matching the predicate, in list order.
func (l *List[T]) FindAll(predicate func(T) bool) []T {
	result := []T{}
	if l.IsEmpty() {
		return result
	}

	current := l.head
	for {
		if predicate(current.Value) {
			result = append(result, current.Value)
		}

		current = current.next
		if current == l.head {
			return result
		}
	}
}

// Next returns the value following the node that equals the given value,
// wrapping around to the head at the tail. The second return is false when
// the value is not present.
func (l *List[T]) Next(value T) (T, bool) {
	node := l.Search(value)
	if node == nil {
		var zero T
		return zero, false
	}
	return node.next.Value, true
}

// Prev returns the value preceding the node that equals the given value,
// wrapping around to the tail at the head. The second return is false when
// the value is not present.
func (l *List[T]) Prev(value T) (T, bool) {
	node := l.Search(value)
	if node == nil {
		var zero T
		return zero, false
	}
	return node.prev.Value, true
}

// All returns all values in list order, head first.
func (l *List[T]) All() []T {
	result := []T{}
	if l.IsEmpty() {
		return result
	}

	current := l.head
	for {
		result = append(result, current.Value)
		current = current.next
		if current == l.head {
			return result
		}
	}
}

// AllReverse returns all values in reverse list order, tail first.
func (l *List[T]) AllReverse() []T {
	result := []T{}
	if l.IsEmpty() {
		return result
	}

	tail := l.head.prev
	current := tail
	for {
		result = append(result, current.Value)
		current = current.prev
		if current == tail {
			return result
		}
	}
}
