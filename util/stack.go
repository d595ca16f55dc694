package util

import "github.com/samber/mo"

// Stack is a LIFO of screens or any other values. The zero value is empty.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item. It is absent when the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	top := s.Peek()
	if top.IsPresent() {
		s.items = s.items[:len(s.items)-1]
	}
	return top
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}
