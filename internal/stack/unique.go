// Package stack provides a stack that refuses to hold two items with the
// same key.
package stack

import "errors"

var ErrDuplicateItem = errors.New("item already exists")

type LookupItem interface {
	Key() string
}

type UniqueStack []LookupItem

// Push appends i unless an item with the same key is already present.
func (s *UniqueStack) Push(i LookupItem) error {
	if _, ok := s.Lookup(i.Key()); ok {
		return ErrDuplicateItem
	}
	*s = append(*s, i)
	return nil
}

// PushAll pushes every item in order, stopping at the first duplicate.
func (s *UniqueStack) PushAll(items ...LookupItem) error {
	for _, i := range items {
		if err := s.Push(i); err != nil {
			return err
		}
	}
	return nil
}

func (s UniqueStack) Len() int {
	return len(s)
}

// Lookup searches from the top of the stack down.
func (s UniqueStack) Lookup(key string) (LookupItem, bool) {
	for i := s.Len() - 1; i >= 0; i-- {
		if s[i].Key() == key {
			return s[i], true
		}
	}
	return nil, false
}
