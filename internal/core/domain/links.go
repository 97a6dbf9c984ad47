// Package domain contains the core domain models for linking local packages into projects.
package domain

import "iter"

// Links is an insertion-ordered association of a project path to the project paths
// linked to it. It is used both for the target→sources mapping supplied by callers
// and for the derived source→targets mapping.
type Links struct {
	keys   []InternedString
	values map[InternedString][]InternedString
}

// NewLinks creates an empty Links.
func NewLinks() *Links {
	return &Links{
		values: make(map[InternedString][]InternedString),
	}
}

// Add appends values to the list stored under key, creating the key if needed.
// Duplicate values are kept.
func (l *Links) Add(key string, values ...string) {
	k := l.ensure(key)
	l.values[k] = append(l.values[k], NewInternedStrings(values)...)
}

// AddUnique appends value to the list stored under key unless it is already present.
// It reports whether the value was appended.
func (l *Links) AddUnique(key, value string) bool {
	k := l.ensure(key)
	v := NewInternedString(value)
	for _, existing := range l.values[k] {
		if existing == v {
			return false
		}
	}
	l.values[k] = append(l.values[k], v)
	return true
}

func (l *Links) ensure(key string) InternedString {
	k := NewInternedString(key)
	if _, ok := l.values[k]; !ok {
		l.keys = append(l.keys, k)
		l.values[k] = nil
	}
	return k
}

// Get returns a copy of the values stored under key, or nil if the key is absent.
func (l *Links) Get(key string) []string {
	vals, ok := l.values[NewInternedString(key)]
	if !ok {
		return nil
	}
	return toStrings(vals)
}

// Has reports whether key is present.
func (l *Links) Has(key string) bool {
	_, ok := l.values[NewInternedString(key)]
	return ok
}

// Keys returns the keys in insertion order.
func (l *Links) Keys() []string {
	return toStrings(l.keys)
}

// Len returns the number of keys.
func (l *Links) Len() int {
	return len(l.keys)
}

// All iterates over keys and their values in insertion order.
func (l *Links) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range l.keys {
			if !yield(k.String(), toStrings(l.values[k])) {
				return
			}
		}
	}
}

func toStrings(in []InternedString) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.String()
	}
	return out
}
