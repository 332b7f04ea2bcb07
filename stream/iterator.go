// Package stream offers lazy, error-aware pull iterators over finite or
// infinite sources.
package stream

import "github.com/pkg/errors"

// ErrExhausted reports the normal end of a finite stream. Iterators over
// infinite sources never return it unless a combinator (such as Take) bounds
// them.
var ErrExhausted = errors.New("stream: exhausted")

// Iterator is a lazy, pull-based iterator. A non-nil error ends iteration:
// ErrExhausted for normal completion, anything else for a failed source.
type Iterator[T any] struct {
	next func() (T, error)
}

// Next yields the next value or the error that ended the stream.
func (it Iterator[T]) Next() (T, error) {
	if it.next == nil {
		var zero T
		return zero, ErrExhausted
	}
	return it.next()
}

// Generate adapts a pull function into an Iterator. The function is called
// once per Next and owns whatever state it needs.
func Generate[T any](fn func() (T, error)) Iterator[T] {
	return Iterator[T]{next: fn}
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, error) {
			if idx >= len(values) {
				var zero T
				return zero, ErrExhausted
			}
			v := values[idx]
			idx++
			return v, nil
		},
	}
}

// Map lazily transforms iterator values.
func Map[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, error) {
			v, err := it.Next()
			if err != nil {
				var zero B
				return zero, err
			}
			return fn(v), nil
		},
	}
}

// Filter keeps values satisfying predicate.
func Filter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, error) {
			for {
				v, err := it.Next()
				if err != nil {
					var zero T
					return zero, err
				}
				if predicate(v) {
					return v, nil
				}
			}
		},
	}
}

// Take returns an iterator that yields at most n elements, then ErrExhausted.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	count := 0
	return Iterator[T]{
		next: func() (T, error) {
			if count >= n {
				var zero T
				return zero, ErrExhausted
			}
			v, err := it.Next()
			if err != nil {
				var zero T
				return zero, err
			}
			count++
			return v, nil
		},
	}
}

// Drop skips the first n elements. An error raised while skipping is
// surfaced by the first Next call.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, error) {
			if !skipped {
				skipped = true
				for range n {
					if _, err := it.Next(); err != nil {
						var zero T
						return zero, err
					}
				}
			}
			return it.Next()
		},
	}
}

// Collect exhausts the iterator and gathers its values. ErrExhausted counts
// as success; any other error is returned along with the values pulled before
// it.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var result []T
	for {
		v, err := it.Next()
		if errors.Is(err, ErrExhausted) {
			if result == nil {
				return []T{}, nil
			}
			return result, nil
		}
		if err != nil {
			return result, err
		}
		result = append(result, v)
	}
}

// First pulls a single value from the iterator.
func First[T any](it Iterator[T]) (T, error) {
	return it.Next()
}
