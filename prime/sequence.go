// Package prime produces prime numbers in strictly increasing order via
// incremental trial division against previously discovered primes.
package prime

import (
	"github.com/pkg/errors"

	"github.com/charmingruby/primegen/internal/checked"
	"github.com/charmingruby/primegen/stream"
)

// ErrOverflow reports that advancing the candidate cursor would wrap uint64.
// A sequence that returned it is permanently failed; it never wraps silently.
var ErrOverflow = errors.New("prime: candidate cursor overflows uint64")

// Sequence is a stateful generator of primes. Each call to Next produces the
// next prime in increasing order, growing an internal record of every prime
// discovered so far; later candidates are trial-divided only against recorded
// primes up to their square root, so the record is never recomputed.
//
// A Sequence is owned by a single caller and is not safe for concurrent use
// without external synchronization.
type Sequence struct {
	known     []uint64
	candidate uint64
	emitted   int
	err       error
}

// New returns a sequence positioned before the first prime. The record is
// seeded with 2 and the odd-candidate cursor with 3.
func New() *Sequence {
	return &Sequence{
		known:     []uint64{2},
		candidate: 3,
	}
}

// Next finds, records and returns the next prime. The n-th call (1-indexed)
// returns the n-th prime: 2, 3, 5, 7, 11, and so on. Once Next has returned
// an error, every later call returns the same error.
func (s *Sequence) Next() (uint64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.emitted < len(s.known) {
		p := s.known[s.emitted]
		s.emitted++
		return p, nil
	}
	for {
		c := s.candidate
		if next, ok := checked.Add(c, 2); ok {
			s.candidate = next
		} else {
			s.err = errors.Wrapf(ErrOverflow, "advancing past candidate %d", c)
		}
		if s.composite(c) {
			if s.err != nil {
				return 0, s.err
			}
			continue
		}
		s.known = append(s.known, c)
		s.emitted++
		return c, nil
	}
}

// composite trial-divides c by recorded primes no greater than its square
// root. Correct only while every prime below c is already recorded, which
// Next maintains by testing candidates in increasing order.
func (s *Sequence) composite(c uint64) bool {
	for _, p := range s.known {
		sq, ok := checked.Mul(p, p)
		if !ok || sq > c {
			return false
		}
		if c%p == 0 {
			return true
		}
	}
	return false
}

// Skip consumes and discards the next n primes.
func (s *Sequence) Skip(n uint64) error {
	for range n {
		if _, err := s.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Nth consumes the sequence up to the n-th prime (1-indexed) and returns it.
func (s *Sequence) Nth(n uint64) (uint64, error) {
	if n == 0 {
		return 0, errors.New("prime: ordinal is 1-indexed")
	}
	if err := s.Skip(n - 1); err != nil {
		return 0, err
	}
	return s.Next()
}

// Produced reports how many primes the sequence has handed out so far.
func (s *Sequence) Produced() int {
	return s.emitted
}

// Known returns a copy of every prime discovered so far, in increasing
// order. The copy keeps the internal record under the sequence's exclusive
// ownership.
func (s *Sequence) Known() []uint64 {
	out := make([]uint64, len(s.known))
	copy(out, s.known)
	return out
}

// Stream exposes the sequence as a lazy pull iterator. The iterator shares
// the sequence's state: pulling from it advances the sequence.
func (s *Sequence) Stream() stream.Iterator[uint64] {
	return stream.Generate(s.Next)
}
