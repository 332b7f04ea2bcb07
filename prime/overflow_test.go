package prime

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

// The overflow paths are unreachable by honest iteration, so these tests
// place the cursor at the top of uint64 directly. The fabricated records
// only need to steer the divisibility check; they are not full prime tables.

func TestOverflowAfterFinalCandidate(t *testing.T) {
	// The record holds only 2, so the odd final candidate passes trial
	// division and is returned; the failed cursor bump must poison every
	// later call.
	s := &Sequence{known: []uint64{2}, candidate: math.MaxUint64, emitted: 1}

	got, err := s.Next()
	if err != nil {
		t.Fatalf("Next on final candidate: %v", err)
	}
	if got != math.MaxUint64 {
		t.Fatalf("Next = %d, want %d", got, uint64(math.MaxUint64))
	}

	for i := 0; i < 3; i++ {
		if _, err := s.Next(); !errors.Is(err, ErrOverflow) {
			t.Fatalf("Next after exhaustion: err = %v, want ErrOverflow", err)
		}
	}
}

func TestOverflowOnCompositeFinalCandidate(t *testing.T) {
	// 2^64-1 is divisible by 3, so with 3 recorded the final candidate is
	// rejected and there is nothing left to produce.
	s := &Sequence{known: []uint64{2, 3}, candidate: math.MaxUint64, emitted: 2}

	if _, err := s.Next(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Next: err = %v, want ErrOverflow", err)
	}
}

func TestSkipSurfacesOverflow(t *testing.T) {
	s := &Sequence{known: []uint64{2, 3}, candidate: math.MaxUint64, emitted: 2}

	if err := s.Skip(5); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Skip: err = %v, want ErrOverflow", err)
	}
}
