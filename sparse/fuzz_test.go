package sparse

import (
	"bytes"
	"errors"
	"testing"
)

// fuzzOp is one decoded operation of a random op sequence.
type fuzzOp struct {
	kind byte
	a    byte
	b    byte
	c    byte
}

func decodeFuzzOps(data []byte) []fuzzOp {
	var ops []fuzzOp
	for len(data) >= 4 && len(ops) < 64 {
		ops = append(ops, fuzzOp{kind: data[0] % 6, a: data[1], b: data[2], c: data[3]})
		data = data[4:]
	}
	return ops
}

// applyFuzzOp runs one op, ignoring rejected arguments; the engine's
// validation is part of what is being exercised. Returns a coarse result
// class so two runs can be compared.
func applyFuzzOp(b *Buffer, op fuzzOp) string {
	size := b.Size()
	switch op.kind {
	case 0: // load
		off := int64(op.a) % size
		n := int64(op.b)%16 + 1
		err := b.LoadRange(off, fill(int(n), op.c))
		return fuzzResult("load", err)
	case 1: // remove
		start := int64(op.a) % size
		end := start + int64(op.b)%8
		err := b.RemoveRange(start, end)
		return fuzzResult("remove", err)
	case 2: // seek
		_, err := b.Seek(int64(op.a), Whence(op.b%3))
		return fuzzResult("seek", err)
	case 3: // resize
		err := b.Resize(int64(op.a) + 1)
		return fuzzResult("resize", err)
	case 4: // clear
		b.Clear()
		return "clear"
	default: // read
		p := fill(int(op.a)%32+1, 0xFF)
		err := b.Read(p)
		return fuzzResult("read", err)
	}
}

func fuzzResult(op string, err error) string {
	switch {
	case err == nil:
		return op + ":ok"
	case errors.Is(err, ErrInvalidArgument):
		return op + ":invalid"
	case errors.Is(err, ErrOutOfBounds):
		return op + ":oob"
	default:
		return op + ":" + err.Error()
	}
}

func assertBufferInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	ranges := b.Ranges()
	for i, r := range ranges {
		if r.Len <= 0 {
			t.Fatalf("extent %d has non-positive length: %v", i, r)
		}
		if r.Off < 0 || r.End() > b.Size() {
			t.Fatalf("extent %d outside [0, %d): %v", i, b.Size(), r)
		}
		if i > 0 {
			prev := ranges[i-1]
			// Strict order with at least one byte of gap: touching
			// extents must have been merged on load.
			if prev.End() >= r.Off {
				t.Fatalf("extents %d and %d overlap or touch: %v, %v", i-1, i, prev, r)
			}
		}
	}
	if pos := b.Pos(); pos < 0 || pos > b.Size() {
		t.Fatalf("cursor %d outside [0, %d]", pos, b.Size())
	}
}

func snapshotFuzzState(t *testing.T, b *Buffer) []byte {
	t.Helper()
	return readAll(t, b)
}

func FuzzBuffer_RandomOpSequences(f *testing.F) {
	seeds := [][]byte{
		{},
		{0, 0, 4, 1},
		{0, 0, 4, 1, 0, 2, 4, 2},
		{0, 10, 7, 9, 1, 12, 3, 0},
		{3, 9, 0, 0, 0, 5, 5, 5, 3, 200, 0, 0},
		{2, 30, 2, 0, 5, 16, 0, 0},
		bytes.Repeat([]byte{0, 8, 15, 3, 1, 10, 4, 0}, 8),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		ops := decodeFuzzOps(data)

		b1 := mustNew(t, 64)
		b2 := mustNew(t, 64)

		for i, op := range ops {
			r1 := applyFuzzOp(b1, op)
			r2 := applyFuzzOp(b2, op)
			if r1 != r2 {
				t.Fatalf("op %d diverged between identical runs: %q vs %q", i, r1, r2)
			}
			assertBufferInvariants(t, b1)
		}

		if b1.Size() != b2.Size() || b1.Pos() != b2.Pos() {
			t.Fatalf("state mismatch: size %d/%d pos %d/%d", b1.Size(), b2.Size(), b1.Pos(), b2.Pos())
		}
		s1 := snapshotFuzzState(t, b1)
		s2 := snapshotFuzzState(t, b2)
		if !bytes.Equal(s1, s2) {
			t.Fatalf("content mismatch between identical runs:\n%v\n%v", s1, s2)
		}
	})
}
