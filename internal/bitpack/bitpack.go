// Package bitpack stores 2-bit codes packed into uint32 words, following the
// LSB pattern: position 0 lives in the least-significant pair of word 0.
//
// Positions past the end of the buffer read as the zero code.
package bitpack

import "math/bits"

const (
	WordBits     = 32
	CodeBits     = 2
	TritsPerWord = WordBits / CodeBits

	codeMask = 1<<CodeBits - 1

	// lowPairs selects the low bit of every pair, highPairs the high bit.
	lowPairs  uint32 = 0x55555555
	highPairs uint32 = 0xAAAAAAAA
)

type Words []uint32

// WordsFor returns the number of words needed to hold n codes.
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + TritsPerWord - 1) / TritsPerWord
}

// Len returns the number of codes the buffer holds.
func (w Words) Len() int {
	return len(w) * TritsPerWord
}

func locate(pos int) (int, uint) {
	return pos / TritsPerWord, uint(pos%TritsPerWord) * CodeBits
}

// Get returns the code at pos, or 0 when pos is outside the buffer.
func (w Words) Get(pos int) uint8 {
	if pos < 0 || pos >= w.Len() {
		return 0
	}
	idx, shift := locate(pos)
	return uint8(w[idx] >> shift & codeMask)
}

// Put stores code at pos. The caller guarantees pos < w.Len().
func (w Words) Put(pos int, code uint8) {
	idx, shift := locate(pos)
	w[idx] = w[idx]&^(codeMask<<shift) | uint32(code&codeMask)<<shift
}

// Grow extends the buffer with zero words until it holds at least n words.
func (w Words) Grow(n int) Words {
	if n <= len(w) {
		return w
	}
	return append(w, make([]uint32, n-len(w))...)
}

// Clip returns a buffer of exactly n words backed by a fresh allocation, so
// the dropped tail is released. A zero n yields nil.
func (w Words) Clip(n int) Words {
	if n >= len(w) {
		return w
	}
	if n <= 0 {
		return nil
	}
	clipped := make(Words, n)
	copy(clipped, w)
	return clipped
}

// ClearFrom zeroes every code at or after pos.
func (w Words) ClearFrom(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos >= w.Len() {
		return
	}
	idx, shift := locate(pos)
	w[idx] &= 1<<shift - 1
	clear(w[idx+1:])
}

// Top returns the highest position holding a non-zero code, or -1.
func (w Words) Top() int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] != 0 {
			return i*TritsPerWord + (bits.Len32(w[i])-1)/CodeBits
		}
	}
	return -1
}

// Count returns how many of the first n positions hold code. Only the codes
// 0b01 and 0b10 are counted by popcount; 0 is derived from them.
func (w Words) Count(code uint8, n int) int {
	n = min(n, w.Len())
	if n <= 0 {
		return 0
	}
	switch code {
	case 0b01:
		return w.popcount(lowPairs, n)
	case 0b10:
		return w.popcount(highPairs, n)
	case 0b00:
		return n - w.popcount(lowPairs, n) - w.popcount(highPairs, n)
	}
	return 0
}

func (w Words) popcount(mask uint32, n int) int {
	full, rest := n/TritsPerWord, n%TritsPerWord
	count := 0
	for _, word := range w[:full] {
		count += bits.OnesCount32(word & mask)
	}
	if rest > 0 {
		count += bits.OnesCount32(w[full] & mask & (1<<(uint(rest)*CodeBits) - 1))
	}
	return count
}

// Equal reports whether the first n codes of w and o match.
func Equal(w, o Words, n int) bool {
	for pos := 0; pos < n; {
		idx, _ := locate(pos)
		a, b := w.word(idx), o.word(idx)
		if rest := n - pos; rest < TritsPerWord {
			mask := uint32(1)<<(uint(rest)*CodeBits) - 1
			a, b = a&mask, b&mask
		}
		if a != b {
			return false
		}
		pos += TritsPerWord
	}
	return true
}

func (w Words) word(idx int) uint32 {
	if idx >= len(w) {
		return 0
	}
	return w[idx]
}
