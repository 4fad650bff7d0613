package bitnum

import (
	"math/bits"
)

// And replaces u with the bitwise AND of u and v at the aligned width
// max(u.Len(), v.Len()), widening u if needed. v is never modified. Returns
// u.
func (u *Uint) And(v *Uint) *Uint {
	u.align(v)
	for i := range u.words {
		u.words[i] &= v.word(i)
	}
	return u
}

// Or replaces u with the bitwise OR of u and v at the aligned width. v is
// never modified. Returns u.
func (u *Uint) Or(v *Uint) *Uint {
	u.align(v)
	for i := range u.words {
		u.words[i] |= v.word(i)
	}
	return u
}

// Xor replaces u with the bitwise XOR of u and v at the aligned width. v is
// never modified. Returns u.
func (u *Uint) Xor(v *Uint) *Uint {
	u.align(v)
	for i := range u.words {
		u.words[i] ^= v.word(i)
	}
	return u
}

// Not complements every digit of u at its current width. Returns u.
func (u *Uint) Not() *Uint {
	for i := range u.words {
		u.words[i] = ^u.words[i]
	}
	u.clearSpare()
	return u
}

// Add replaces u with the ripple-carry sum of u and v at the aligned width.
// A carry out of the most significant digit grows u by exactly one digit;
// the carry is never dropped. v is never modified. Returns u.
func (u *Uint) Add(v *Uint) *Uint {
	u.align(v)

	var carry uint64
	for i := range u.words {
		u.words[i], carry = bits.Add64(u.words[i], v.word(i), carry)
	}
	if carry != 0 {
		u.words = append(u.words, carry)
	}

	// Both operands are clear above the aligned width w, so the sum is below
	// 1<<(w+1): at most one digit of growth.
	if u.BitLen() > u.width {
		u.width++
	}
	return u
}

// Negate replaces u with its two's complement relative to its current width
// w: every digit is flipped, then one is added modulo 1<<w. The width never
// changes, so negating the same value stored at different widths yields
// different results; Negate of zero is zero. Returns u.
func (u *Uint) Negate() *Uint {
	for i := range u.words {
		u.words[i] = ^u.words[i]
	}
	u.clearSpare()

	carry := uint64(1)
	for i := 0; i < len(u.words) && carry != 0; i++ {
		u.words[i], carry = bits.Add64(u.words[i], 0, carry)
	}
	u.clearSpare()
	return u
}

// Sub replaces u with the difference u - v at the aligned width
// w = max(u.Len(), v.Len()): a clone of v is widened to w, negated there,
// and added, discarding the carry out of the top digit. The result keeps
// width w; when u < v it wraps modulo 1<<w. v is never modified. Returns u.
func (u *Uint) Sub(v *Uint) *Uint {
	u.align(v)

	// Negating at a narrower width than the alignment width produces wrong
	// differences; the clone must be widened first.
	n := v.Clone().Widen(u.width).Negate()

	var carry uint64
	for i := range u.words {
		u.words[i], carry = bits.Add64(u.words[i], n.words[i], carry)
	}
	u.clearSpare()
	return u
}

// Mul replaces u with the product of u and v, computed by shift-and-add over
// the native 64-bit integer conversions of both operands: products beyond 64
// bits wrap silently, mirroring AsUint64. The result is rebuilt at its
// minimal width, discarding any leading zero padding u held. v is never
// modified. Returns u. See MulExact for the arbitrary-width form.
func (u *Uint) Mul(v *Uint) *Uint {
	top := u.width
	if v.width > top {
		top = v.width
	}

	multiplicand := u.AsUint64()
	multiplier := v.AsUint64()

	var acc uint64
	for i := 0; i <= top; i++ {
		if (multiplier>>uint(i))&1 == 1 {
			acc += multiplicand << uint(i)
		}
	}

	u.setUint64(acc)
	return u
}

// MulExact replaces u with the exact product of u and v, shift-and-add over
// the digit sequences themselves: it never wraps, whatever the operand
// widths. The result is rebuilt at its minimal width. v is never modified.
// Returns u.
func (u *Uint) MulExact(v *Uint) *Uint {
	prod := make([]uint64, len(u.words)+len(v.words))
	for i, x := range u.words {
		var carry uint64
		for j, y := range v.words {
			hi, lo := bits.Mul64(x, y)
			var c uint64
			lo, c = bits.Add64(lo, prod[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			prod[i+j] = lo
			carry = hi
		}
		prod[i+len(v.words)] = carry
	}

	u.setWords(prod)
	return u
}

// Lsh shifts u left by n digits. The width grows by n, so the value is
// preserved exactly. Lsh panics if the grown width does not fit in an int.
// Returns u.
func (u *Uint) Lsh(n uint) *Uint {
	if n == 0 {
		return u
	}

	width := u.width + int(n)
	if width < u.width {
		panic("bitnum: shift count overflows width")
	}
	words := make([]uint64, wordsFor(width))
	s, b := int(n/64), uint(n%64)
	if b == 0 {
		copy(words[s:], u.words)
	} else {
		for i := len(u.words) - 1; i >= 0; i-- {
			if i+s+1 < len(words) {
				words[i+s+1] |= u.words[i] >> (64 - b)
			}
			words[i+s] |= u.words[i] << b
		}
	}

	u.width, u.words = width, words
	return u
}

// Rsh shifts u right by n digits, dropping the low n digits. The width
// shrinks by n with a floor of one digit. Returns u.
func (u *Uint) Rsh(n uint) *Uint {
	if n == 0 {
		return u
	}

	width := u.width - int(n)
	if width < 1 {
		width = 1
	}
	s, b := int(n/64), uint(n%64)
	words := make([]uint64, wordsFor(width))
	for i := range words {
		if i+s < len(u.words) {
			words[i] = u.words[i+s] >> b
			if b > 0 && i+s+1 < len(u.words) {
				words[i] |= u.words[i+s+1] << (64 - b)
			}
		}
	}

	u.width, u.words = width, words
	u.clearSpare()
	return u
}

// align widens u to v's width when v is wider. The argument is left alone:
// a narrower v has its missing high words read as zero by word().
func (u *Uint) align(v *Uint) {
	if v.width > u.width {
		u.Widen(v.width)
	}
}

// And returns the bitwise AND of a and b at the aligned width. Neither
// argument is modified.
func And(a, b *Uint) *Uint { return a.Clone().And(b) }

// Or returns the bitwise OR of a and b at the aligned width. Neither
// argument is modified.
func Or(a, b *Uint) *Uint { return a.Clone().Or(b) }

// Xor returns the bitwise XOR of a and b at the aligned width. Neither
// argument is modified.
func Xor(a, b *Uint) *Uint { return a.Clone().Xor(b) }

// Add returns the sum of a and b. Neither argument is modified.
func Add(a, b *Uint) *Uint { return a.Clone().Add(b) }

// Sub returns the difference a - b at the aligned width, wrapping when
// a < b. Neither argument is modified.
func Sub(a, b *Uint) *Uint { return a.Clone().Sub(b) }

// Mul returns the product of a and b modulo 1<<64 at its minimal width.
// Neither argument is modified.
func Mul(a, b *Uint) *Uint { return a.Clone().Mul(b) }

// MulExact returns the exact product of a and b at its minimal width.
// Neither argument is modified.
func MulExact(a, b *Uint) *Uint { return a.Clone().MulExact(b) }
