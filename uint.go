package bitnum

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

const intSize = 32 << (^uint(0) >> 63)

// ErrNegative is returned by constructors when asked to represent a negative
// value.
var ErrNegative = errors.New("bitnum: negative value")

// Uint is an unsigned integer stored as an ordered sequence of bits,
// most-significant digit first, at an explicit width.
//
// The digits are packed into little-endian 64-bit words: digit i of a value
// of width w lives at bit (w-1-i) of the word array, counting from the least
// significant bit. len(words) is always (width+63)/64 and every bit at a
// position >= width is zero.
//
// Widths are sticky. Leading zero digits introduced by Widen or by aligning
// operands for a binary operation are kept until an operation that rebuilds
// the value (Mul, MulExact) replaces them with the minimal width for its
// result.
type Uint struct {
	width int
	words []uint64
}

// FromUint64 creates a Uint holding v at its minimal width. Zero is stored
// as the single digit 0, width 1.
func FromUint64(v uint64) *Uint {
	w := bits.Len64(v)
	if w == 0 {
		w = 1
	}
	return &Uint{width: w, words: []uint64{v}}
}

// FromInt creates a Uint holding v at its minimal width. Negative values
// fail with ErrNegative.
func FromInt(v int) (*Uint, error) {
	if v < 0 {
		return nil, ErrNegative
	}
	return FromUint64(uint64(v)), nil
}

// FromBigInt creates a Uint holding b at its minimal width. Any non-negative
// magnitude is representable; negative values fail with ErrNegative.
func FromBigInt(b *big.Int) (*Uint, error) {
	if b.Sign() < 0 {
		return nil, ErrNegative
	}

	w := b.BitLen()
	if w == 0 {
		w = 1
	}
	u := &Uint{width: w, words: make([]uint64, wordsFor(w))}

	words := b.Bits()
	switch intSize {
	case 64:
		for i, bw := range words {
			u.words[i] = uint64(bw)
		}
	case 32:
		for i, bw := range words {
			u.words[i/2] |= uint64(bw) << (uint(i%2) * 32)
		}
	default:
		panic("bitnum: unsupported int size")
	}
	return u, nil
}

// FromString creates a Uint from a string of binary digits with an optional
// "0b" or "0B" prefix. Every digit after the prefix becomes a stored digit,
// so leading zeros widen the result deliberately: FromString(u.String()) is
// value-equal to u and one digit wider, because String prepends a zero pad.
func FromString(s string) (*Uint, error) {
	digits := s
	if len(digits) >= 2 && (digits[0:2] == "0b" || digits[0:2] == "0B") {
		digits = digits[2:]
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("bitnum: uint string %q invalid", s)
	}

	u := &Uint{width: len(digits), words: make([]uint64, wordsFor(len(digits)))}
	for i := 0; i < len(digits); i++ {
		switch digits[i] {
		case '1':
			pos := len(digits) - 1 - i
			u.words[pos/64] |= 1 << uint(pos%64)
		case '0':
		default:
			return nil, fmt.Errorf("bitnum: uint string %q invalid", s)
		}
	}
	return u, nil
}

// Clone returns a new Uint with an independent copy of the digit storage.
func (u *Uint) Clone() *Uint {
	words := make([]uint64, len(u.words))
	copy(words, u.words)
	return &Uint{width: u.width, words: words}
}

// Len returns the stored width in digits. This is the storage width, not the
// minimal width of the value; see BitLen for that.
func (u *Uint) Len() int { return u.width }

// BitLen returns the minimal number of digits needed to represent the value,
// ignoring leading zero padding. BitLen of zero is 0, the big.Int
// convention.
func (u *Uint) BitLen() int {
	for i := len(u.words) - 1; i >= 0; i-- {
		if u.words[i] != 0 {
			return i*64 + bits.Len64(u.words[i])
		}
	}
	return 0
}

// Bit returns digit i counting from the least significant end, the big.Int
// convention. Positions beyond the width are zero. Bit panics if i is
// negative.
func (u *Uint) Bit(i int) uint {
	if i < 0 {
		panic("bitnum: negative bit index")
	}
	if i >= u.width {
		return 0
	}
	return uint(u.words[i/64]>>uint(i%64)) & 1
}

func (u *Uint) IsZero() bool {
	for _, w := range u.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether u and v hold the same value. Widths are ignored:
// 0b011 and 0b11 are equal.
func (u *Uint) Equal(v *Uint) bool { return u.Cmp(v) == 0 }

// Cmp compares the values of u and v, ignoring widths, and returns -1, 0 or
// 1.
func (u *Uint) Cmp(v *Uint) int {
	n := len(u.words)
	if len(v.words) > n {
		n = len(v.words)
	}
	for i := n - 1; i >= 0; i-- {
		uw, vw := u.word(i), v.word(i)
		if uw > vw {
			return 1
		} else if uw < vw {
			return -1
		}
	}
	return 0
}

// Widen zero-extends u in place to the given width by introducing zero
// digits at the most-significant end. Widen is a no-op when width <= Len().
// The value is never changed. Returns u.
func (u *Uint) Widen(width int) *Uint {
	if width <= u.width {
		return u
	}
	u.width = width
	for len(u.words) < wordsFor(width) {
		u.words = append(u.words, 0)
	}
	return u
}

// AsUint64 folds the digit sequence into a uint64. Values wider than 64 bits
// wrap: the result is the low 64 bits. See IsUint64 if you want to check
// before you convert.
func (u *Uint) AsUint64() uint64 {
	if len(u.words) == 0 {
		return 0
	}
	return u.words[0]
}

// AsInt is the native int view of AsUint64; it wraps the same way a
// uint64 to int conversion does.
func (u *Uint) AsInt() int {
	return int(u.AsUint64())
}

// IsUint64 reports whether u can be represented as a uint64 without
// wrapping.
func (u *Uint) IsUint64() bool {
	for i := 1; i < len(u.words); i++ {
		if u.words[i] != 0 {
			return false
		}
	}
	return true
}

// IntoBigInt sets b to the exact value of u, reusing b's storage where
// possible. See AsBigInt for the allocating counterpart.
func (u *Uint) IntoBigInt(b *big.Int) {
	bw := b.Bits()
	bw = bw[:0]
	switch intSize {
	case 64:
		for _, w := range u.words {
			bw = append(bw, big.Word(w))
		}
	case 32:
		for _, w := range u.words {
			bw = append(bw, big.Word(w&0xFFFFFFFF), big.Word(w>>32))
		}
	default:
		panic("bitnum: unsupported int size")
	}
	b.SetBits(bw)
}

// AsBigInt returns the exact value of u as a big.Int.
func (u *Uint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// String renders u as a decorated binary literal: the prefix "0b", one
// literal zero pad, then every stored digit. FromInt(0) renders as "0b00".
func (u *Uint) String() string {
	return "0b0" + string(u.digits())
}

// Format implements fmt.Formatter. %v and %s render the decorated literal,
// %b the bare stored digits (width-preserving, no pad); the numeric verbs
// %d, %o, %x and %X delegate to the exact big.Int value.
func (u *Uint) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		fmt.Fprint(s, u.String())
	case 'b':
		s.Write(u.digits())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// digits renders the stored digit sequence, most significant first.
func (u *Uint) digits() []byte {
	out := make([]byte, u.width)
	for i := 0; i < u.width; i++ {
		if u.Bit(u.width-1-i) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return out
}

func wordsFor(width int) int { return (width + 63) / 64 }

// word reads word i, treating words beyond the storage as zero. This is how
// binary operations read a narrower argument without widening it.
func (u *Uint) word(i int) uint64 {
	if i >= len(u.words) {
		return 0
	}
	return u.words[i]
}

// clearSpare re-establishes the invariant that bits at positions >= width
// are zero. Must only be called when len(words) == wordsFor(width).
func (u *Uint) clearSpare() {
	if r := uint(u.width % 64); r != 0 {
		u.words[len(u.words)-1] &= (1 << r) - 1
	}
}

// setUint64 rebuilds u from v at v's minimal width.
func (u *Uint) setUint64(v uint64) {
	w := bits.Len64(v)
	if w == 0 {
		w = 1
	}
	u.width = w
	u.words = append(u.words[:0], v)
}

// setWords rebuilds u from little-endian words at the minimal width for the
// value they hold. u takes ownership of the slice.
func (u *Uint) setWords(words []uint64) {
	w := 0
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			w = i*64 + bits.Len64(words[i])
			break
		}
	}
	if w == 0 {
		u.setUint64(0)
		return
	}
	u.width = w
	u.words = words[:wordsFor(w)]
}
