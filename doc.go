/*
Package bitnum provides an unsigned integer type (Uint) stored explicitly as
an ordered sequence of bits with an observable width.

Unlike big.Int, a Uint remembers how many digits it is stored at: leading
zero digits are preserved, widths only change when an operation says they do,
and the two's complement operations (Negate, Sub) are defined relative to the
current stored width rather than a fixed machine word.

Simple example:

	a, _ := FromInt(6)
	b, _ := FromInt(3)
	fmt.Println(Add(a, b))
	// Output: 0b01001

A Uint can be created from a variety of sources:

	FromInt(v int) (*Uint, error)
	FromUint64(v uint64) *Uint
	FromBigInt(b *big.Int) (*Uint, error)
	FromString(s string) (*Uint, error)
	RandUint(source RandSource, width int) *Uint

Operations come in two forms: methods mutate the receiver in place and never
touch their argument; the package-level functions (Add, Sub, Mul, MulExact,
And, Or, Xor) clone internally and return a new value.

The zero value of Uint has zero width and is not useful; use the
constructors. Uint values are not safe for concurrent mutation.
*/
package bitnum
