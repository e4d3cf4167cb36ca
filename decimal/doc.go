// Package decimal provides a signed floating base 10 number on top of the
// packed digit engine.
//
// The equation for a number is:
//
//	number = ±0.d1 d2 ... dn * 10 ^ exponent
//
// Where the digits are packed two per byte, the most significant digit in the
// high nibble of the first byte, and exponent is a signed 32 bit integer. For
// example with a precision of four digits:
//
//	12.34  = 0.1234 * 10^2   = [0x12, 0x34] e2
//	0.005  = 0.5000 * 10^-2  = [0x50, 0x00] e-2
//	-100   = -0.1000 * 10^3  = [0x10, 0x00] e3 negative
//
// Numbers are normalized: the first digit of a nonzero number is not zero and
// zero is all zero digits with exponent 0 and no sign. The precision is the
// buffer size in digits and results of arithmetic are truncated to it, never
// rounded.
//
// Stream Encoding
//
// In a control block stream a number is two fields. The first is a data
// block holding the packed digits followed by a sign byte, the second is the
// exponent as a signed (zigzag) integer block:
//
//	| control | d1 d2 | d3 d4 | ... | sign || control | zigzag exponent |
//
// The sign byte is 0x0C for positive numbers and zero, 0x0D for negative
// numbers, the same nibbles the msgpack encoding uses. A nullable field
// writes a single Null block for a missing number.
//
//	USD 20.47 with precision 4 (5 bytes)
//
//	| 0 . 1 | 0 . 0 . 0 . 0 . 1 . 0 | Data Size Control Block, 3 bytes.
//	| 0 . 0 . 1 . 0 | 0 . 0 . 0 . 0 | Digits 2 and 0.
//	| 0 . 1 . 0 . 0 | 0 . 1 . 1 . 1 | Digits 4 and 7.
//	| 0 . 0 . 0 . 0 | 1 . 1 . 0 . 0 | Sign, positive.
//	| 1 | 0 . 0 . 0 . 0 . 1 . 0 | 0 | Data Control Block, exponent +2.
//
// Decoding checks every nibble and the normal form; malformed input is an
// error rather than a wrong number.
//
// MessagePack Encoding
//
// Numbers implement the MessagePack decimal extension (type 1) used by
// Tarantool: a MessagePack int scale followed by the packed digits and a
// trailing sign nibble. The extension is registered with
// gopkg.in/vmihailenco/msgpack.v2, or with github.com/vmihailenco/msgpack/v5
// when built with the bcd_msgpack_v5 tag.
package decimal
