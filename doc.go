// Package bcd provides absolute value arithmetic on packed binary coded
// decimal (BCD) numbers.
//
// A number is a fixed length packed digit buffer together with a base 10
// exponent:
//
//  number = 0.d1 d2 d3 ... dn * 10 ^ exponent
//
// Each byte holds two digits. The high nibble is the more significant digit
// of the pair and buffers are stored most significant pair first. For
// example, 71234 with a four byte buffer is:
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 . 1 . 1 | 0 . 0 . 0 . 1 | [7|1]
//  | 0 . 0 . 1 . 0 | 0 . 0 . 1 . 1 | [2|3]
//  | 0 . 1 . 0 . 0 | 0 . 0 . 0 . 0 | [4|0]
//  | 0 . 0 . 0 . 0 | 0 . 0 . 0 . 0 | [0|0]
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
//  exponent = 5
//
// Normalization
//
// Nonzero numbers always have a nonzero first digit. Zero is all digits zero
// with an exponent of 0. Comparison relies on both rules to decide most
// comparisons from the exponents alone.
//
// Operations
//
// CompareAbs, AddAbs and SubtractAbs only look at magnitudes. The sign of a
// number is kept by the caller (see the decimal package). All operands and
// the result buffer must have the same length. Results that do not fit in
// the buffer are truncated (never rounded) and the truncation is reported to
// the caller.
//
// Carry and borrow propagation use 256 entry tables indexed by a packed
// byte. They are computed once at package initialization and only read
// afterwards so any number of goroutines may run operations concurrently.
//
// Errors
//
// Calls that break the operation contract (length mismatch, subtracting a
// larger magnitude, aliasing the result with an operand, ...) fail with an
// error of class ContractError. Operands that are not normalized in a way
// that can be detected fail with InvariantError.
package bcd
