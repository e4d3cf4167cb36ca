// Package control provides the block framing used by the stream codecs.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the block
// contains). Data is packed directly into the control byte where it fits.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                      |
//	|---------------|---------------||----------------|--------------------------------------|
//	| 1 |                           || Data           | 2^7 = 128 values                     |
//	| 0 . 1 |                       || Data Size      | 1 to 64 bytes                        |
//	| 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                |
//	| 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values           |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 bytes of size, then the data  |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | Empty value                          |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)     |
//	|---------------|---------------||----------------|--------------------------------------|
//
// Sizes are indexed starting at 1. Zero length data is written as an Empty
// block.
//
// The encoder never changes the length of the data it is given: a leading
// zero byte is kept even when the value would fit a shorter block. Decoding
// returns exactly the bytes that were encoded.
//
// The remaining first byte patterns (0x02 to 0x07) are reserved and rejected
// by the decoder.
package control
