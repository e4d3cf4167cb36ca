package integer

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/bcd/control"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number. Value is the big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt32 returns the block holding v.
func FromInt32(v int32) *Block {
	m := new(big.Int).SetInt64(int64(v))

	b := &Block{
		Negative: m.Sign() < 0,
	}

	b.Value = m.Abs(m).Bytes()
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

// Int32 returns the value of the block. It fails when the value does not fit.
func (b Block) Int32() (v int32, err error) {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	if !i.IsInt64() || i.Int64() < math.MinInt32 || i.Int64() > math.MaxInt32 {
		return 0, Error.New("out of int32 range: %s", i)
	}

	return int32(i.Int64()), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("no data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed   bool
	Nullable bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next block. A null field leaves b.Value nil.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return d.cd.Err()
		}

		return Error.New("unexpected end of input")
	}

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		b.Value = nil
		b.Negative = false

		return nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		return b.UnmarshalBinary(data)
	}

	b.Value = data
	b.Negative = false

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block. A nil b.Value is written as null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		return e.ce.Null()
	}

	if !e.schema.Signed {
		if b.Negative {
			return Error.New("negative value in unsigned field")
		}

		value := new(big.Int).SetBytes(b.Value).Bytes()
		if len(value) == 0 {
			value = []byte{0}
		}

		return e.ce.Data(value)
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}
