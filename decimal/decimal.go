package decimal

import (
	"bytes"

	"github.com/calebcase/bcd"
	"github.com/calebcase/bcd/control"
	"github.com/calebcase/bcd/integer"
)

// Block is a nullable number as it appears in a stream.
type Block struct {
	Number Number
	Null   bool
}

// Schema represents a configured number format.
type Schema struct {
	// Precision fixes the digit buffer size of every number in the
	// stream. Zero accepts any size when decoding and writes each number
	// with its own size.
	Precision int

	Nullable bool
}

func (s Schema) size() int {
	if s.Precision == 0 {
		return 0
	}

	return Context{Precision: s.Precision}.Size()
}

var exponentSchema = integer.Schema{
	Signed: true,
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
	id     *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
		id:     integer.NewDecoder(exponentSchema, cd),
	}
}

// Decode reads the next number. Digits are checked to be decimal and in
// normal form.
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

		*b = Block{Null: true}

		return nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if len(data) < 2 {
		return Error.New("short digits block: %d bytes", len(data))
	}

	digits, sign := data[:len(data)-1], data[len(data)-1]

	if size := d.schema.size(); size != 0 && len(digits) != size {
		return Error.New("digits block has %d bytes, want %d", len(digits), size)
	}

	var negative bool
	switch sign {
	case signPlus:
	case signMinus:
		negative = true
	default:
		return Error.New("invalid sign byte: %#02x", sign)
	}

	err = bcd.Validate(digits)
	if err != nil {
		return err
	}

	eb := &integer.Block{}

	err = d.id.Decode(eb)
	if err != nil {
		return err
	}

	exponent, err := eb.Int32()
	if err != nil {
		return err
	}

	err = bcd.CheckNormalized(digits, exponent)
	if err != nil {
		return err
	}

	if negative && bcd.IsZero(digits) {
		return bcd.InvariantError.New("negative zero")
	}

	*b = Block{
		Number: Number{
			Digits:   digits,
			Exponent: exponent,
			Negative: negative,
		},
	}

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
		ie:     integer.NewEncoder(exponentSchema, ce),
	}
}

// Encode writes a number as its digits followed by a sign byte, then the
// exponent. Numbers are resized to the schema precision; dropping nonzero
// digits is an error.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b.Null {
		if !e.schema.Nullable {
			return Error.New("null in non-nullable field")
		}

		return e.ce.Null()
	}

	n := b.Number
	if n.Digits == nil {
		n = n.clone()
	}

	if size := e.schema.size(); size != 0 && size != len(n.Digits) {
		if size < len(n.Digits) && !bcd.IsZero(n.Digits[size:]) {
			return Error.New("%s does not fit precision %d", n, e.schema.Precision)
		}

		n = n.resize(size)
	}

	sign := byte(signPlus)
	if n.Negative && !n.IsZero() {
		sign = signMinus
	}

	data := make([]byte, 0, len(n.Digits)+1)
	data = append(data, n.Digits...)
	data = append(data, sign)

	err = e.ce.Data(data)
	if err != nil {
		return err
	}

	exponent := n.Exponent
	if n.IsZero() {
		exponent = 0
	}

	return e.ie.Encode(integer.FromInt32(exponent))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n Number) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(Schema{}, control.NewEncoder(buf)).Encode(&Block{Number: n})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	r := bytes.NewReader(data)
	cd := control.NewDecoder(r)

	b := &Block{}

	err = NewDecoder(Schema{}, cd).Decode(b)
	if err != nil {
		return err
	}

	if r.Len() != 0 {
		return Error.New("%d trailing bytes", r.Len())
	}

	*n = b.Number

	return nil
}
