package control

import (
	"bytes"
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// ErrInvalidOperation is returned when the current block does not support
// the requested operation.
var ErrInvalidOperation = Error.New("invalid operation")

// Decoder reads control blocks.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

// read fills p. Running out of input part way through a block is always
// io.ErrUnexpectedEOF.
func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)

	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Next reads the next block. It returns false at the end of the input or on
// error; check Err to tell them apart.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.value[0] = 0
	d.t = Unknown
	d.data = nil

	n, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.err = d.payload(t)
	if d.err != nil {
		return false
	}

	d.t = t

	return true
}

func (d *decoder) payload(t Type) (err error) {
	switch t {
	case Data:
		d.data = []byte{d.value[0] & t.Mask}
	case DataSize:
		d.data = make([]byte, int(d.value[0]&t.Mask)+1)

		return d.read(d.data)
	case Data1:
		d.data = []byte{d.value[0] & t.Mask, 0}

		return d.read(d.data[1:])
	case Data2:
		d.data = []byte{d.value[0] & t.Mask, 0, 0}

		return d.read(d.data[1:])
	case DataSizeSize:
		sizeBytes := make([]byte, int(d.value[0]&t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsInt64() {
			return Error.New("unimplemented: size >= 2^63")
		}

		// The size is untrusted, so the buffer grows with the input
		// instead of being allocated up front.
		buf := &bytes.Buffer{}

		n, err := io.CopyN(buf, d.r, size.Int64())
		d.consumed += uint64(n)
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return Error.Wrap(err)
		}

		d.data = buf.Bytes()
	}

	return nil
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the data of the current block. If the block does not contain
// data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	if !d.t.Payload() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	return d.data, nil
}
