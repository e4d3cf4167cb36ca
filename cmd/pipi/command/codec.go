package command

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bcd/decimal"
)

// Supported encodings.
const (
	formatBSV     = "bsv"
	formatMsgpack = "msgpack"
)

// encode returns the encoding of n in format.
func encode(format string, n decimal.Number) ([]byte, error) {
	switch format {
	case formatBSV:
		return n.MarshalBinary()
	case formatMsgpack:
		payload, err := n.MarshalMsgpack()
		if err != nil {
			return nil, err
		}

		buf := &bytes.Buffer{}

		err = msgpack.NewEncoder(buf).EncodeExtHeader(decimal.ExtID, len(payload))
		if err != nil {
			return nil, err
		}

		buf.Write(payload)

		return buf.Bytes(), nil
	default:
		return nil, Error.New("unknown format %q", format)
	}
}

// decode reads a number in format from data. A msgpack number must be a
// single MP_DECIMAL extension.
func decode(format string, data []byte, n *decimal.Number) error {
	switch format {
	case formatBSV:
		return n.UnmarshalBinary(data)
	case formatMsgpack:
		r := bytes.NewReader(data)
		d := msgpack.NewDecoder(r)

		id, length, err := d.DecodeExtHeader()
		if err != nil {
			return err
		}

		if id != decimal.ExtID {
			return Error.New("unexpected extension type %d", id)
		}

		if length != r.Len() {
			return Error.New("extension length %d with %d bytes left", length, r.Len())
		}

		payload := make([]byte, length)

		err = d.ReadFull(payload)
		if err != nil {
			return err
		}

		return n.UnmarshalMsgpack(payload)
	default:
		return Error.New("unknown format %q", format)
	}
}

// unhex accepts hex with optional whitespace and 0x prefix.
func unhex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	return hex.DecodeString(s)
}
