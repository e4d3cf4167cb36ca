//go:build bcd_msgpack_v5
// +build bcd_msgpack_v5

package decimal_test

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/calebcase/bcd/decimal"
)

func toNumber(i interface{}) (n decimal.Number, ok bool) {
	var ptr *decimal.Number
	if ptr, ok = i.(*decimal.Number); ok {
		n = *ptr
	}
	return
}

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
