//go:build !bcd_msgpack_v5
// +build !bcd_msgpack_v5

package decimal_test

import (
	"gopkg.in/vmihailenco/msgpack.v2"

	"github.com/calebcase/bcd/decimal"
)

func toNumber(i interface{}) (n decimal.Number, ok bool) {
	n, ok = i.(decimal.Number)
	return
}

func marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}
