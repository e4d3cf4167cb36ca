//go:build !bcd_msgpack_v5
// +build !bcd_msgpack_v5

package decimal

import (
	"gopkg.in/vmihailenco/msgpack.v2"
)

func init() {
	msgpack.RegisterExt(ExtID, &Number{})
}
