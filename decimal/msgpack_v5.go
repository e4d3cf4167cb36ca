//go:build bcd_msgpack_v5
// +build bcd_msgpack_v5

package decimal

import (
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	msgpack.RegisterExt(ExtID, (*Number)(nil))
}
