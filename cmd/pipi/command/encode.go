package command

import (
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
	"github.com/calebcase/bcd/internal/log"
)

var encodeOptions = struct {
	format    string
	precision int
}{
	format:    formatMsgpack,
	precision: decimal.DefaultContext.Precision,
}

var Encode = &cobra.Command{
	Use:   "encode <number>",
	Short: "Prints the hex encoding of a number.",
	Args:  cobra.ExactArgs(1),
	RunE:  commandEncode,
}

func commandEncode(cmd *cobra.Command, args []string) error {
	c := decimal.Context{Precision: encodeOptions.precision}

	n, err := c.Parse(args[0])
	if err != nil {
		return err
	}

	data, err := encode(encodeOptions.format, n)
	if err != nil {
		return err
	}

	log.DebugS("encoded", "number", n.String(), "format", encodeOptions.format, "size", humanize.Bytes(uint64(len(data))))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))

	return err
}

func init() {
	Encode.Flags().StringVar(&encodeOptions.format, "format", encodeOptions.format, "encoding: msgpack or bsv")
	Encode.Flags().IntVar(&encodeOptions.precision, "precision", encodeOptions.precision, "significant digits")

	Root.AddCommand(Encode)
}
