package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
)

var decodeOptions = struct {
	format string
}{
	format: formatMsgpack,
}

var Decode = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Prints the number held by a hex encoding.",
	Args:  cobra.ExactArgs(1),
	RunE:  commandDecode,
}

func commandDecode(cmd *cobra.Command, args []string) error {
	data, err := unhex(args[0])
	if err != nil {
		return err
	}

	var n decimal.Number

	err = decode(decodeOptions.format, data, &n)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

	return err
}

func init() {
	Decode.Flags().StringVar(&decodeOptions.format, "format", decodeOptions.format, "encoding: msgpack or bsv")

	Root.AddCommand(Decode)
}
