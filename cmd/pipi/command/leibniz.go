package command

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
	"github.com/calebcase/bcd/internal/log"
	"github.com/calebcase/bcd/internal/pi"
)

var leibnizOptions = struct {
	terms     int
	precision int
}{
	terms:     1000,
	precision: decimal.DefaultContext.Precision,
}

var Leibniz = &cobra.Command{
	Use:   "leibniz",
	Short: "Sums the Gregory-Leibniz series for pi.",
	Args:  cobra.NoArgs,
	RunE:  commandLeibniz,
}

func commandLeibniz(cmd *cobra.Command, args []string) error {
	c := decimal.Context{Precision: leibnizOptions.precision}

	sum, err := pi.Leibniz(cmd.Context(), c, leibnizOptions.terms, pi.WithProgress(progress))
	if err != nil {
		return err
	}

	log.InfoS("summed series", "terms", humanize.Comma(int64(leibnizOptions.terms)))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)

	return err
}

func init() {
	Leibniz.Flags().IntVar(&leibnizOptions.terms, "terms", leibnizOptions.terms, "number of terms to sum")
	Leibniz.Flags().IntVar(&leibnizOptions.precision, "precision", leibnizOptions.precision, "significant digits")

	Root.AddCommand(Leibniz)
}
