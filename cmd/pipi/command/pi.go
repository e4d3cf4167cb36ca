package command

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
	"github.com/calebcase/bcd/internal/log"
	"github.com/calebcase/bcd/internal/pi"
)

var piOptions = struct {
	digits  int
	check   bool
	formula string
	euler   bool
}{
	digits:  1000,
	formula: "machin",
}

// formulas maps --formula values to their computation.
var formulas = map[string]func(context.Context, int, ...pi.Option) (decimal.Number, error){
	"machin":     pi.Machin,
	"takano":     pi.Takano,
	"chien-lih":  pi.ChienLih,
	"chudnovsky": pi.Chudnovsky,
}

var Pi = &cobra.Command{
	Use:   "pi",
	Short: "Computes pi with a Machin-like formula or the Chudnovsky series.",
	Args:  cobra.NoArgs,
	RunE:  commandPi,
}

// progress logs series progress at debug level.
func progress(series string, done, total int) {
	log.DebugS("series progress",
		"series", series,
		"done", humanize.Comma(int64(done)),
		"total", humanize.Comma(int64(total)),
		"percent", fmt.Sprintf("%.2f", 100*float64(done)/float64(max(total, 1))),
	)
}

func commandPi(cmd *cobra.Command, args []string) error {
	start := time.Now()

	compute, ok := formulas[piOptions.formula]
	if !ok {
		return Error.New("unknown formula %q", piOptions.formula)
	}

	opts := []pi.Option{pi.WithProgress(progress)}
	if piOptions.euler {
		opts = append(opts, pi.WithEuler())
	}

	n, err := compute(cmd.Context(), piOptions.digits, opts...)
	if err != nil {
		return err
	}

	s := pi.Truncate(n.String(), piOptions.digits)

	log.InfoS("computed pi",
		"formula", piOptions.formula,
		"digits", humanize.Comma(int64(piOptions.digits)),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if piOptions.check {
		err = check(pi.Check, s)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

	return err
}

// check runs fn on s and logs how many places matched.
func check(fn func(string) (int, error), s string) error {
	places, err := fn(s)
	if err != nil {
		log.ErrorS("digits do not match", "mismatch", humanize.Ordinal(places+1)+" place")

		return err
	}

	log.InfoS("digits verified", "places", places)

	return nil
}

func init() {
	Pi.Flags().IntVar(&piOptions.digits, "digits", piOptions.digits, "number of decimal places")
	Pi.Flags().BoolVar(&piOptions.check, "check", piOptions.check, "verify the digits against the known expansion")
	Pi.Flags().StringVar(&piOptions.formula, "formula", piOptions.formula, "machin, takano, chien-lih or chudnovsky")
	Pi.Flags().BoolVar(&piOptions.euler, "euler", piOptions.euler, "sum arctan series with Euler's accelerated form")

	Root.AddCommand(Pi)
}
