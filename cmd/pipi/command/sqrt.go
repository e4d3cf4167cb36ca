package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
	"github.com/calebcase/bcd/internal/pi"
)

var sqrtOptions = struct {
	digits int
	check  bool
}{
	digits: 100,
}

var Sqrt = &cobra.Command{
	Use:   "sqrt <value>",
	Short: "Computes a square root with Newton's method.",
	Args:  cobra.ExactArgs(1),
	RunE:  commandSqrt,
}

func commandSqrt(cmd *cobra.Command, args []string) error {
	c := decimal.Context{Precision: sqrtOptions.digits + pi.GuardDigits}

	value, err := c.Parse(args[0])
	if err != nil {
		return err
	}

	r, err := pi.Sqrt(cmd.Context(), c, value)
	if err != nil {
		return err
	}

	s := pi.Truncate(r.String(), sqrtOptions.digits)

	if sqrtOptions.check {
		if !value.Equal(c.FromInt64(2)) {
			return Error.New("--check only knows the square root of 2")
		}

		err = check(pi.CheckSqrt2, s)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)

	return err
}

func init() {
	Sqrt.Flags().IntVar(&sqrtOptions.digits, "digits", sqrtOptions.digits, "number of decimal places")
	Sqrt.Flags().BoolVar(&sqrtOptions.check, "check", sqrtOptions.check, "verify the digits of the square root of 2")

	Root.AddCommand(Sqrt)
}
