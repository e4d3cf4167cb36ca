package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/bcd/decimal"
)

var calcOptions = struct {
	precision int
}{
	precision: decimal.DefaultContext.Precision,
}

var Calc = &cobra.Command{
	Use:   "calc <a> <op> <b>",
	Short: "Applies one of + - * / cmp to two numbers.",
	Long: "Applies one of + - * / cmp to two numbers. Results are truncated to the precision, never rounded.\n\n" +
		"Quote * to keep the shell from expanding it.",
	Args: cobra.ExactArgs(3),
	RunE: commandCalc,
}

func commandCalc(cmd *cobra.Command, args []string) error {
	c := decimal.Context{Precision: calcOptions.precision}

	a, err := c.Parse(args[0])
	if err != nil {
		return err
	}

	b, err := c.Parse(args[2])
	if err != nil {
		return err
	}

	var r fmt.Stringer

	switch op := args[1]; op {
	case "+":
		r, err = a.Add(b)
	case "-":
		r, err = a.Sub(b)
	case "*", "x":
		r, err = a.Mul(b)
	case "/":
		r, err = a.Div(b)
	case "cmp":
		var cmp int
		cmp, err = a.Cmp(b)
		r = c.FromInt64(int64(cmp))
	default:
		return Error.New("unknown operator %q", op)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), r)

	return err
}

func init() {
	Calc.Flags().IntVar(&calcOptions.precision, "precision", calcOptions.precision, "significant digits")

	Root.AddCommand(Calc)
}
