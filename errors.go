package bcd

import "github.com/zeebo/errs"

var (
	// ContractError is returned when an operation is called with operands
	// it does not accept.
	ContractError = errs.Class("bcd contract")

	// InvariantError is returned when operands break the normalization
	// rules in a way that makes the result meaningless.
	InvariantError = errs.Class("bcd invariant")
)
