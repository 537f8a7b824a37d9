// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fix

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("fix")

var (
	// ErrRange is returned, when a number does not fit the underlying integer type.
	ErrRange = Error.New("value out of range")
	// ErrSyntax is returned for malformed input.
	ErrSyntax = Error.New("invalid syntax")
	// ErrOverflow is the panic value of Must.
	ErrOverflow = Error.New("arithmetic overflow")
)
