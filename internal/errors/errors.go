// Package errors is the single import for error values across refuge. Tree
// inspection comes from the standard library; constructors and wrappers come
// from pkg/errors so every error created here carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join

	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)
