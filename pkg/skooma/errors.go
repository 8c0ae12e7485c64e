package skooma

import skerrors "github.com/skooma-dev/skooma/internal/errors"

const (
	codeUnsupportedArgument = "E001"
	codeUnsupportedStyle    = "E002"
	codeNotElement          = "E003"
	codeAttributeValue      = "E004"
	codeUnsupportedHandler  = "E005"
)

// Error is the coded error the builder returns. Match a kind of failure
// with errors.Is and the sentinels below; use errors.As with *Error to read
// the code and the detail naming the offending value.
type Error = skerrors.SkoomaError

// Sentinel errors for errors.Is. Errors returned by the builder carry the
// same code plus a detail naming the offending value.
//
// Errors raised by the DOM itself (invalid tag or attribute names, shadow
// roots on elements that cannot host one) are returned unchanged as
// *dom.DOMException.
var (
	ErrUnsupportedArgument = skerrors.New(codeUnsupportedArgument)
	ErrUnsupportedStyle    = skerrors.New(codeUnsupportedStyle)
	ErrNotElement          = skerrors.New(codeNotElement)
	ErrAttributeValue      = skerrors.New(codeAttributeValue)
	ErrUnsupportedHandler  = skerrors.New(codeUnsupportedHandler)
)

func failure(code, detail string) *Error {
	return skerrors.New(code).WithDetail(detail)
}
