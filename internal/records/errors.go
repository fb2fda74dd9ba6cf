package records

import "errors"

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrBlankLine       = errors.New("blank line")
)
