package errs

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
)
