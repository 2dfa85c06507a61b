// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("resource modified concurrently")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal server error")
	ErrValidation = errors.New("validation failed")
)
