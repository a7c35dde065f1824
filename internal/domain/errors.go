// internal/domain/errors.go
package domain

import "errors"

// ErrValidation marks errors caused by bad input; handlers map it to 400.
var ErrValidation = errors.New("validation failed")
