package generator

import "errors"

// ErrExhausted indicates that every attempt was rejected.
var ErrExhausted = errors.New("generator: attempts exhausted")
