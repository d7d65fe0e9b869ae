package cryptogram

import "errors"

// ErrInvalidInput marks outcomes described in spec as InvalidInput: an
// empty ciphertext after tokenization, or a non-positive max solutions.
var ErrInvalidInput = errors.New("cryptogram: invalid input")

// ErrInternalError marks invariant violations that should never occur
// against a well-formed dictionary: a non-injective cipher at assembly
// time, or a candidate whose length does not match its ciphertext word.
var ErrInternalError = errors.New("cryptogram: internal error")
