package vector

import "errors"

var (
	ErrUnknownCase     = errors.New("unknown case")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrUnsupportedMode = errors.New("unsupported AES mode")
	ErrBlockAlignment  = errors.New("input not block-aligned")
	ErrIVSize          = errors.New("iv must be 16 bytes")
	// ErrRoundTrip means decrypting a freshly produced ciphertext did not give back the plaintext.
	ErrRoundTrip = errors.New("round trip mismatch")
)
