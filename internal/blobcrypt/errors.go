package blobcrypt

import "errors"

var (
	// ErrMalformed is returned when a blob is too short to contain a
	// nonce and an authentication tag.
	ErrMalformed = errors.New("malformed blob")

	// ErrAuthentication is returned when the authentication tag does
	// not verify: the blob was corrupted, tampered with, or sealed
	// under a different key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrKeySize is returned when the supplied key is not 32 bytes.
	ErrKeySize = errors.New("invalid key size")
)
