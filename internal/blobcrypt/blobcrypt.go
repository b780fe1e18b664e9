// Package blobcrypt seals and opens asset blobs with AES-256-GCM.
//
// The wire format is nonce || ciphertext+tag: a fresh random 12-byte
// nonce followed by the sealed output with its 16-byte authentication
// tag. There is no header, version byte or magic — the blob is exactly
// what the cipher produces.
package blobcrypt

import (
	"fmt"

	"github.com/tink-crypto/tink-go/v2/aead/subtle"
)

const (
	// KeySize is the required key length in bytes.
	KeySize = 32

	// NonceSize is the length of the random nonce prefix.
	NonceSize = 12

	// TagSize is the length of the GCM authentication tag.
	TagSize = 16

	// MinBlobSize is the smallest well-formed blob: a nonce plus the
	// tag of an empty plaintext.
	MinBlobSize = NonceSize + TagSize
)

// Seal encrypts plaintext under key and returns nonce || ciphertext+tag.
// Every call draws a fresh random nonce. An error here means the cipher
// could not be constructed at all and is not recoverable.
func Seal(plaintext, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeySize, KeySize, len(key))
	}

	primitive, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, fmt.Errorf("constructing cipher: %w", err)
	}

	blob, err := primitive.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("sealing blob: %w", err)
	}

	return blob, nil
}

// Open authenticates and decrypts a blob produced by Seal. It fails
// with ErrMalformed for blobs too short to contain a nonce and tag,
// and with ErrAuthentication when the tag does not verify — a
// corrupted file, a tampered file, or the wrong key. It never returns
// unverified plaintext.
func Open(blob, key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeySize, KeySize, len(key))
	}

	if len(blob) < MinBlobSize {
		return nil, fmt.Errorf("%w: blob is %d bytes, need at least %d", ErrMalformed, len(blob), MinBlobSize)
	}

	primitive, err := subtle.NewAESGCM(key)
	if err != nil {
		return nil, fmt.Errorf("constructing cipher: %w", err)
	}

	plaintext, err := primitive.Decrypt(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}
