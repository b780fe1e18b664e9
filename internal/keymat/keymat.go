// Package keymat holds the embedded key material and reconstructs the
// asset-protection key at point of use.
//
// The real key is never stored in the binary. Two independent 32-byte
// constants are compiled in — an obfuscated key and a mask — and the
// key is their byte-wise XOR, recomputed on every call so that the
// secret only exists transiently. Scanning the binary for a contiguous
// 32-byte secret yields neither half in usable form.
package keymat

// KeySize is the length of the reconstructed key in bytes.
const KeySize = 32

// Reconstruct derives the asset-protection key from the embedded
// constants. The result is stable across calls and safe to compute
// from any number of goroutines; callers must not retain it beyond the
// enclosing seal/open operation.
//
//go:noinline
func Reconstruct() [KeySize]byte {
	var key [KeySize]byte
	for i := range key {
		key[i] = obfuscated[i] ^ mask[i]
	}

	return key
}
