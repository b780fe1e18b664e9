package packager

// Action identifies what was done to a single file.
type Action string

const (
	// ActionCopied means the file was copied to the destination verbatim.
	ActionCopied Action = "Copied"

	// ActionSealed means the file was encrypted into the destination tree.
	ActionSealed Action = "Sealed"

	// ActionOpened means an encrypted file was decrypted back to plaintext.
	ActionOpened Action = "Opened"

	// ActionChecked means the file's presence was checked, without
	// reading or writing its contents.
	ActionChecked Action = "Checked"

	// ActionVerified means an encrypted file authenticated and
	// decrypted in place, without output.
	ActionVerified Action = "Verified"
)

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path, empty for verification
	Output string

	// Output file size in bytes
	OutputSize int64

	// What was done to the file
	Action Action

	// Any error that occurred during processing
	Error error
}

// Summary aggregates the outcomes of a whole run.
type Summary struct {
	// Files copied verbatim
	Copied int

	// Files encrypted, decrypted, or authenticated in place
	Processed int

	// Files only checked for presence (verify mode)
	Checked int

	// Files that failed
	Errored int

	// Total bytes written (or verified)
	Bytes int64
}
