package pkg_error

import (
	"errors"
)

// Custom error
var (
	// Caret preconditions
	ErrLineOutOfRange   = errors.New("line index out of range")
	ErrColumnOutOfRange = errors.New("column index out of range")

	// Buffer messages
	ErrorNewFile    = errors.New("(New file)")
	ErrorLoadedFile = errors.New("(Loaded)")

	// Encoded messages
	ErrMac      = errors.New("Normalized from UTF-8-mac to UTF-8")
	ErrShiftJis = errors.New("Encoded from ShiftJIS to UTF-8")
	ErrEucJp    = errors.New("Encoded from EUC-JP to UTF-8")

	ErrUnknownEncoding = errors.New("unknown encoding")
)

// IsMessage reports whether err only carries a status message
// and the operation that returned it succeeded.
func IsMessage(err error) bool {
	for _, m := range []error{ErrorNewFile, ErrorLoadedFile, ErrMac, ErrShiftJis, ErrEucJp} {
		if errors.Is(err, m) {
			return true
		}
	}
	return false
}
