package converter

import "errors"

var (
	// ErrInputNotFound indicates the report file does not exist.
	ErrInputNotFound = errors.New("converter: input file not found")

	// ErrNotInstalled indicates the converter binary is missing or not runnable.
	ErrNotInstalled = errors.New("converter: pandoc is not installed")

	// ErrConversionFailed indicates every rendering profile failed.
	ErrConversionFailed = errors.New("converter: could not create PDF")
)

const (
	installHint    = "Install with: sudo apt-get install pandoc\n   Alternative: sudo apt-get install pandoc texlive-latex-base texlive-fonts-recommended"
	conversionHint = "Please install: sudo apt-get install pandoc wkhtmltopdf"
)

// Hint returns a remediation message for converter errors, or "" if none applies.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrNotInstalled):
		return installHint
	case errors.Is(err, ErrConversionFailed):
		return conversionHint
	default:
		return ""
	}
}
