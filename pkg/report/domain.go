package report

import (
	"path/filepath"
	"strings"
)

var separators = strings.NewReplacer("_", ".", "-", ".")

// Domain derives the report subject from a file path.
// The directory and the final extension are dropped, then '-' and '_' become '.'.
func Domain(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return separators.Replace(base)
}

// IsPDF reports whether the path has a PDF extension, ignoring case.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// PDFPath returns path with its extension replaced by ".pdf".
func PDFPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".pdf"
}
