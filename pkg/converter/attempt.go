package converter

import "fmt"

// Attempt is the outcome of running one profile: either a produced Path or a failure Reason.
type Attempt struct {
	Reason  error
	Profile string
	Path    string
}

func succeeded(profile, path string) Attempt {
	return Attempt{Profile: profile, Path: path}
}

func failed(profile string, reason error) Attempt {
	return Attempt{Profile: profile, Reason: reason}
}

// Succeeded reports whether the attempt produced a PDF.
func (a Attempt) Succeeded() bool {
	return a.Reason == nil && a.Path != ""
}

// Error implements error for failed attempts so they can be joined.
func (a Attempt) Error() string {
	return fmt.Sprintf("profile %s: %v", a.Profile, a.Reason)
}

// Unwrap returns the failure reason.
func (a Attempt) Unwrap() error {
	return a.Reason
}
