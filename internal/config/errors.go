package config

import "errors"

var (
	// ErrConfigMissing indicates the configuration file does not exist or cannot be read.
	ErrConfigMissing = errors.New("config: configuration file not found")

	// ErrConfigMalformed indicates the file is not valid JSON or an override could not be parsed.
	ErrConfigMalformed = errors.New("config: invalid configuration")

	// ErrConfigInvalid indicates required keys are missing for the selected provider.
	ErrConfigInvalid = errors.New("config: incomplete configuration")
)

// MissingHint tells the operator how to create the configuration file.
const MissingHint = "Please create " + DefaultFilename + " using " + ExampleFilename + " as template"
