// Package config loads the report mailer configuration.
//
// The configuration is a JSON document (email-config.json by default).
// After decoding, values from the environment override the file so that
// secrets can be kept out of it. A .env file, when present, contributes
// variables that are not already set in the real environment.
//
//	cfg, err := config.Load(config.ResolvePath(config.DefaultFilename))
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
package config
