// Package pipeline delivers one report: convert it to PDF, compose the
// message, attach the PDF and send it through the configured provider.
//
// A Session is built once per run from a loaded configuration and holds
// every collaborator; nothing is kept in package state.
package pipeline
