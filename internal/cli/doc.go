// Package cli implements the azrest command tree. Every command builds a
// short-lived fx application from the loaded configuration, so the CLI
// runs on the same modules applications embed.
package cli
