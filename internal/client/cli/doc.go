// Package cli implements the interactive terminal client: a small REPL over
// the auth and billing services with spreadsheet export of bill histories.
package cli
