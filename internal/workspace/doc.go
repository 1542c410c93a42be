// Package workspace resolves the base directory the release runs from.
//
// The base directory is always absolute, uses "/" as its only separator and
// ends with exactly one trailing "/", so package directories can be derived
// from it by plain string concatenation.
package workspace
