// Package domain defines the core data models and interfaces shared across
// the release helper. It contains plain types (targets, results, reports) and
// contracts (interfaces) only.
package domain
