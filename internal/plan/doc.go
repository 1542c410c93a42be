// Package plan describes which packages are published and in what order.
//
// A plan is an ordered list of (name, relative directory) entries. Later
// entries are assumed to depend on earlier ones, so the order is never
// changed once loaded. Targets are derived by concatenating the base
// directory with each entry's directory; the root package uses an empty
// directory and publishes from the base directory itself.
package plan
