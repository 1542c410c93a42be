// Package commands defines the publish-all CLI and wires the app for each
// subcommand.
//
// Commands
//
//   - (root)   Publish every package of the plan, in order
//   - plan     Print the resolved targets and commands without running them
//   - version  Print build information
//
// # Dry run
//
// The root command only simulates publishing unless its first argument is
// exactly --publish. Any other argument, flag or not, leaves the dry run on;
// unknown flags and extra arguments are ignored.
package commands
