// Package main is the entry point for publish-all, which publishes the
// catalyzer crates in dependency order.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"catalyzer-release/cmd/publish-all/commands"
	"catalyzer-release/internal/exitcode"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.Execute(ctx, os.Args[1:])
	stop()

	code, msg := exitcode.Classify(err)
	if msg != "" {
		fmt.Println(msg)
	}
	os.Exit(code)
}
