// Package main is the entry point for the cloak CLI.
package main

import "cloak.dev/pkg/cloak/cmd"

func main() {
	cmd.Execute()
}
