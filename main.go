// Package main is the entry point for the minipack CLI.
package main

import "minipack.dev/pkg/minipack/cmd"

func main() {
	cmd.Execute()
}
