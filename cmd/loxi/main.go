package main

import (
	"fmt"
	"os"

	"github.com/goloxi/loxi/cmd/loxi/cmd"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	if ec, ok := err.(*cmd.ExitCodeError); ok {
		os.Exit(ec.Code)
	}
	os.Exit(64) // cobra usage errors (bad flags, unknown subcommand)
}
