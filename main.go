// msa2st converts Atari ST MSA disk images into raw ST sector images.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"msa2st/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "msa2st: %v\n", err)
		os.Exit(1)
	}
}
