// Command pipi computes pi and square roots with packed decimal arithmetic
// and converts numbers between text and their binary encodings.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/calebcase/bcd/cmd/pipi/command"
	"github.com/calebcase/bcd/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := command.Root.ExecuteContext(ctx)
	stop()

	if err != nil {
		log.ErrorS("pipi failed", "err", err)
		log.Flush()
		os.Exit(1)
	}
}
