package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()

	if err != nil {
		if a.logger != nil {
			a.logger.Error("command failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		} else {
			// No logger yet: emit a single structured line by hand.
			fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		}
		a.close()
		os.Exit(1)
	}
	a.close()
}
