// Command feedback opens the feedback dialog in the terminal and emails the result.
//
// Credentials come from flags, FEEDBACK_* environment variables or a .env file,
// and are prompted for when missing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(nil).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
