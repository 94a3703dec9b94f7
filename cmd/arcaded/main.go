package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"onchainarcade/cmd/arcaded/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		stop()
		os.Exit(1)
	}
}
