package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/tbjgolden/install-custom-font/cmd/fontinstall"
	"github.com/tbjgolden/install-custom-font/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	rootCmd := fontinstall.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err))
		os.Exit(1)
	}
}
