package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sharedcode/employee"
	"github.com/sharedcode/employee/internal/cli"
)

func main() {
	employee.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "employee_crud: %v\n", err)
		os.Exit(1)
	}
}
