package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - multi-tenant ticketing service",
		Long:  `Helpdesk is a multi-tenant ticketing service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
