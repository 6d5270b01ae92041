package main

import (
	"os"

	"github.com/spf13/cobra"

	"storeops/internal/interfaces/cli/migrate"
	"storeops/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "storeops",
		Short: "StoreOps - e-commerce admin dashboard API",
		Long:  `StoreOps serves the admin dashboard API: staff authorization records, role and permission resolution, and tab access for the frontend.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		newVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(server.Version)
		},
	}
}
