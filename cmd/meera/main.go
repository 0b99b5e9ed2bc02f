package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "meera",
		Short: "Jewelry storefront and admin console",
		Long:  "Meera Jewels is a demo jewelry storefront with a mock admin console. All commerce data is in-memory; carts and sessions persist per client.",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
