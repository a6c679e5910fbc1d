package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloudshim/awslite/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "awslite",
		Short: "Lightweight AWS clients for Cognito Identity and SageMaker",
	}

	rootCmd.AddCommand(cmd.NewIdentityCmd())
	rootCmd.AddCommand(cmd.NewSageMakerCmd())
	rootCmd.AddCommand(cmd.NewBrowseCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
