package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	awsclient "github.com/cloudshim/awslite/internal/aws"
	"github.com/cloudshim/awslite/internal/tui/browse"
)

// NewBrowseCmd starts the interactive resource browser.
func NewBrowseCmd() *cobra.Command {
	var profile string
	var region string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse identity pools, training jobs, and endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd.Context(), profile, region)
			if err != nil {
				return err
			}
			accountID := awsclient.GetAccountID(cmd.Context(), sess.AWSCfg)

			model := browse.NewModel(sess.Client, sess.Profile, sess.Region, accountID)
			p := tea.NewProgram(model)
			if _, err := p.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	cmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to use")

	return cmd
}
