package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baseline-tools/cockpit/internal/common"
	"github.com/baseline-tools/cockpit/internal/session"
	"github.com/baseline-tools/cockpit/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Open the interactive validation console",
		Long: `Start the full-screen review console: browse the pending queue, edit
names and classifications, stage approved items in the cart and commit
them to the Baseline.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			common.LogInfo("starting review console", common.Fields{"api_url": client.BaseURL()})

			if err := tui.Run(cmd.Context(), session.New(client)); err != nil {
				return fmt.Errorf("review console failed: %w", err)
			}
			return nil
		},
	}
}
