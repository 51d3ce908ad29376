package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func queueCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List pending validation items",
		Long:  `Print the current validation queue without opening the interactive console.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			items, err := client.ListQueue(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch queue: %w", err)
			}

			if len(items) == 0 {
				fmt.Println("The validation queue is empty.")
				return nil
			}
			if limit > 0 && len(items) > limit {
				items = items[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Client"),
				headerStyle.Render("Confidence"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 30),
				strings.Repeat("-", 18),
				strings.Repeat("-", 10))

			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\n",
					item.ID, item.NormalizedName, item.CNPJ, item.Confidence*100)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many items (0 = all)")

	return cmd
}
