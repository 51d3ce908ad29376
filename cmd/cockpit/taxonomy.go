package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Inspect the classification taxonomy",
		Long:  `List the categories and subcategories available for product classification.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(listSubcategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("ID"), headerStyle.Render("Name"))
			fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 10), strings.Repeat("-", 24))
			for _, cat := range categories {
				fmt.Fprintf(w, "%s\t%s\n", cat.ID, cat.Name)
			}

			return nil
		},
	}
}

func listSubcategoriesCmd() *cobra.Command {
	var categoryID string

	cmd := &cobra.Command{
		Use:   "subcategories",
		Short: "List subcategories",
		Long:  `Display subcategories, optionally filtered to a single category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			subcats, err := client.ListSubcategories(cmd.Context(), categoryID)
			if err != nil {
				return fmt.Errorf("failed to fetch subcategories: %w", err)
			}

			if len(subcats) == 0 {
				fmt.Println("No subcategories found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Category"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 24),
				strings.Repeat("-", 10))
			for _, sub := range subcats {
				fmt.Fprintf(w, "%s\t%s\t%s\n", sub.ID, sub.Name, sub.CategoryID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Only show subcategories of this category ID")

	return cmd
}
