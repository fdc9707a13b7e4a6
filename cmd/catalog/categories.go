package main

import (
	"fmt"

	"github.com/Veraticus/catalog-tui/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
		Long:  `List and add the categories products are assigned to. Categories cannot be renamed or deleted.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newCatalogClient()
			if err != nil {
				return err
			}

			categories, err := client.ListCategories(cmd.Context())
			if err != nil {
				return remoteError("list categories", err)
			}

			out := cmd.OutOrStdout()
			if len(categories) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("No categories found. Use 'catalog categories add' to create one."))
				return err
			}

			rows := make([][]string, 0, len(categories))
			for _, category := range categories {
				rows = append(rows, []string{category.ID, category.Name})
			}
			return cli.WriteTable(out, []string{"ID", "Name"}, rows)
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireValue("category name", args[0])
			if err != nil {
				return err
			}

			client, _, err := newCatalogClient()
			if err != nil {
				return err
			}

			message, err := client.CreateCategory(cmd.Context(), name)
			if err != nil {
				return remoteError("add category", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(messageOr(message, "Category added.")))
			return err
		},
	}
}
