package main

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/catalog-tui/internal/cli"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
		Long:  `List products a page at a time, add, update or delete them, or export them all.`,
	}

	cmd.AddCommand(listProductsCmd())
	cmd.AddCommand(addProductCmd())
	cmd.AddCommand(updateProductCmd())
	cmd.AddCommand(deleteProductCmd())
	cmd.AddCommand(exportProductsCmd())

	return cmd
}

func listProductsCmd() *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := parsePage(page)
			if err != nil {
				return err
			}

			client, cfg, err := newCatalogClient()
			if err != nil {
				return err
			}

			result, err := client.ListProducts(cmd.Context(), n, cfg.PageSize)
			if err != nil {
				return remoteError("list products", err)
			}

			return writeProductPage(cmd, n, result)
		},
	}

	cmd.Flags().StringVar(&page, "page", "1", "page number, starting at 1")
	return cmd
}

func writeProductPage(cmd *cobra.Command, page int, result model.ProductPage) error {
	out := cmd.OutOrStdout()

	if len(result.Products) == 0 {
		if _, err := fmt.Fprintln(out, cli.FormatInfo("No products on this page.")); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(result.Products))
		for _, product := range result.Products {
			rows = append(rows, []string{product.ID, product.Name, product.Category.Name})
		}
		if err := cli.WriteTable(out, []string{"ID", "Name", "Category"}, rows); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, cli.SubtleStyle.Render("Page "+strconv.Itoa(page)+" of "+strconv.Itoa(result.TotalPages)))
	return err
}

func addProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <categoryID>",
		Short: "Add a new product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, categoryID, err := productArgs(args[0], args[1])
			if err != nil {
				return err
			}

			client, _, err := newCatalogClient()
			if err != nil {
				return err
			}

			message, err := client.CreateProduct(cmd.Context(), name, categoryID)
			if err != nil {
				return remoteError("add product", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(messageOr(message, "Product added.")))
			return err
		},
	}
}

func updateProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name> <categoryID>",
		Short: "Rename a product or move it to another category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireValue("product id", args[0])
			if err != nil {
				return err
			}
			name, categoryID, err := productArgs(args[1], args[2])
			if err != nil {
				return err
			}

			client, _, err := newCatalogClient()
			if err != nil {
				return err
			}

			message, err := client.UpdateProduct(cmd.Context(), id, name, categoryID)
			if err != nil {
				return remoteError("update product", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(messageOr(message, "Product updated.")))
			return err
		},
	}
}

func deleteProductCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requireValue("product id", args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				confirmed, err := cli.NewLineReader(cmd.InOrStdin()).Confirm(cmd.Context(), out, "Delete product "+id+"?")
				if err != nil {
					return err
				}
				if !confirmed {
					_, err := fmt.Fprintln(out, cli.FormatInfo("Nothing deleted."))
					return err
				}
			}

			client, _, err := newCatalogClient()
			if err != nil {
				return err
			}

			message, err := client.DeleteProduct(cmd.Context(), id)
			if err != nil {
				return remoteError("delete product", err)
			}

			_, err = fmt.Fprintln(out, cli.FormatSuccess(messageOr(message, "Product deleted.")))
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
