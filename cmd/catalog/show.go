package main

import (
	"fmt"

	"github.com/Veraticus/catalog-tui/internal/cli"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func showCmd() *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print categories and one page of products",
		Long: `Fetch the category list and a product page at the same time and print
both, the same snapshot the interactive screen starts from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := parsePage(page)
			if err != nil {
				return err
			}

			client, cfg, err := newCatalogClient()
			if err != nil {
				return err
			}

			var (
				categories []model.Category
				products   model.ProductPage
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				categories, err = client.ListCategories(ctx)
				if err != nil {
					return remoteError("list categories", err)
				}
				return nil
			})
			g.Go(func() error {
				var err error
				products, err = client.ListProducts(ctx, n, cfg.PageSize)
				if err != nil {
					return remoteError("list products", err)
				}
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.FormatTitle("Categories")); err != nil {
				return err
			}
			rows := make([][]string, 0, len(categories))
			for _, category := range categories {
				rows = append(rows, []string{category.ID, category.Name})
			}
			if err := cli.WriteTable(out, []string{"ID", "Name"}, rows); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(out, "\n"+cli.FormatTitle("Products")); err != nil {
				return err
			}
			return writeProductPage(cmd, n, products)
		},
	}

	cmd.Flags().StringVar(&page, "page", "1", "page number, starting at 1")
	return cmd
}
