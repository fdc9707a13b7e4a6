package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/catalog-tui/internal/cli"
	"github.com/Veraticus/catalog-tui/internal/export"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportProductsCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every product to a CSV or JSON file",
		Long: `Walk all product pages and write the products as CSV or JSON.
Output goes to stdout unless --output names a file, which is only written
once every page has been fetched. Progress is shown on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			client, cfg, err := newCatalogClient()
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			bar := newPageBar(cmd.ErrOrStderr())
			count, err := export.Products(cmd.Context(), client, cfg.PageSize, &buf, f, func(done, total int) {
				bar.ChangeMax(total)
				if err := bar.Set(done); err != nil {
					slog.Warn("Failed to update progress bar", "error", err)
				}
			})
			if err != nil {
				return remoteError("export products", err)
			}

			if output == "" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Exported %d products to %s", count, output)))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatCSV), "output format: csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write instead of stdout")
	return cmd
}

func newPageBar(w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Fetching pages...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
