package main

import (
	"github.com/Veraticus/catalog-tui/internal/tui"
	"github.com/Veraticus/catalog-tui/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Open the interactive catalog screen",
		Long:        `Add categories, add, edit and delete products, and page through the product table.`,
		Annotations: map[string]string{annotationInteractive: "true"},
		Args:        cobra.NoArgs,
		RunE:        runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	client, cfg, err := newCatalogClient()
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(),
		tui.WithCatalog(client),
		tui.WithPageSize(cfg.PageSize),
		tui.WithNotificationTimeout(cfg.NotificationTimeout),
		tui.WithTheme(themes.GetTheme(cfg.Theme)),
	)
}
