package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/config"
	"github.com/Veraticus/catalog-tui/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// useCatalog points the commands at a fake API server backed by catalog.
func useCatalog(t *testing.T, catalog *testutil.Catalog) {
	t.Helper()

	srv := testutil.NewServer(t, catalog)
	viper.Set("api.base_url", srv.URL)
	t.Cleanup(func() { viper.Set("api.base_url", config.DefaultBaseURL) })
}

func seeded(products int) *testutil.Catalog {
	catalog := testutil.NewCatalog()
	tools := catalog.SeedCategory("c1", "Tools")
	catalog.SeedCategory("c2", "Garden")
	catalog.SeedProducts("Widget", products, tools)
	return catalog
}

func TestCategoriesList(t *testing.T) {
	useCatalog(t, seeded(0))

	out, err := runCommand(t, categoriesCmd(), "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "Tools")
	assert.Contains(t, out, "Garden")
}

func TestCategoriesList_Empty(t *testing.T) {
	useCatalog(t, testutil.NewCatalog())

	out, err := runCommand(t, categoriesCmd(), "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No categories found")
}

func TestCategoriesAdd(t *testing.T) {
	catalog := testutil.NewCatalog()
	useCatalog(t, catalog)

	out, err := runCommand(t, categoriesCmd(), "", "add", "Hardware")

	require.NoError(t, err)
	assert.Contains(t, out, "Category created successfully")
	require.Equal(t, 1, catalog.CallCount(testutil.OpCreateCategory))
	assert.Equal(t, "Hardware", catalog.Calls()[0].Name)
}

func TestCategoriesAdd_RequiresName(t *testing.T) {
	catalog := testutil.NewCatalog()
	useCatalog(t, catalog)

	_, err := runCommand(t, categoriesCmd(), "", "add", "   ")

	require.ErrorIs(t, err, common.ErrRequiredField)
	assert.Empty(t, catalog.Calls())
}

func TestProductsList(t *testing.T) {
	useCatalog(t, seeded(25))

	out, err := runCommand(t, productsCmd(), "", "list", "--page", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Widget 11")
	assert.Contains(t, out, "Widget 20")
	assert.NotContains(t, out, "Widget 21")
	assert.Contains(t, out, "Tools")
	assert.Contains(t, out, "Page 2 of 3")
}

func TestProductsList_InvalidPage(t *testing.T) {
	catalog := seeded(3)
	useCatalog(t, catalog)

	for _, page := range []string{"0", "-1", "two"} {
		_, err := runCommand(t, productsCmd(), "", "list", "--page", page)
		assert.ErrorIs(t, err, common.ErrInvalidPage, page)
	}
	assert.Zero(t, catalog.CallCount(testutil.OpListProducts))
}

func TestProductsAdd(t *testing.T) {
	catalog := seeded(0)
	useCatalog(t, catalog)

	out, err := runCommand(t, productsCmd(), "", "add", "Hammer", "c1")

	require.NoError(t, err)
	assert.Contains(t, out, "Product created successfully")
	require.Len(t, catalog.Products(), 1)
	assert.Equal(t, "Hammer", catalog.Products()[0].Name)
	assert.Equal(t, "Tools", catalog.Products()[0].Category.Name)
}

func TestProductsAdd_RemoteFailure(t *testing.T) {
	catalog := seeded(0)
	catalog.Fail(testutil.OpCreateProduct, nil)
	useCatalog(t, catalog)

	_, err := runCommand(t, productsCmd(), "", "add", "Hammer", "c1")

	require.Error(t, err)
	assert.True(t, common.IsRemote(err))
	assert.Contains(t, common.UserMessage(err, ""), "Failed to add product")
	assert.Empty(t, catalog.Products())
}

func TestProductsUpdate(t *testing.T) {
	catalog := seeded(1)
	useCatalog(t, catalog)
	id := catalog.Products()[0].ID

	out, err := runCommand(t, productsCmd(), "", "update", id, "Claw Hammer", "c2")

	require.NoError(t, err)
	assert.Contains(t, out, "Product updated successfully")
	product := catalog.Products()[0]
	assert.Equal(t, "Claw Hammer", product.Name)
	assert.Equal(t, "Garden", product.Category.Name)
}

func TestProductsDelete(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		wantOutput  string
		args        []string
		wantDeleted bool
	}{
		{name: "confirmed", stdin: "y\n", wantOutput: "Product deleted successfully", wantDeleted: true},
		{name: "declined", stdin: "n\n", wantOutput: "Nothing deleted"},
		{name: "no answer", stdin: "", wantOutput: "Nothing deleted"},
		{name: "yes flag", args: []string{"--yes"}, wantOutput: "Product deleted successfully", wantDeleted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := seeded(2)
			useCatalog(t, catalog)
			id := catalog.Products()[0].ID

			args := append([]string{"delete", id}, tt.args...)
			out, err := runCommand(t, productsCmd(), tt.stdin, args...)

			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOutput)
			if tt.wantDeleted {
				assert.Len(t, catalog.Products(), 1)
				assert.Equal(t, 1, catalog.CallCount(testutil.OpDeleteProduct))
			} else {
				assert.Len(t, catalog.Products(), 2)
				assert.Zero(t, catalog.CallCount(testutil.OpDeleteProduct))
			}
		})
	}
}

func TestProductsExport_File(t *testing.T) {
	useCatalog(t, seeded(12))
	path := filepath.Join(t.TempDir(), "products.csv")

	out, err := runCommand(t, productsCmd(), "", "export", "--output", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Exported 12 products to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "id,name,category_id,category_name", lines[0])
	assert.Equal(t, "p0001,Widget 1,c1,Tools", lines[1])
}

func TestProductsExport_JSONToStdout(t *testing.T) {
	useCatalog(t, seeded(1))

	out, err := runCommand(t, productsCmd(), "", "export", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Widget 1"`)
	assert.Contains(t, out, `"categoryName": "Tools"`)
}

func TestProductsExport_InvalidFormat(t *testing.T) {
	catalog := seeded(1)
	useCatalog(t, catalog)

	_, err := runCommand(t, productsCmd(), "", "export", "--format", "xml")

	require.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Zero(t, catalog.CallCount(testutil.OpListProducts))
}

func TestProductsExport_RemoteFailure(t *testing.T) {
	catalog := seeded(3)
	catalog.Fail(testutil.OpListProducts, nil)
	useCatalog(t, catalog)
	dir := t.TempDir()
	existing := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(existing, []byte("previous export\n"), 0o600))

	_, err := runCommand(t, productsCmd(), "", "export", "-o", existing)

	require.Error(t, err)
	assert.True(t, common.IsRemote(err))
	assert.Contains(t, common.UserMessage(err, ""), "Failed to export products")
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "previous export\n", string(data), "a failed export keeps the previous file")

	fresh := filepath.Join(dir, "fresh.csv")
	_, err = runCommand(t, productsCmd(), "", "export", "-o", fresh)
	require.Error(t, err)
	assert.NoFileExists(t, fresh)
}

func TestRemoteErrorMessages(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		catalog := seeded(0)
		catalog.Fail(testutil.OpListCategories, nil)
		useCatalog(t, catalog)

		_, err := runCommand(t, categoriesCmd(), "", "list")

		require.Error(t, err)
		assert.Contains(t, common.UserMessage(err, ""), "rejected the request (status 500)")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		viper.Set("api.base_url", srv.URL)
		t.Cleanup(func() { viper.Set("api.base_url", config.DefaultBaseURL) })

		_, err := runCommand(t, categoriesCmd(), "", "list")

		require.Error(t, err)
		assert.True(t, common.IsRemote(err))
		msg := common.UserMessage(err, "")
		assert.Contains(t, msg, "could not be reached")
		assert.NotContains(t, msg, "rejected")
	})
}

func TestShow(t *testing.T) {
	catalog := seeded(3)
	useCatalog(t, catalog)

	out, err := runCommand(t, showCmd(), "")

	require.NoError(t, err)
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Garden")
	assert.Contains(t, out, "Products")
	assert.Contains(t, out, "Widget 3")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Equal(t, 1, catalog.CallCount(testutil.OpListCategories))
	assert.Equal(t, 1, catalog.CallCount(testutil.OpListProducts))
}

func TestShow_Failure(t *testing.T) {
	catalog := seeded(3)
	catalog.Fail(testutil.OpListCategories, nil)
	useCatalog(t, catalog)

	_, err := runCommand(t, showCmd(), "")

	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err, ""), "Failed to list categories")
}

func TestInvalidBaseURL(t *testing.T) {
	viper.Set("api.base_url", "not a url")
	t.Cleanup(func() { viper.Set("api.base_url", config.DefaultBaseURL) })

	_, err := runCommand(t, categoriesCmd(), "", "list")

	require.ErrorIs(t, err, common.ErrInvalidConfig)
	assert.Equal(t, "Invalid configuration", common.UserMessage(err, ""))
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, versionCmd(), "")

	require.NoError(t, err)
	assert.Equal(t, "catalog version dev\n", out)
}

func TestIsInteractive(t *testing.T) {
	assert.True(t, isInteractive(rootCmd))
	assert.True(t, isInteractive(tuiCmd()))
	assert.False(t, isInteractive(showCmd()))
	assert.False(t, isInteractive(categoriesCmd()))
}

func TestSetupLogging_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		viper.Set("logging.file", "")
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	})

	path := filepath.Join(t.TempDir(), "logs", "catalog.log")
	viper.Set("logging.file", path)

	require.NoError(t, setupLogging(false))
	slog.Info("catalog started", "page", 1)
	require.NoError(t, logCloser.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "catalog started")
}

func TestSetupLogging_InvalidLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		viper.Set("logging.level", config.DefaultLogLevel)
	})

	viper.Set("logging.level", "loud")

	assert.ErrorIs(t, setupLogging(false), common.ErrInvalidConfig)
}

func TestRootCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"tui", "categories", "products", "show", "version"} {
		assert.Contains(t, names, want)
	}
}
