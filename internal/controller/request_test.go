package controller

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestKind(t *testing.T) {
	tests := []struct {
		want     string
		kind     RequestKind
		mutation bool
	}{
		{kind: RequestListCategories, want: "list_categories"},
		{kind: RequestListProducts, want: "list_products"},
		{kind: RequestCreateCategory, want: "create_category", mutation: true},
		{kind: RequestCreateProduct, want: "create_product", mutation: true},
		{kind: RequestUpdateProduct, want: "update_product", mutation: true},
		{kind: RequestDeleteProduct, want: "delete_product", mutation: true},
		{kind: RequestKind(99), want: "unknown", mutation: true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
			assert.Equal(t, tt.mutation, tt.kind.IsMutation())
		})
	}
}

func TestExecute_UnknownKind(t *testing.T) {
	catalog := testutil.NewCatalog()

	resp := Execute(context.Background(), catalog, Request{Kind: RequestKind(99), Seq: 7})

	assert.Error(t, resp.Err)
	assert.Equal(t, uint64(7), resp.Request.Seq)
	assert.Empty(t, catalog.Calls())
}

func TestExecute_PassesArguments(t *testing.T) {
	catalog := testutil.NewCatalog()
	catalog.SeedCategory("c1", "Tools")

	resp := Execute(context.Background(), catalog, Request{Kind: RequestListProducts, Page: 3, PageSize: 5})

	assert.NoError(t, resp.Err)
	assert.Equal(t, []testutil.Call{{Op: testutil.OpListProducts, Page: 3, Size: 5}}, catalog.Calls())
}

func TestExecute_LogsMutationsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := common.NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	catalog := testutil.NewCatalog()
	catalog.SeedCategory("c1", "Tools")

	resp := Execute(context.Background(), catalog, Request{Kind: RequestListCategories, Seq: 1})
	require.NoError(t, resp.Err)
	assert.Empty(t, buf.String(), "reads stay below info")

	resp = Execute(context.Background(), catalog, Request{Kind: RequestCreateCategory, Name: "Garden", Seq: 2})
	require.NoError(t, resp.Err)
	assert.Contains(t, buf.String(), `"msg":"Catalog updated"`)
	assert.Contains(t, buf.String(), `"request":"create_category"`)
}
