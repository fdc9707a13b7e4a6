package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(count int) *testutil.Catalog {
	catalog := testutil.NewCatalog()
	tools := catalog.SeedCategory("c1", "Tools")
	catalog.SeedProducts("Widget", count, tools)
	return catalog
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"csv", "json"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestProducts_CSV(t *testing.T) {
	catalog := seeded(25)
	var buf bytes.Buffer
	var calls [][2]int

	n, err := Products(context.Background(), catalog, 10, &buf, FormatCSV, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})

	require.NoError(t, err)
	assert.Equal(t, 25, n)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
	assert.Equal(t, 3, catalog.CallCount(testutil.OpListProducts))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 26)
	assert.Equal(t, []string{"id", "name", "category_id", "category_name"}, rows[0])
	assert.Equal(t, []string{"p0001", "Widget 1", "c1", "Tools"}, rows[1])
	assert.Equal(t, "Widget 25", rows[25][1])
}

func TestProducts_JSON(t *testing.T) {
	var buf bytes.Buffer

	n, err := Products(context.Background(), seeded(2), 10, &buf, FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{
		"id":           "p0002",
		"name":         "Widget 2",
		"categoryId":   "c1",
		"categoryName": "Tools",
	}, got[1])
}

func TestProducts_Empty(t *testing.T) {
	catalog := seeded(0)
	var buf bytes.Buffer

	n, err := Products(context.Background(), catalog, 10, &buf, FormatJSON, nil)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.JSONEq(t, "[]", buf.String())
	assert.Equal(t, 1, catalog.CallCount(testutil.OpListProducts))
}

func TestProducts_Failure(t *testing.T) {
	catalog := seeded(5)
	catalog.Fail(testutil.OpListProducts, nil)
	var buf bytes.Buffer

	_, err := Products(context.Background(), catalog, 10, &buf, FormatCSV, nil)

	require.ErrorIs(t, err, testutil.ErrInjected)
	assert.True(t, common.IsRemote(err))
	assert.Empty(t, buf.String(), "nothing written on failure")
}
