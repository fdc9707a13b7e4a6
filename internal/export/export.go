// Package export writes every product in the catalog to a file, page by page.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/model"
	"github.com/Veraticus/catalog-tui/internal/service"
)

// Format selects the output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: export format %q (want csv or json)", common.ErrInvalidConfig, name)
	}
}

// Progress is told after each fetched page how many pages are done out of
// the total the server reported so far.
type Progress func(done, total int)

type record struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Products fetches every page from src and writes the products to w. Pages
// are read in order; the total is re-read from each response so products
// added or removed mid-walk shift the end of the walk rather than fail it.
// It returns the number of products written.
func Products(ctx context.Context, src service.Catalog, pageSize int, w io.Writer, format Format, progress Progress) (int, error) {
	var products []model.Product

	for page, total := 1, 1; page <= total; page++ {
		result, err := src.ListProducts(ctx, page, pageSize)
		if err != nil {
			return 0, fmt.Errorf("fetching page %d: %w", page, err)
		}
		result = result.Normalize()
		total = result.TotalPages
		products = append(products, result.Products...)

		if progress != nil {
			progress(page, total)
		}
	}

	records := make([]record, 0, len(products))
	for _, p := range products {
		records = append(records, record{
			ID:           p.ID,
			Name:         p.Name,
			CategoryID:   p.Category.ID,
			CategoryName: p.Category.Name,
		})
	}

	var err error
	switch format {
	case FormatJSON:
		err = writeJSON(w, records)
	default:
		err = writeCSV(w, records)
	}
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", format, err)
	}
	return len(records), nil
}

func writeCSV(w io.Writer, records []record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "category_id", "category_name"}); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.ID, r.Name, r.CategoryID, r.CategoryName}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, records []record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
