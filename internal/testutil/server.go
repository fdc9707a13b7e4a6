package testutil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Veraticus/catalog-tui/internal/model"
)

// NewServer serves the catalog REST API backed by c. The server is closed
// when the test finishes.
func NewServer(t testing.TB, c *Catalog) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(Handler(c))
	t.Cleanup(srv.Close)
	return srv
}

// Handler exposes c over the catalog wire format.
func Handler(c *Catalog) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		categories, err := c.ListCategories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]map[string]string, 0, len(categories))
		for _, category := range categories {
			out = append(out, categoryJSON(category))
		}
		writeJSON(w, http.StatusOK, map[string]any{"categories": out})
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))

		result, err := c.ListProducts(r.Context(), page, size)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]map[string]any, 0, len(result.Products))
		for _, product := range result.Products {
			out = append(out, map[string]any{
				"_id":         product.ID,
				"productName": product.Name,
				"categoryID":  categoryJSON(product.Category),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"products":   out,
			"totalPages": result.TotalPages,
		})
	})

	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CategoryName string `json:"categoryName"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		respond(w, http.StatusCreated)(c.CreateCategory(r.Context(), body.CategoryName))
	})

	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeProduct(w, r)
		if !ok {
			return
		}
		respond(w, http.StatusCreated)(c.CreateProduct(r.Context(), body.ProductName, body.CategoryID))
	})

	mux.HandleFunc("PUT /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, ok := decodeProduct(w, r)
		if !ok {
			return
		}
		respond(w, http.StatusOK)(c.UpdateProduct(r.Context(), r.PathValue("id"), body.ProductName, body.CategoryID))
	})

	mux.HandleFunc("DELETE /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK)(c.DeleteProduct(r.Context(), r.PathValue("id")))
	})

	return mux
}

type productBody struct {
	ProductName string `json:"productName"`
	CategoryID  string `json:"categoryID"`
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (productBody, bool) {
	var body productBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return body, false
	}
	return body, true
}

func respond(w http.ResponseWriter, status int) func(string, error) {
	return func(message string, err error) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, status, map[string]string{"message": message})
	}
}

func categoryJSON(category model.Category) map[string]string {
	return map[string]string{"_id": category.ID, "categoryName": category.Name}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"message": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
