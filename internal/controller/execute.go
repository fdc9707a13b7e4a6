package controller

import (
	"context"
	"fmt"

	"github.com/Veraticus/catalog-tui/internal/common"
	"github.com/Veraticus/catalog-tui/internal/service"
)

// Execute performs req against catalog. Failures are logged with their cause
// and returned in the Response; the controller only sees that the call failed.
// Successful mutations are logged at info level, reads at debug.
func Execute(ctx context.Context, catalog service.Catalog, req Request) Response {
	resp := Response{Request: req}

	switch req.Kind {
	case RequestListCategories:
		resp.Categories, resp.Err = catalog.ListCategories(ctx)
	case RequestListProducts:
		resp.Page, resp.Err = catalog.ListProducts(ctx, req.Page, req.PageSize)
	case RequestCreateCategory:
		resp.Message, resp.Err = catalog.CreateCategory(ctx, req.Name)
	case RequestCreateProduct:
		resp.Message, resp.Err = catalog.CreateProduct(ctx, req.Name, req.CategoryID)
	case RequestUpdateProduct:
		resp.Message, resp.Err = catalog.UpdateProduct(ctx, req.ProductID, req.Name, req.CategoryID)
	case RequestDeleteProduct:
		resp.Message, resp.Err = catalog.DeleteProduct(ctx, req.ProductID)
	default:
		resp.Err = fmt.Errorf("unknown request kind %d", req.Kind)
	}

	if resp.Err != nil {
		common.LogError(resp.Err, "Catalog request failed", common.Fields{
			"request": req.Kind.String(),
			"seq":     req.Seq,
			"page":    req.Page,
		})
	} else if req.Kind.IsMutation() {
		common.LogInfo("Catalog updated", common.Fields{
			"request": req.Kind.String(),
			"seq":     req.Seq,
			"message": resp.Message,
		})
	} else {
		common.LogDebug("Catalog request completed", common.Fields{
			"request": req.Kind.String(),
			"seq":     req.Seq,
		})
	}

	return resp
}
