package rest

import (
	"net/http"

	"instruCal/business/catalog"

	"github.com/labstack/echo/v4"
)

// ProductHandler serves the code-defined catalog. No service layer:
// the catalog is static data, there is nothing to orchestrate.
type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// GetAllProducts handles listing catalog products, optionally by category
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products := catalog.All()

	if category := c.QueryParam("category"); category != "" {
		filtered := make([]catalog.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Products retrieved successfully",
		"products": products,
	})
}

// GetProductByID resolves a product by catalog id or display name
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	ref := c.Param("id")

	product, ok := catalog.FindByNameOrID(ref)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product retrieved successfully",
		"product": product,
	})
}
