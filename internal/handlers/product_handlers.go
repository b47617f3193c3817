package handlers

import (
	"net/http"

	"backoffice/internal/common"
	"backoffice/internal/models"
	"backoffice/internal/repositories"

	"github.com/labstack/echo/v4"
)

var productSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"reference":  "reference",
	"status":     "status",
	"stock":      "stock",
	"created_at": "created_at",
}

// ProductHandlers exposes the read side of the product catalog. Products are
// owned by the commerce platform; here they are listed for assignment to
// categories and updated in bulk through file processes.
type ProductHandlers struct {
	productRepo repositories.ProductRepository
}

func NewProductHandlers(productRepo repositories.ProductRepository) *ProductHandlers {
	return &ProductHandlers{productRepo: productRepo}
}

// List handles GET /products
func (h *ProductHandlers) List(c echo.Context) error {
	var params common.ListParams
	if err := c.Bind(&params); err != nil {
		return common.SendClientError(c, "Invalid query parameters")
	}
	params.Normalize()
	sort := params.SortFor(productSortColumns, "id")

	filter := models.CategoryProductFilter{
		Name:      c.QueryParam("name"),
		Reference: c.QueryParam("reference"),
	}
	if status := c.QueryParam("status"); status != "" {
		if status != models.ProductStatusDraft && status != models.ProductStatusEnabled {
			return common.SendValidationError(c, "status", "must be draft or enabled")
		}
		filter.Status = &status
	}

	ctx := c.Request().Context()
	products, err := h.productRepo.List(ctx, filter, sort, params.PerPage, params.Offset())
	if err != nil {
		return common.SendServerError(c, "Failed to load products")
	}
	total, err := h.productRepo.Count(ctx, filter)
	if err != nil {
		return common.SendServerError(c, "Failed to count products")
	}

	return c.JSON(http.StatusOK, models.NewPaginated(products, total, params.WirePage(), params.PerPage))
}

// Get handles GET /products/:id
func (h *ProductHandlers) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.productRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendNotFoundError(c, "Product")
	}
	return c.JSON(http.StatusOK, product)
}
