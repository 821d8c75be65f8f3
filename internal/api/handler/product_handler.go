package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inventoryapi/inventory-system/internal/api/metrics"
	"github.com/inventoryapi/inventory-system/internal/api/middleware"
	"github.com/inventoryapi/inventory-system/internal/core/ports"
	"github.com/inventoryapi/inventory-system/internal/core/token"
)

// ProductHandler holds the token manager as well as the service: product
// creation re-reads the creator id straight from the bearer token, and a
// token without a usable subject means the write is anonymous and rejected.
type ProductHandler struct {
	service ports.ProductService
	tokens  *token.Manager
}

func NewProductHandler(service ports.ProductService, tokens *token.Manager) *ProductHandler {
	return &ProductHandler{service: service, tokens: tokens}
}

type productRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	Description   string  `json:"description"    validate:"max=250"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Price         float64 `json:"price"          validate:"gte=0"`
	PictureURL    string  `json:"picture_url"    validate:"max=250"`
	CategoryID    int     `json:"category_id"    validate:"required"`
}

func (r *productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		StockQuantity: r.StockQuantity,
		Price:         r.Price,
		PictureURL:    r.PictureURL,
		CategoryID:    r.CategoryID,
	}
}

// List returns all products with resolved references.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ProductDTO
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product by id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  ports.ProductDTO
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ListByCategory returns the products belonging to one category.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path     int  true  "Category id"
// @Success      200         {array}  ports.ProductDTO
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return err
	}
	products, err := h.service.GetByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListLowStock returns products with stock at or below the threshold.
//
// @Summary      List low-stock products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        threshold  query    int  false  "Stock threshold"  default(10)
// @Success      200        {array}  ports.ProductDTO
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) ListLowStock(c echo.Context) error {
	threshold := ports.DefaultLowStockThreshold
	if raw := c.QueryParam("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid threshold")
		}
		threshold = parsed
	}

	products, err := h.service.GetLowStock(c.Request().Context(), threshold)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a new product attributed to the calling account.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  ports.ProductDTO
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Soft extraction: no propagated error, just absence of identity, which
	// on this write path means the request is rejected.
	creatorID, ok := h.tokens.ExtractUserID(middleware.BearerToken(c.Request()))
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput(), creatorID)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update replaces a product's mutable fields.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  ports.ProductDTO
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
