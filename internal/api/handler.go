package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pricetrail/pricetrail/internal/domain/dto"
	"github.com/pricetrail/pricetrail/internal/domain/models"
	"github.com/pricetrail/pricetrail/internal/service"
)

// Handler provides HTTP handlers for the product catalog and price-history
// endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and bodies
//   - Interact with the service layer
//   - Translate domain errors into HTTP statuses
//   - Return structured JSON responses
type Handler struct {
	svc service.CatalogService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.CatalogService) *Handler {
	return &Handler{svc: svc}
}

// CreateProduct handles POST /api/v1/products requests.
//
// CreateProduct godoc
// @Summary      Create a product
// @Description  Adds a product to the catalog with its current price
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      dto.CreateProductRequest  true  "Product to create"
// @Success      201      {object}  models.Product            "Created"
// @Failure      400      {object}  dto.ErrorResponse         "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse         "Duplicate article"
// @Failure      500      {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), strings.TrimSpace(req.Article), strings.TrimSpace(req.Name), req.Description, req.Price)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateArticle) {
			c.JSON(http.StatusConflict, dto.NewErrorResponse("article already exists", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create product", err))
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /api/v1/products requests.
//
// ListProducts godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   models.Product     "Success"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list products", err))
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id requests.
//
// GetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string             true  "Product ID"
// @Success      200  {object}  models.Product     "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("product not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch product", err))
		return
	}
	c.JSON(http.StatusOK, product)
}

// ListPeriods handles GET /api/v1/products/:id/periods requests.
//
// ListPeriods godoc
// @Summary      List price periods
// @Description  Returns a product's price history ordered by start date
// @Tags         periods
// @Produce      json
// @Param        id   path      string                   true  "Product ID"
// @Success      200  {array}   dto.PricePeriodResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse        "Not Found"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/products/{id}/periods [get]
func (h *Handler) ListPeriods(c *gin.Context) {
	periods, err := h.svc.ListPeriods(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("product not found", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list periods", err))
		return
	}

	out := make([]dto.PricePeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, dto.NewPricePeriodResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// AdmitPeriod handles POST /api/v1/products/:id/periods requests.
//
// AdmitPeriod godoc
// @Summary      Admit a price period
// @Description  Persists a new price period unless it overlaps an existing one for the same product
// @Tags         periods
// @Accept       json
// @Produce      json
// @Param        id      path      string                   true  "Product ID"
// @Param        period  body      dto.AdmitPeriodRequest   true  "Proposed period"
// @Success      201     {object}  dto.PricePeriodResponse  "Created"
// @Failure      400     {object}  dto.ErrorResponse        "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse        "Not Found"
// @Failure      409     {object}  dto.ErrorResponse        "Overlap"
// @Failure      500     {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/products/{id}/periods [post]
func (h *Handler) AdmitPeriod(c *gin.Context) {
	var req dto.AdmitPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	start, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
		return
	}
	end, err := dto.ParseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
		return
	}

	created, err := h.svc.AdmitPeriod(c.Request.Context(), c.Param("id"), req.Price, start, end)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must not be after end_date", nil))
		case errors.Is(err, models.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("product not found", nil))
		case errors.Is(err, models.ErrPeriodOverlap):
			c.JSON(http.StatusConflict, dto.NewErrorResponse("period overlaps an existing period", nil))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to admit period", err))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewPricePeriodResponse(*created))
}

// GetAveragePrice handles GET /api/v1/average-price requests.
//
// GetAveragePrice godoc
// @Summary      Average effective price
// @Description  Returns the mean effective daily price of a product over an inclusive date range, rounded to the nearest integer
// @Tags         average-price
// @Produce      json
// @Param        product_id  query     string  true  "Product ID"
// @Param        start_date  query     string  true  "Range start in YYYY-MM-DD"  example(2025-05-01)
// @Param        end_date    query     string  true  "Range end in YYYY-MM-DD"    example(2025-05-10)
// @Success      200         {object}  dto.AveragePriceResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse         "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse         "Not Found"
// @Failure      500         {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/average-price [get]
func (h *Handler) GetAveragePrice(c *gin.Context) {
	productID := strings.TrimSpace(c.Query("product_id"))
	if productID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("product_id is required", nil))
		return
	}

	start, err := dto.ParseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
		return
	}
	end, err := dto.ParseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
		return
	}

	avg, err := h.svc.AveragePrice(c.Request.Context(), productID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must not be after end_date", nil))
		case errors.Is(err, models.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("product not found", nil))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute average price", err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewAveragePriceResponse(*avg))
}
