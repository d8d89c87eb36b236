package handler

import (
	"io"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const imageFormField = "image"

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	ProductUC  usecase.ProductUsecase
}

// CatalogHandler serves categories and products.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	productUC  usecase.ProductUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		productUC:  params.ProductUC,
	}
}

// CategoryRequest represents the request body for creating or replacing a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Active      *bool  `json:"active"`
}

func (r *CategoryRequest) toInput() *usecase.CategoryInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return &usecase.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Active:      active,
	}
}

// CreateProductRequest represents the request body for listing a new product.
type CreateProductRequest struct {
	CategoryID  *uuid.UUID      `json:"category_id"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	PreOrder    bool            `json:"pre_order"`
}

// UpdateProductRequest lists the editable product fields. Omitted fields are left unchanged.
type UpdateProductRequest struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Active      *bool            `json:"active"`
	PreOrder    *bool            `json:"pre_order"`
}

// RestockRequest represents the request body for adding stock.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// --- Categories ---

// ListCategories lists every category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// GetCategory returns one category.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// CreateCategory adds a category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory replaces the fields of a category.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), categoryID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Category deleted")
}

// --- Products ---

// ListProducts lists active products, narrowed by the category_id, seller_id,
// q and pre_order query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.listProducts(c, input)
}

// ListMyProducts lists the calling seller's products.
func (h *CatalogHandler) ListMyProducts(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	input, err := listProductsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	input.SellerID = &sellerID

	return h.listProducts(c, input)
}

func (h *CatalogHandler) listProducts(c echo.Context, input *usecase.ListProductsInput) error {
	page, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, page.Products, &response.PageInfo{
		Limit:  page.Limit,
		Offset: page.Offset,
		Total:  &page.Total,
	})
}

func listProductsInput(c echo.Context) (*usecase.ListProductsInput, error) {
	limit, offset, err := pageParams(c)
	if err != nil {
		return nil, err
	}

	categoryID, err := optionalUUIDQuery(c, "category_id")
	if err != nil {
		return nil, err
	}

	sellerID, err := optionalUUIDQuery(c, "seller_id")
	if err != nil {
		return nil, err
	}

	preOrderOnly := false
	if raw := c.QueryParam("pre_order"); raw != "" {
		preOrderOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("pre_order: must be a boolean"))
		}
	}

	return &usecase.ListProductsInput{
		CategoryID:   categoryID,
		SellerID:     sellerID,
		Query:        c.QueryParam("q"),
		PreOrderOnly: preOrderOnly,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct lists a new product for the calling seller.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), sellerID, &usecase.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		PreOrder:    req.PreOrder,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct edits one of the calling seller's products.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), sellerID, productID, &usecase.UpdateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      req.Active,
		PreOrder:    req.PreOrder,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeactivateProduct hides one of the calling seller's products from the catalog.
func (h *CatalogHandler) DeactivateProduct(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeactivateProduct(c.Request().Context(), sellerID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Product deactivated")
}

// Restock adds stock to one of the calling seller's products.
func (h *CatalogHandler) Restock(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RestockRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Restock(c.Request().Context(), sellerID, productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UploadProductImage stores the multipart "image" file as the product image.
func (h *CatalogHandler) UploadProductImage(c echo.Context) error {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := readImage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UploadImage(c.Request().Context(), sellerID, productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

func readImage(c echo.Context) (*usecase.UploadImageInput, error) {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(imageFormField + ": file is required"))
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read uploaded image")
	}

	return &usecase.UploadImageInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
