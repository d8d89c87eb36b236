package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	ReviewUC   usecase.ReviewUsecase
	FavoriteUC usecase.FavoriteUsecase
}

// EngagementHandler serves reviews, ratings and favorites.
type EngagementHandler struct {
	reviewUC   usecase.ReviewUsecase
	favoriteUC usecase.FavoriteUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler.
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		reviewUC:   params.ReviewUC,
		favoriteUC: params.FavoriteUC,
	}
}

// CreateReviewRequest represents the request body for reviewing a product.
type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"max=2000"`
}

// AddFavoriteRequest represents the request body for favoriting a product.
type AddFavoriteRequest struct {
	ProductID   uuid.UUID `json:"product_id" validate:"required"`
	NotifyStock bool      `json:"notify_stock"`
}

// StockAlertRequest switches the restock alert of a favorite.
type StockAlertRequest struct {
	Enabled bool `json:"enabled"`
}

// --- Reviews ---

// CreateReview records the caller's review of a product.
func (h *EngagementHandler) CreateReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req CreateReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), userID, &usecase.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// DeleteReview removes one of the caller's reviews.
func (h *EngagementHandler) DeleteReview(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reviewUC.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Review deleted")
}

// ListProductReviews lists the reviews of a product.
func (h *EngagementHandler) ListProductReviews(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reviews, err := h.reviewUC.ListProductReviews(c.Request().Context(), productID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithPage(c, reviews, &response.PageInfo{Limit: limit, Offset: offset})
}

// ProductRating summarizes the ratings of a product.
func (h *EngagementHandler) ProductRating(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.reviewUC.ProductRating(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// SellerRating summarizes the ratings across a seller's products.
func (h *EngagementHandler) SellerRating(c echo.Context) error {
	sellerID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.reviewUC.SellerRating(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// --- Favorites ---

// AddFavorite adds a product to the caller's favorites.
func (h *EngagementHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req AddFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, req.ProductID, req.NotifyStock)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite)
}

// ListFavorites lists the caller's favorites.
func (h *EngagementHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites)
}

// RemoveFavorite removes a product from the caller's favorites.
func (h *EngagementHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Favorite removed")
}

// SetStockAlert switches the restock alert of one of the caller's favorites.
func (h *EngagementHandler) SetStockAlert(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req StockAlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.SetStockAlert(c.Request().Context(), userID, productID, req.Enabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Stock alert updated")
}

// PopularProducts lists the most favorited products.
func (h *EngagementHandler) PopularProducts(c echo.Context) error {
	limit, _, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	popular, err := h.favoriteUC.MostFavorited(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, popular)
}
