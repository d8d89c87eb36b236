package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalogHandler(t *testing.T) (*CatalogHandler, *mockUC.MockCategoryUsecase, *mockUC.MockProductUsecase) {
	categoryUC := mockUC.NewMockCategoryUsecase(t)
	productUC := mockUC.NewMockProductUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CategoryUC: categoryUC, ProductUC: productUC}), categoryUC, productUC
}

func TestCatalogHandler_ListProducts_Filters(t *testing.T) {
	h, _, productUC := newTestCatalogHandler(t)
	categoryID := uuid.New()

	productUC.EXPECT().
		ListProducts(mock.Anything, &usecase.ListProductsInput{
			CategoryID:   &categoryID,
			Query:        "jam",
			PreOrderOnly: true,
			Limit:        10,
		}).
		Return(&usecase.ProductPage{Products: []*entity.Product{{ID: uuid.New()}}, Total: 42, Limit: 10}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/products?category_id=" + categoryID.String() + "&q=jam&pre_order=true&limit=10",
	})
	require.NoError(t, h.ListProducts(c))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Meta.Page)
	require.NotNil(t, env.Meta.Page.Total)
	assert.Equal(t, int64(42), *env.Meta.Page.Total)
}

func TestCatalogHandler_ListProducts_BadQuery(t *testing.T) {
	cases := map[string]string{
		"category":  "/api/v1/products?category_id=fruit",
		"pre-order": "/api/v1/products?pre_order=maybe",
		"limit":     "/api/v1/products?limit=-3",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			h, _, _ := newTestCatalogHandler(t)

			c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: target})
			require.NoError(t, h.ListProducts(c))
			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}
}

func TestCatalogHandler_ListMyProducts_ScopesToSeller(t *testing.T) {
	h, _, productUC := newTestCatalogHandler(t)
	sellerID := uuid.New()
	otherSeller := uuid.New()

	productUC.EXPECT().
		ListProducts(mock.Anything, mock.MatchedBy(func(in *usecase.ListProductsInput) bool {
			return in.SellerID != nil && *in.SellerID == sellerID
		})).
		Return(&usecase.ProductPage{}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodGet,
		target: "/api/v1/seller/products?seller_id=" + otherSeller.String(),
		userID: sellerID,
	})
	require.NoError(t, h.ListMyProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	sellerID := uuid.New()

	t.Run("valid", func(t *testing.T) {
		h, _, productUC := newTestCatalogHandler(t)

		productUC.EXPECT().
			CreateProduct(mock.Anything, sellerID, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
				return in.Name == "Plum Jam" && in.Price.Equal(decimal.RequireFromString("4.75")) && in.Stock == 12
			})).
			Return(&entity.Product{ID: uuid.New(), SellerID: sellerID}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/products",
			body:   `{"name":"Plum Jam","price":"4.75","stock":12}`,
			userID: sellerID,
		})
		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("non-positive price", func(t *testing.T) {
		h, _, _ := newTestCatalogHandler(t)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/products",
			body:   `{"name":"Plum Jam","price":"0","stock":12}`,
			userID: sellerID,
		})
		require.NoError(t, h.CreateProduct(c))

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "price")
	})
}

func TestCatalogHandler_UploadProductImage(t *testing.T) {
	h, _, productUC := newTestCatalogHandler(t)
	sellerID := uuid.New()
	productID := uuid.New()
	image := []byte("\x89PNG\r\n\x1a\nfake")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "jam.png")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	productUC.EXPECT().
		UploadImage(mock.Anything, sellerID, productID, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
			return in.FileName == "jam.png" && bytes.Equal(in.Data, image)
		})).
		Return(&entity.Product{ID: productID, ImageKey: "products/jam.png"}, nil)

	c, rec := newTestContext(t, testRequest{
		method:      http.MethodPost,
		target:      "/api/v1/seller/products/" + productID.String() + "/image",
		body:        body.String(),
		contentType: writer.FormDataContentType(),
		userID:      sellerID,
		params:      map[string]string{"id": productID.String()},
	})
	require.NoError(t, h.UploadProductImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_UploadProductImage_MissingFile(t *testing.T) {
	h, _, _ := newTestCatalogHandler(t)
	productID := uuid.New()

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/seller/products/" + productID.String() + "/image",
		userID: uuid.New(),
		params: map[string]string{"id": productID.String()},
	})
	require.NoError(t, h.UploadProductImage(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestCatalogHandler_CreateCategory_DefaultsActive(t *testing.T) {
	h, categoryUC, _ := newTestCatalogHandler(t)

	categoryUC.EXPECT().
		CreateCategory(mock.Anything, &usecase.CategoryInput{Name: "Preserves", Active: true}).
		Return(&entity.Category{ID: uuid.New(), Name: "Preserves", Active: true}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/api/v1/seller/categories",
		body:   `{"name":"Preserves"}`,
		userID: uuid.New(),
	})
	require.NoError(t, h.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
