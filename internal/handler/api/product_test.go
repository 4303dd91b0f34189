//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"caja-api/internal/domain/product"
	"caja-api/internal/handler/api"
	reqdto "caja-api/internal/handler/dto/request"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/usecase"
	"caja-api/internal/usecase/readmodel"
	"caja-api/tests/common/builder"
	"caja-api/tests/common/httptest"
	"caja-api/tests/common/testutil"
	usecasemock "caja-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockProduct *usecasemock.MockProductUseCase
	handler     *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProduct = usecasemock.NewMockProductUseCase(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockProduct)

	s.router.POST("/products", s.handler.CreateProduct)
	s.router.GET("/products", s.handler.ListProducts)
	s.router.GET("/products/:id", s.handler.GetProduct)
	s.router.PUT("/products/:id", s.handler.UpdateProduct)
	s.router.DELETE("/products/:id", s.handler.DeleteProduct)
	s.router.POST("/products/import", s.handler.ImportProducts)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestCreateProduct() {
	url := "/products"

	reqBody := builder.NewProductBuilder().BuildRequestDTO()
	returnProduct := builder.NewProductBuilder().BuildReadModel()

	s.Run("successful creation", func() {
		s.mockProduct.EXPECT().
			CreateProduct(gomock.Any(), reqBody.ToParams()).
			Return(returnProduct, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &response)
		s.Equal(returnProduct.Name, response.Name)
		s.True(returnProduct.Price.Equal(response.Price))
	})

	s.Run("domain rejection", func() {
		s.mockProduct.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any()).
			Return(nil, product.ErrNegativePrice)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid product data")
	})

	s.Run("validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{"missing name", testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))},
			{"missing price", testutil.DtoMap(s.T(), reqBody, testutil.Field("price", nil))},
			{"negative stock", testutil.DtoMap(s.T(), reqBody, testutil.Field("stock", -5))},
			{"unknown category", testutil.DtoMap(s.T(), reqBody, testutil.Field("category", "farmacia"))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "")

				httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestGetProduct() {
	returnProduct := builder.NewProductBuilder().BuildReadModel()

	s.Run("found", func() {
		s.mockProduct.EXPECT().
			GetProduct(gomock.Any(), returnProduct.ID).
			Return(returnProduct, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/products/%s", returnProduct.ID), nil, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(returnProduct.ID, response.ID)
	})

	s.Run("not found", func() {
		unknownID := uuid.New()
		s.mockProduct.EXPECT().
			GetProduct(gomock.Any(), unknownID).
			Return(nil, usecase.ErrProductNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			fmt.Sprintf("/products/%s", unknownID), nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})

	s.Run("invalid id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid product ID")
	})
}

func (s *ProductHandlerTestSuite) TestUpdateProduct() {
	reqBody := builder.NewProductBuilder().WithPrice("40").BuildRequestDTO()
	returnProduct := builder.NewProductBuilder().WithPrice("40").BuildReadModel()

	s.Run("successful update", func() {
		s.mockProduct.EXPECT().
			UpdateProduct(gomock.Any(), returnProduct.ID, reqBody.ToParams()).
			Return(returnProduct, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			fmt.Sprintf("/products/%s", returnProduct.ID), reqBody, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.True(response.Price.Equal(returnProduct.Price))
	})

	s.Run("not found", func() {
		unknownID := uuid.New()
		s.mockProduct.EXPECT().
			UpdateProduct(gomock.Any(), unknownID, gomock.Any()).
			Return(nil, usecase.ErrProductNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			fmt.Sprintf("/products/%s", unknownID), reqBody, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestDeleteProduct() {
	s.Run("successful deletion", func() {
		id := uuid.New()
		s.mockProduct.EXPECT().
			DeleteProduct(gomock.Any(), id).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/products/%s", id), nil, "")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockProduct.EXPECT().
			DeleteProduct(gomock.Any(), id).
			Return(usecase.ErrProductNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			fmt.Sprintf("/products/%s", id), nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestListProducts() {
	s.Run("returns catalog", func() {
		returned := []*readmodel.ProductRM{
			builder.NewProductBuilder().BuildReadModel(),
			builder.NewProductBuilder().WithName("Refresco").WithCategory("fridge").BuildReadModel(),
		}
		s.mockProduct.EXPECT().
			ListProducts(gomock.Any()).
			Return(returned, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *ProductHandlerTestSuite) TestImportProducts() {
	url := "/products/import"

	reqBody := reqdto.ImportProductsRequest{
		Products: []reqdto.ProductRequest{
			builder.NewProductBuilder().BuildRequestDTO(),
			builder.NewProductBuilder().WithName("Refresco").WithCategory("fridge").BuildRequestDTO(),
		},
	}

	s.Run("successful import", func() {
		s.mockProduct.EXPECT().
			ImportProducts(gomock.Any(), reqBody.ToParams()).
			Return(2, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ImportProductsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(2, response.Imported)
	})

	s.Run("empty product list", func() {
		body := map[string]any{"products": []any{}}

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("invalid row fails the batch", func() {
		body := map[string]any{"products": []any{
			testutil.DtoMap(s.T(), builder.NewProductBuilder().BuildRequestDTO(), testutil.Field("price", nil)),
		}}

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}
