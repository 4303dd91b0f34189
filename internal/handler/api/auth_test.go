//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"caja-api/internal/handler/api"
	resdto "caja-api/internal/handler/dto/response"
	"caja-api/internal/pkg/config"
	"caja-api/internal/pkg/jwt"
	"caja-api/internal/usecase"
	"caja-api/tests/common/builder"
	"caja-api/tests/common/httptest"
	"caja-api/tests/common/testutil"
	usecasemock "caja-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *usecasemock.MockAuthUseCase
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	mockJWTService := &jwt.Service{} // Mock JWT service for testing
	s.handler = api.NewAuthHandler(s.mockAuth, mockJWTService, config.NewTestConfig().Cookie)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("member_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewMemberBuilder().BuildLoginRequestDTO()
	returnMember := builder.NewMemberBuilder().BuildReadModel()
	tokenPair := &jwt.TokenPair{AccessToken: "test-jwt-token", RefreshToken: "test-refresh-token"}

	s.Run("success: returns 200 OK for valid credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(tokenPair, returnMember, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnMember.Username, response.Member.Username)
		s.Equal(tokenPair.AccessToken, response.AccessToken)

		accessCookie := httptest.ExtractCookie(rec, "access_token")
		s.NotNil(accessCookie)
		s.Equal(tokenPair.AccessToken, accessCookie.Value)
	})

	s.Run("error: 401 Unauthorized for wrong credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(nil, nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
	})

	s.Run("error: 403 Forbidden for pending account", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(nil, nil, usecase.ErrMemberPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "pending approval")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := builder.NewMemberBuilder().BuildRegisterRequestDTO()
	returnMember := builder.NewMemberBuilder().BuildReadModel()

	s.Run("success: returns 201 Created", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), usecase.RegisterParams{
			Username: reqBody.Username,
			Email:    reqBody.Email,
			Password: reqBody.Password,
		}).Return(returnMember, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnMember.Username, response.Username)
		s.Equal(returnMember.Email, response.Email)
	})

	s.Run("error: 409 Conflict for duplicate username", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicateMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already in use")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "username boundary OK (2 chars)", mutate: testutil.Field("username", "ab"), expectCode: http.StatusCreated},
			{name: "username boundary invalid (1 char)", mutate: testutil.Field("username", "a"), expectCode: http.StatusBadRequest},
			{name: "username boundary invalid (33 chars)", mutate: testutil.Field("username", strings.Repeat("a", 33)), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusCreated},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "email invalid format", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		for _, testCaseGroup := range [][]testCaseAuth{bound, missing} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
							Return(returnMember, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	returnMember := builder.NewMemberBuilder().BuildReadModel()

	s.Run("success: returns 200 OK for authenticated member", func() {
		s.mockAuth.EXPECT().GetCurrentMember(gomock.Any(), gomock.Any()).
			Return(returnMember, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.MemberResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnMember.Username, response.Username)
	})

	s.Run("error: 401 Unauthorized without member context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "not authenticated")
	})

	s.Run("error: 404 Not Found when account was deleted", func() {
		s.mockAuth.EXPECT().GetCurrentMember(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrMemberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
