package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/transport/api/tokens"
)

type MiddlewaresTestSuite struct {
	suite.Suite
	secret []byte
}

func TestMiddlewaresSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(MiddlewaresTestSuite))
}

func (s *MiddlewaresTestSuite) SetupTest() {
	s.secret = []byte("middleware secret")
}

func (s *MiddlewaresTestSuite) serve(r *gin.Engine, token string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func (s *MiddlewaresTestSuite) TestAuth() {
	r := gin.New()
	r.Use(Errors())
	var gotUserID uuid.UUID
	admin := r.Group("/", AuthRequired(s.secret), AdminRequired())
	admin.GET("/", func(c *gin.Context) {
		gotUserID, _ = c.MustGet(CurrentUserIDKey).(uuid.UUID)
		c.Status(http.StatusOK)
	})

	userID, adminID := uuid.New(), uuid.New()
	userToken, userErr := tokens.GenerateUserJWT(userID, domain.RoleUser, time.Hour, s.secret)
	s.Require().NoError(userErr)
	adminToken, adminErr := tokens.GenerateUserJWT(adminID, domain.RoleAdmin, time.Hour, s.secret)
	s.Require().NoError(adminErr)
	foreignToken, foreignErr := tokens.GenerateUserJWT(adminID, domain.RoleAdmin, time.Hour, []byte("x"))
	s.Require().NoError(foreignErr)

	s.Equal(http.StatusUnauthorized, s.serve(r, ""))
	s.Equal(http.StatusUnauthorized, s.serve(r, foreignToken))
	s.Equal(http.StatusForbidden, s.serve(r, userToken))
	s.Equal(http.StatusOK, s.serve(r, adminToken))
	s.Equal(adminID, gotUserID)
}

func (s *MiddlewaresTestSuite) TestRateLimiter() {
	limiter := NewRateLimiter(1, 2)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.GET("/", AuthRequired(s.secret), limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first, firstErr := tokens.GenerateUserJWT(uuid.New(), domain.RoleUser, time.Hour, s.secret)
	s.Require().NoError(firstErr)
	second, secondErr := tokens.GenerateUserJWT(uuid.New(), domain.RoleUser, time.Hour, s.secret)
	s.Require().NoError(secondErr)

	s.Equal(http.StatusOK, s.serve(r, first))
	s.Equal(http.StatusOK, s.serve(r, first))
	s.Equal(http.StatusTooManyRequests, s.serve(r, first))
	// Лимит считается отдельно для каждого пользователя.
	s.Equal(http.StatusOK, s.serve(r, second))

	now = now.Add(time.Second)
	s.Equal(http.StatusOK, s.serve(r, first))
}

func (s *MiddlewaresTestSuite) TestErrors() {
	type payload struct {
		Amount int64 `json:"amount" binding:"required,gt=0"`
	}

	r := gin.New()
	r.Use(Errors())
	r.POST("/bind", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		}
	})
	r.GET("/public", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("amount must be positive")).
			SetType(gin.ErrorTypePublic)
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.AbortWithError(http.StatusInternalServerError, errors.New("pq: connection reset")).
			SetType(gin.ErrorTypePrivate)
	})

	decode := func(w *httptest.ResponseRecorder) ErrorResponse {
		var response ErrorResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	bindW := httptest.NewRecorder()
	r.ServeHTTP(bindW, httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"amount":0}`)))
	s.Equal(http.StatusBadRequest, bindW.Code)
	bindResponse := decode(bindW)
	s.Equal("bad request", bindResponse.Error)
	s.Equal(map[string]string{"Amount": "required"}, bindResponse.Fields)

	publicW := httptest.NewRecorder()
	r.ServeHTTP(publicW, httptest.NewRequest(http.MethodGet, "/public", nil))
	s.Equal(http.StatusUnprocessableEntity, publicW.Code)
	s.Equal("amount must be positive", decode(publicW).Error)

	privateW := httptest.NewRecorder()
	r.ServeHTTP(privateW, httptest.NewRequest(http.MethodGet, "/private", nil))
	s.Equal(http.StatusInternalServerError, privateW.Code)
	privateResponse := decode(privateW)
	s.Equal("internal server error", privateResponse.Error)
	s.Empty(privateResponse.Fields)
}
