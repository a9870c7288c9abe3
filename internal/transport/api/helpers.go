package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/repository/repoargs"
	"github.com/fsdevblog/paywallet/internal/transport/api/middlewares"
)

const maxPageLimit = 200

// getUserIDFromContext берет из контекста gin ID текущего пользователя. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет, вернется uuid.Nil.
func getUserIDFromContext(c *gin.Context) uuid.UUID {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return uuid.Nil
	}
	id, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// idParam разбирает параметр пути :id. При ошибке прерывает запрос со статусом 404.
func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// pageFromQuery постраничный вывод по параметрам limit и offset. Некорректные значения игнорируются.
func pageFromQuery(c *gin.Context) repoargs.Page {
	var page repoargs.Page
	if limit, err := strconv.ParseUint(c.Query("limit"), 10, 32); err == nil {
		page.Limit = uint(min(limit, maxPageLimit))
	}
	if offset, err := strconv.ParseUint(c.Query("offset"), 10, 32); err == nil {
		page.Offset = uint(offset)
	}
	return page
}

// abortWithServiceError преобразует ошибку сервисного слоя в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, validationErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotAuthorized):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrInsufficientFunds):
		_ = c.AbortWithError(http.StatusPaymentRequired, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrNoHeldEscrow),
		errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
