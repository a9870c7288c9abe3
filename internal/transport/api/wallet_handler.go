package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	svs LedgerServicer
}

func NewWalletHandler(svs LedgerServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

// Index GET RouteGroup + WalletRoute.
func (w *WalletHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet, err := w.svs.GetBalance(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newWalletResponse(wallet))
}
