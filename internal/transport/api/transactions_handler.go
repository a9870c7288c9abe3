package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/service"
)

type TransactionsHandler struct {
	svs TransactionServicer
}

func NewTransactionsHandler(svs TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{
		svs: svs,
	}
}

// Index GET RouteGroup + TransactionsRoute.
func (t *TransactionsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := t.svs.ListForUser(reqCtx, currentUserID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newTransactionsResponse(transactions))
}

type LoadParams struct {
	Method      domain.TransactionType `json:"method" binding:"required,load_method"`
	AmountCents int64                  `json:"amount_cents" binding:"required,gt=0"`
	Memo        string                 `json:"memo" binding:"max_bytes=1024"`
}

// Load POST RouteGroup + LoadsRoute. Заявка на пополнение уходит на рассмотрение администратору.
func (t *TransactionsHandler) Load(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params LoadParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.svs.SubmitLoad(reqCtx, service.SubmitLoadArgs{
		UserID:      currentUserID,
		Method:      params.Method,
		AmountCents: params.AmountCents,
		Memo:        params.Memo,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(transaction))
}

type TransferParams struct {
	ReceiverID  uuid.UUID `json:"receiver_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Memo        string    `json:"memo" binding:"max_bytes=1024"`
}

// Transfer POST RouteGroup + TransfersRoute.
func (t *TransactionsHandler) Transfer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.svs.SubmitTransfer(reqCtx, service.SubmitTransferArgs{
		SenderID:    currentUserID,
		ReceiverID:  params.ReceiverID,
		AmountCents: params.AmountCents,
		Memo:        params.Memo,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

type PayoutParams struct {
	BankID      string             `json:"bank_id" binding:"required,max_bytes=128"`
	AmountCents int64              `json:"amount_cents" binding:"required,gt=0"`
	Speed       domain.PayoutSpeed `json:"speed" binding:"omitempty,payout_speed"`
}

// Payout POST RouteGroup + PayoutsRoute.
func (t *TransactionsHandler) Payout(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params PayoutParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := t.svs.SubmitPayout(reqCtx, service.SubmitPayoutArgs{
		UserID:      currentUserID,
		BankID:      params.BankID,
		AmountCents: params.AmountCents,
		Speed:       params.Speed,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, newTransactionResponse(transaction))
}
