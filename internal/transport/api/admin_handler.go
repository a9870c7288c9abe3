package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/internal/service"
)

const sweepTimeout = time.Minute

type AdminHandler struct {
	txSvs    TransactionServicer
	orderSvs OrderServicer
	statsSvs StatsServicer
	sweeper  Sweeper
}

func NewAdminHandler(
	txSvs TransactionServicer,
	orderSvs OrderServicer,
	statsSvs StatsServicer,
	sweeper Sweeper,
) *AdminHandler {
	return &AdminHandler{
		txSvs:    txSvs,
		orderSvs: orderSvs,
		statsSvs: statsSvs,
		sweeper:  sweeper,
	}
}

// PendingTransactions GET RouteGroup + AdminPendingTransactionsRoute.
func (a *AdminHandler) PendingTransactions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := a.txSvs.ListPending(reqCtx, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newTransactionsResponse(transactions))
}

type DecisionParams struct {
	Action domain.DecisionAction `json:"action" binding:"required,oneof=APPROVE REJECT"`
	Reason string                `json:"reason" binding:"max_bytes=1024"`
}

// DecideTransaction POST RouteGroup + AdminTransactionDecisionRoute.
//
// Повторное решение по уже обработанной транзакции возвращает сохраненную транзакцию: со статусом 200,
// если повторяется то же решение, и 409, если решение противоположное.
func (a *AdminHandler) DecideTransaction(c *gin.Context) {
	transactionID, ok := idParam(c)
	if !ok {
		return
	}

	var params DecisionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := a.txSvs.Decide(reqCtx, service.DecideArgs{
		TransactionID: transactionID,
		AdminID:       getUserIDFromContext(c),
		Action:        params.Action,
		Reason:        params.Reason,
	})
	if err != nil {
		var processedErr *domain.AlreadyProcessedError
		if errors.As(err, &processedErr) {
			statusCode := http.StatusConflict
			if processedErr.Transaction.ApprovalStatus == params.Action.Outcome() {
				statusCode = http.StatusOK
			}
			c.AbortWithStatusJSON(statusCode, newTransactionResponse(processedErr.Transaction))
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(transaction))
}

// PendingTracking GET RouteGroup + AdminPendingTrackingRoute.
func (a *AdminHandler) PendingTracking(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orders, err := a.orderSvs.ListPendingTracking(reqCtx, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

type TrackingDecisionParams struct {
	Approved *bool `json:"approved" binding:"required"`
}

// DecideTracking POST RouteGroup + AdminTrackingDecisionRoute.
func (a *AdminHandler) DecideTracking(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	var params TrackingDecisionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := a.orderSvs.DecideTracking(reqCtx, orderID, *params.Approved)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Release POST RouteGroup + AdminReleaseRoute. Повторный release завершенного заказа отдает заказ со статусом 200.
func (a *AdminHandler) Release(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := a.orderSvs.ReleaseOrder(reqCtx, orderID)
	if err != nil {
		var noHeldErr *domain.NoHeldEscrowError
		if errors.As(err, &noHeldErr) && noHeldErr.AlreadyReleased() {
			c.JSON(http.StatusOK, newOrderResponse(noHeldErr.Order))
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

type FundParams struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Note        string    `json:"note" binding:"max_bytes=1024"`
}

// Fund POST RouteGroup + AdminFundRoute.
func (a *AdminHandler) Fund(c *gin.Context) {
	var params FundParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := a.txSvs.FundWallet(reqCtx, service.FundWalletArgs{
		AdminID:     getUserIDFromContext(c),
		UserID:      params.UserID,
		AmountCents: params.AmountCents,
		Note:        params.Note,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTransactionResponse(transaction))
}

// Stats GET RouteGroup + AdminStatsRoute.
func (a *AdminHandler) Stats(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := a.statsSvs.PlatformStats(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalUsers:          stats.TotalUsers,
		TotalDepositedCents: stats.TotalDepositedCents,
		Volume30dCents:      stats.Volume30dCents,
		ActiveToday:         stats.ActiveToday,
	})
}

// SweepDeliveries POST RouteGroup + AdminSweepDeliveriesRoute.
func (a *AdminHandler) SweepDeliveries(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, sweepTimeout)
	defer cancel()

	result, err := a.sweeper.SweepDeliveries(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SweepReleases POST RouteGroup + AdminSweepReleasesRoute.
func (a *AdminHandler) SweepReleases(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, sweepTimeout)
	defer cancel()

	result, err := a.sweeper.SweepReleases(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, result)
}
