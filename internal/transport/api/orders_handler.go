package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/paywallet/internal/service"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

// Index GET RouteGroup + OrdersRoute. Заказы, где текущий пользователь покупатель или продавец.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.ListForUser(reqCtx, currentUserID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newOrdersResponse(orders))
}

type CreateOrderParams struct {
	SellerHandle    string `json:"seller_handle" binding:"required,max_bytes=64"`
	AmountCents     int64  `json:"amount_cents" binding:"required,gt=0"`
	ItemDescription string `json:"item_description" binding:"required,max=512"`
}

// Create POST RouteGroup + OrdersRoute. Создает заказ и сразу открывает эскроу.
func (o *OrdersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, holds, err := o.orderSvs.CreateOrder(reqCtx, service.CreateOrderArgs{
		BuyerID:         currentUserID,
		SellerHandle:    params.SellerHandle,
		AmountCents:     params.AmountCents,
		ItemDescription: params.ItemDescription,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateOrderResponse{
		Order: newOrderResponse(order),
		Holds: newEscrowResponse(holds),
	})
}

// ConfirmPayment POST RouteGroup + OrderPaymentRoute.
func (o *OrdersHandler) ConfirmPayment(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.ConfirmPayment(reqCtx, orderID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

type TrackingParams struct {
	Carrier        string `json:"carrier" binding:"required,max_bytes=64"`
	TrackingNumber string `json:"tracking_number" binding:"required,max_bytes=128"`
}

// SubmitTracking POST RouteGroup + OrderTrackingRoute. Данные отправления от продавца.
func (o *OrdersHandler) SubmitTracking(c *gin.Context) {
	orderID, ok := idParam(c)
	if !ok {
		return
	}

	var params TrackingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.SubmitTracking(reqCtx, service.SubmitTrackingArgs{
		OrderID:        orderID,
		SellerID:       getUserIDFromContext(c),
		Carrier:        params.Carrier,
		TrackingNumber: params.TrackingNumber,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Escrow GET RouteGroup + EscrowRoute.
func (o *OrdersHandler) Escrow(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	holds, err := o.orderSvs.ListEscrow(reqCtx, currentUserID, pageFromQuery(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newEscrowResponse(holds))
}
