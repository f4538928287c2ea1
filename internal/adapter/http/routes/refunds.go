package routes

import (
	"decidir_refunds/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addRefundRoutes(rg *gin.RouterGroup, refundHandler *handlers.RefundHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id/refunds", refundHandler.GetRefunds)
		payments.POST("/:payment_id/refunds", refundHandler.RefundPayment)
		payments.DELETE("/:payment_id/refunds/:refund_id", refundHandler.CancelRefund)
		payments.GET("/:payment_id/refund-operations", refundHandler.ListRefundOperations)
	}
}
