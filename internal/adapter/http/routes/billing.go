package routes

import (
	"meditrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBills    = "/bills"
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, billHandler *handlers.BillHandler) {
	bills := rg.Group(PathBills)
	{
		bills.GET("/:id", billHandler.GetBill)
		bills.POST("/:id/payments", billHandler.PayBill)
		bills.GET("/:id/payments", billHandler.ListBillPayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", billHandler.GetPayment)
	}
}
