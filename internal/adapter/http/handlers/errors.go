package handlers

import (
	"errors"
	"net/http"

	"meditrack/internal/domain/errs"
	"meditrack/internal/usecase"
	"meditrack/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapError turns use-case errors into the HTTP envelope. Specific sentinels
// are checked before the generic kinds they wrap.
func mapError(err error) *pkg.AppError {
	var verr *errs.ValidationError
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		return pkg.NewDomainErrorSimple("DOCTOR_NOT_FOUND", "Doctor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, errs.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentCancelled):
		return pkg.NewDomainErrorSimple("APPOINTMENT_CANCELLED", "Appointment is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillAlreadyPaid):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_PAID", "Bill already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, errs.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Invalid input", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortInvalidPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
