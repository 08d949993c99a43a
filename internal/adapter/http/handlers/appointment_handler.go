package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "meditrack/internal/adapter/http/dto/request"
	response "meditrack/internal/adapter/http/dto/response"
	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves scheduling plus bill issuance, which is keyed by appointment.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
	billing usecase.IBillingUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase, billing usecase.IBillingUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc, billing: billing}
}

// CreateAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body request.AppointmentRequest true "Appointment"
// @Success 201 {object} response.AppointmentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c)
		return
	}

	a, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAppointment(a))
}

// GetAppointment godoc
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// ListAppointments godoc
// @Summary List appointments
// @Tags appointments
// @Produce json
// @Param doctor_id query string false "Doctor ID"
// @Param patient_id query string false "Patient ID"
// @Success 200 {array} response.AppointmentResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var (
		list []entities.Appointment
		err  error
	)
	ctx := c.Request.Context()
	switch {
	case c.Query("doctor_id") != "":
		list, err = h.usecase.ListByDoctorID(ctx, c.Query("doctor_id"))
	case c.Query("patient_id") != "":
		list, err = h.usecase.ListByPatientID(ctx, c.Query("patient_id"))
	default:
		list, err = h.usecase.List(ctx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointments(list))
}

// CancelAppointment godoc
// @Summary Cancel an appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.AppointmentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /appointments/{id}/cancel [patch]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	a, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppointment(a))
}

// GenerateBill godoc
// @Summary Issue the bill for an appointment
// @Description Without a strategy the bill is itemized at the default tax rate.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param bill body request.BillRequest false "Pricing strategy"
// @Success 201 {object} response.BillResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /appointments/{id}/bill [post]
func (h *AppointmentHandler) GenerateBill(c *gin.Context) {
	appointmentID := c.Param("id")
	var payload request.BillRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("[billing][handler] invalid payload appointment_id=%s err=%v", appointmentID, err)
		abortInvalidPayload(c)
		return
	}

	b, err := h.billing.GenerateForAppointment(c.Request.Context(), appointmentID, payload.Strategy)
	if err != nil {
		log.Printf("[billing][handler] generate failed appointment_id=%s err=%v", appointmentID, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBill(b))
}
