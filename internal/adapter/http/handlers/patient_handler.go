package handlers

import (
	"net/http"
	"strconv"

	request "meditrack/internal/adapter/http/dto/request"
	response "meditrack/internal/adapter/http/dto/response"
	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	usecase usecase.IPatientUseCase
}

func NewPatientHandler(uc usecase.IPatientUseCase) *PatientHandler {
	return &PatientHandler{usecase: uc}
}

// CreatePatient godoc
// @Summary Register a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body request.PatientRequest true "Patient"
// @Success 201 {object} response.PatientResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload request.PatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c)
		return
	}

	p, err := h.usecase.Add(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPatient(p))
}

// UpdatePatient godoc
// @Summary Replace a patient's details
// @Tags patients
// @Accept json
// @Produce json
// @Param id path string true "Patient ID"
// @Param patient body request.PatientRequest true "Patient"
// @Success 200 {object} response.PatientResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var payload request.PatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c)
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPatient(p))
}

// GetPatient godoc
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Param id path string true "Patient ID"
// @Success 200 {object} response.PatientResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPatient(p))
}

// ListPatients godoc
// @Summary List patients
// @Tags patients
// @Produce json
// @Param name query string false "Name fragment"
// @Param age query int false "Exact age"
// @Success 200 {array} response.PatientResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c *gin.Context) {
	var (
		list []entities.Patient
		err  error
	)
	ctx := c.Request.Context()
	switch {
	case c.Query("name") != "":
		list, err = h.usecase.SearchByName(ctx, c.Query("name"))
	case c.Query("age") != "":
		age, convErr := strconv.Atoi(c.Query("age"))
		if convErr != nil {
			abortInvalidPayload(c)
			return
		}
		list, err = h.usecase.SearchByAge(ctx, age)
	default:
		list, err = h.usecase.List(ctx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPatients(list))
}

// DeletePatient godoc
// @Summary Remove a patient
// @Tags patients
// @Param id path string true "Patient ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
