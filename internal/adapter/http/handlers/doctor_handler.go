package handlers

import (
	"log"
	"net/http"
	"strings"

	request "meditrack/internal/adapter/http/dto/request"
	response "meditrack/internal/adapter/http/dto/response"
	"meditrack/internal/domain/entities"
	"meditrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles HTTP requests for the doctor registry.
type DoctorHandler struct {
	usecase usecase.IDoctorUseCase
}

func NewDoctorHandler(uc usecase.IDoctorUseCase) *DoctorHandler {
	return &DoctorHandler{usecase: uc}
}

// CreateDoctor godoc
// @Summary Register a doctor
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctor body request.DoctorRequest true "Doctor"
// @Success 201 {object} response.DoctorResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /doctors [post]
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var payload request.DoctorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[doctor][handler] invalid payload err=%v", err)
		abortInvalidPayload(c)
		return
	}

	d, err := h.usecase.Add(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromDoctor(d))
}

// UpdateDoctor godoc
// @Summary Replace a doctor's details
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID"
// @Param doctor body request.DoctorRequest true "Doctor"
// @Success 200 {object} response.DoctorResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /doctors/{id} [put]
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var payload request.DoctorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c)
		return
	}

	d, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDoctor(d))
}

// GetDoctor godoc
// @Summary Get a doctor
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.DoctorResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDoctor(d))
}

// ListDoctors godoc
// @Summary List doctors
// @Description Filters are exclusive and checked in order: specialization, name, sort=fee.
// @Tags doctors
// @Produce json
// @Param specialization query string false "Specialization"
// @Param name query string false "Name fragment"
// @Param sort query string false "fee"
// @Success 200 {array} response.DoctorResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	var (
		list []entities.Doctor
		err  error
	)
	ctx := c.Request.Context()
	switch {
	case c.Query("specialization") != "":
		list, err = h.usecase.FindBySpecialization(ctx, c.Query("specialization"))
	case c.Query("name") != "":
		list, err = h.usecase.SearchByName(ctx, c.Query("name"))
	case strings.EqualFold(c.Query("sort"), "fee"):
		list, err = h.usecase.SortByFee(ctx)
	default:
		list, err = h.usecase.List(ctx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDoctors(list))
}

// DeleteDoctor godoc
// @Summary Remove a doctor
// @Tags doctors
// @Param id path string true "Doctor ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /doctors/{id} [delete]
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
