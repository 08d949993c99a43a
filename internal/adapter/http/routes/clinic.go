package routes

import (
	"meditrack/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDoctors         = "/doctors"
	PathPatients        = "/patients"
	PathAppointments    = "/appointments"
	PathRecommendations = "/recommendations"
)

func addClinicRoutes(
	rg *gin.RouterGroup,
	doctorHandler *handlers.DoctorHandler,
	patientHandler *handlers.PatientHandler,
	appointmentHandler *handlers.AppointmentHandler,
	recommendationHandler *handlers.RecommendationHandler,
) {
	doctors := rg.Group(PathDoctors)
	{
		doctors.POST("", doctorHandler.CreateDoctor)
		doctors.GET("", doctorHandler.ListDoctors)
		doctors.GET("/:id", doctorHandler.GetDoctor)
		doctors.PUT("/:id", doctorHandler.UpdateDoctor)
		doctors.DELETE("/:id", doctorHandler.DeleteDoctor)
	}

	patients := rg.Group(PathPatients)
	{
		patients.POST("", patientHandler.CreatePatient)
		patients.GET("", patientHandler.ListPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.PUT("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", appointmentHandler.CreateAppointment)
		appointments.GET("", appointmentHandler.ListAppointments)
		appointments.GET("/:id", appointmentHandler.GetAppointment)
		appointments.PATCH("/:id/cancel", appointmentHandler.CancelAppointment)
		appointments.POST("/:id/bill", appointmentHandler.GenerateBill)
	}

	recommendations := rg.Group(PathRecommendations)
	{
		recommendations.POST("", recommendationHandler.Recommend)
		recommendations.GET("/slots", recommendationHandler.Slots)
	}
}
