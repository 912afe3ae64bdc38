// controllers/appointment.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"victorianails-backend/config"
	"victorianails-backend/models"
	"victorianails-backend/store"
	"victorianails-backend/utils"
	"victorianails-backend/views"
)

// AppointmentController exposes the appointment book over HTTP.
// Required-field and numeric validation lives here, at the boundary;
// the store trusts its callers.
type AppointmentController struct {
	Store *store.AppointmentStore
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	ClientName      string               `json:"clientName" binding:"required"`
	ClientPhone     string               `json:"clientPhone" binding:"required"`
	ServiceName     string               `json:"serviceName" binding:"required"`
	Date            time.Time            `json:"date" binding:"required"`
	TimeSlot        string               `json:"timeSlot" binding:"required"`
	DurationMinutes int                  `json:"durationMinutes" binding:"required,min=1"`
	Price           float64              `json:"price" binding:"min=0"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" binding:"required"`
	Notes           string               `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for edits.
// Absent fields are left untouched. Status set through here bypasses
// the transition graph on purpose, matching the permissive merge the
// edit form always had; the status endpoint is the strict path.
type UpdateAppointmentInput struct {
	ClientName      *string               `json:"clientName"`
	ClientPhone     *string               `json:"clientPhone"`
	ServiceName     *string               `json:"serviceName"`
	Date            *time.Time            `json:"date"`
	TimeSlot        *string               `json:"timeSlot"`
	DurationMinutes *int                  `json:"durationMinutes"`
	Price           *float64              `json:"price"`
	PaymentMethod   *models.PaymentMethod `json:"paymentMethod"`
	Status          *models.Status        `json:"status"`
	Notes           *string               `json:"notes"`
}

// CreateAppointment books a new appointment
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.PaymentMethod.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
		return
	}

	if !utils.ValidatePhone(input.ClientPhone) {
		config.Logger.Debug("client phone not in international format",
			zap.String("phone", input.ClientPhone))
	}

	appointment := ac.Store.Create(models.Appointment{
		ClientName:      input.ClientName,
		ClientPhone:     input.ClientPhone,
		ServiceName:     input.ServiceName,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		PaymentMethod:   input.PaymentMethod,
		Status:          models.StatusPending,
		Notes:           input.Notes,
	})

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists the book; an optional ?date=YYYY-MM-DD filters
// to that day in time-slot order.
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	list := ac.Store.List()

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		list = views.SortByTimeSlot(views.OnDay(list, day))
	}

	c.JSON(http.StatusOK, list)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	appointment, ok := ac.Store.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment applies a partial edit to an existing appointment
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.PaymentMethod != nil && !input.PaymentMethod.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid payment method")
		return
	}
	if input.Status != nil && !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	id := c.Param("id")
	ok := ac.Store.Update(id, store.AppointmentPatch{
		ClientName:      input.ClientName,
		ClientPhone:     input.ClientPhone,
		ServiceName:     input.ServiceName,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		PaymentMethod:   input.PaymentMethod,
		Status:          input.Status,
		Notes:           input.Notes,
	})
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	appointment, _ := ac.Store.Get(id)
	c.JSON(http.StatusOK, appointment)
}

type UpdateStatusInput struct {
	Status models.Status `json:"status" binding:"required"`
}

// UpdateStatus performs a validated lifecycle move: confirm, complete
// or cancel. Moves the graph denies are rejected with 409.
func (ac *AppointmentController) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status")
		return
	}

	id := c.Param("id")
	appointment, ok := ac.Store.Get(id)
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	if !models.CanTransition(appointment.Status, input.Status) {
		utils.RespondWithError(c, http.StatusConflict,
			"Cannot move appointment from "+string(appointment.Status)+" to "+string(input.Status))
		return
	}

	ac.Store.SetStatus(id, input.Status)
	appointment, _ = ac.Store.Get(id)
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment outright. Deletion is
// distinct from cancellation and allowed from any status.
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	if !ac.Store.Remove(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
