package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"victorianails-backend/store"
	"victorianails-backend/utils"
	"victorianails-backend/views"
)

// DashboardController serves the calendar overview for a selected day.
type DashboardController struct {
	Store *store.AppointmentStore
}

// GetDashboardOverview returns the day's appointments in slot order,
// the day's revenue, and the whole-book totals the calendar sidebar
// renders. ?date=YYYY-MM-DD selects the day; default is today.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	c.JSON(http.StatusOK, views.Summarize(dc.Store.List(), day))
}
