// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"victorianails-backend/models"
	"victorianails-backend/store"
	"victorianails-backend/utils"
)

// ServiceController exposes the service catalog over HTTP. Deleting a
// catalog entry never touches appointments that booked it: they carry
// snapshot copies of price and duration.
type ServiceController struct {
	Catalog *store.ServiceCatalog
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,min=1"`
	Price           float64 `json:"price" binding:"min=0"`
	Description     string  `json:"description"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	DurationMinutes *int     `json:"durationMinutes"`
	Price           *float64 `json:"price"`
	Description     *string  `json:"description"`
}

// CreateService adds a new offering to the catalog
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := sc.Catalog.Create(models.Service{
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Description:     input.Description,
	})

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the full catalog
func (sc *ServiceController) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Catalog.List())
}

// GetService retrieves a specific service by ID
func (sc *ServiceController) GetService(c *gin.Context) {
	service, ok := sc.Catalog.Get(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func (sc *ServiceController) UpdateService(c *gin.Context) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id := c.Param("id")
	ok := sc.Catalog.Update(id, store.ServicePatch{
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		Description:     input.Description,
	})
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	service, _ := sc.Catalog.Get(id)
	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service from the catalog
func (sc *ServiceController) DeleteService(c *gin.Context) {
	if !sc.Catalog.Remove(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
