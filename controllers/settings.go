package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"christmas-gift-api/services"
)

// SettingsController serves the cached, read-only settings table.
type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// List returns every setting as a name→value mapping
func (ctrl *SettingsController) List(c *gin.Context) {
	settings, err := ctrl.settings.GetAll()
	if err != nil {
		log.Printf("Failed to list settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}

	values := make(map[string]*string, len(settings))
	for _, setting := range settings {
		values[setting.Name] = setting.Value
	}
	c.JSON(http.StatusOK, values)
}

// Get returns one setting by name, case-insensitively
func (ctrl *SettingsController) Get(c *gin.Context) {
	name := c.Param("name")

	setting, err := ctrl.settings.GetByName(name)
	if err != nil {
		log.Printf("Failed to get setting %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if setting == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}
	c.JSON(http.StatusOK, setting)
}
