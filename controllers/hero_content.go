package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"christmas-gift-api/services"
)

// GetHeroContents returns every banner slot
func GetHeroContents(c *gin.Context) {
	svc := services.NewHeroContentService(nil)
	contents, err := svc.List()
	if err != nil {
		log.Printf("Failed to list hero contents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusOK, contents)
}

// GetHeroContent returns one banner slot by id
func GetHeroContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	svc := services.NewHeroContentService(nil)
	content, err := svc.GetByID(id)
	if err != nil {
		log.Printf("Failed to get hero content %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hero content not found"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// CreateHeroContent adds a banner slot (admin only)
func CreateHeroContent(c *gin.Context) {
	var input services.CreateHeroContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewHeroContentService(nil)
	content, err := svc.Create(input)
	if err != nil {
		log.Printf("Failed to create hero content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusCreated, content)
}

// UpdateHeroContent edits a banner slot (admin only)
func UpdateHeroContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	var input services.UpdateHeroContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewHeroContentService(nil)
	content, err := svc.Update(id, input)
	if err != nil {
		log.Printf("Failed to update hero content %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hero content not found"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// DeleteHeroContent removes a banner slot (admin only)
func DeleteHeroContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	svc := services.NewHeroContentService(nil)
	deleted, err := svc.Delete(id)
	if err != nil {
		log.Printf("Failed to delete hero content %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hero content not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
