package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"christmas-gift-api/services"
)

// GetRecommendItems returns curated gift suggestions. Non-admins see only
// active ones.
func GetRecommendItems(c *gin.Context) {
	svc := services.NewRecommendService(nil)

	var err error
	var items interface{}
	if isAdmin, _ := c.Get("isAdmin"); isAdmin == true {
		items, err = svc.List()
	} else {
		items, err = svc.ListActive()
	}
	if err != nil {
		log.Printf("Failed to list recommended items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetRecommendItem returns one suggestion by id
func GetRecommendItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	svc := services.NewRecommendService(nil)
	item, err := svc.GetByID(id)
	if err != nil {
		log.Printf("Failed to get recommended item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateRecommendItem adds a suggestion (admin only)
func CreateRecommendItem(c *gin.Context) {
	var input services.CreateRecommendItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRecommendService(nil)
	item, err := svc.Create(input)
	if err != nil {
		log.Printf("Failed to create recommended item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateRecommendItem edits a suggestion (admin only)
func UpdateRecommendItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input services.UpdateRecommendItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewRecommendService(nil)
	item, err := svc.Update(id, input)
	if err != nil {
		log.Printf("Failed to update recommended item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteRecommendItem removes a suggestion (admin only)
func DeleteRecommendItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	svc := services.NewRecommendService(nil)
	deleted, err := svc.Delete(id)
	if err != nil {
		log.Printf("Failed to delete recommended item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
