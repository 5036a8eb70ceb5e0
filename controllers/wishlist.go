package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"christmas-gift-api/services"
)

// GetUserWishList returns one user's wish list items
func GetUserWishList(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	svc := services.NewWishListService(nil)
	items, err := svc.ListByUser(userID)
	if err != nil {
		log.Printf("Failed to list wish list items for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetWishListItem returns one item by id
func GetWishListItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	svc := services.NewWishListService(nil)
	item, err := svc.GetByID(id)
	if err != nil {
		log.Printf("Failed to get wish list item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wish list item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateWishListItem adds a gift wish
func CreateWishListItem(c *gin.Context) {
	var input services.CreateWishListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWishListService(nil)
	item, err := svc.Create(input)
	if err != nil {
		log.Printf("Failed to create wish list item: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateWishListItem edits a gift wish
func UpdateWishListItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input services.UpdateWishListItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWishListService(nil)
	item, err := svc.Update(id, input)
	if err != nil {
		log.Printf("Failed to update wish list item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wish list item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteWishListItem removes a gift wish
func DeleteWishListItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	svc := services.NewWishListService(nil)
	deleted, err := svc.Delete(id)
	if err != nil {
		log.Printf("Failed to delete wish list item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wish list item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
