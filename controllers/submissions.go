package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"christmas-gift-api/services"
)

// SubmissionController handles the wish list approval workflow. It is built
// once at startup with the services that share the reference-data cache.
type SubmissionController struct {
	submissions *services.WishListSubmissionService
	notifier    *services.WishListNotificationService
}

func NewSubmissionController(
	submissions *services.WishListSubmissionService,
	notifier *services.WishListNotificationService,
) *SubmissionController {
	return &SubmissionController{submissions: submissions, notifier: notifier}
}

type createSubmissionRequest struct {
	UserID int `json:"user_id" binding:"required"`
}

// List returns every active submission
func (ctrl *SubmissionController) List(c *gin.Context) {
	submissions, err := ctrl.submissions.List()
	if err != nil {
		log.Printf("Failed to list wish list submissions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// Get returns one submission by id
func (ctrl *SubmissionController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	submission, err := ctrl.submissions.GetByID(id)
	if err != nil {
		log.Printf("Failed to get wish list submission %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, submission)
}

// ListByUser returns all of one user's submissions, active or not
func (ctrl *SubmissionController) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	submissions, err := ctrl.submissions.ListByUser(userID)
	if err != nil {
		log.Printf("Failed to list wish list submissions for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// Create starts a new submission in the initial workflow stage and asks the
// user's guardians and the admins for approval.
func (ctrl *SubmissionController) Create(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := ctrl.submissions.Create(req.UserID)
	if err != nil {
		log.Printf("Failed to create wish list submission: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}

	if err := ctrl.notifier.SendApprovalRequest(submission.UserID); err != nil {
		log.Printf("Failed to send approval notifications for user %d: %v", submission.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// Update applies a status change and re-notifies when the submission moves
// back into the waiting-for-approval stage.
func (ctrl *SubmissionController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var input services.UpdateWishListSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := ctrl.submissions.Update(id, input)
	if err != nil {
		log.Printf("Failed to update wish list submission %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	awaitingID, err := ctrl.submissions.AwaitingApprovalStatusID()
	if err != nil {
		// Without the reference row nothing can be awaiting approval; the
		// update itself already succeeded.
		log.Printf("Cannot resolve waiting-for-approval status: %v", err)
	} else if input.StatusID == awaitingID {
		if err := ctrl.notifier.SendApprovalRequest(submission.UserID); err != nil {
			log.Printf("Failed to send approval notifications for user %d: %v", submission.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
			return
		}
	}

	c.JSON(http.StatusOK, submission)
}

// Delete removes a submission outright (admin only)
func (ctrl *SubmissionController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	deleted, err := ctrl.submissions.Delete(id)
	if err != nil {
		log.Printf("Failed to delete wish list submission %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
