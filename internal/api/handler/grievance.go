package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jandarpan/backend/internal/grievance"
	"jandarpan/backend/internal/models"
)

// SubmitGrievance accepts the intake form (multipart: name, date, text,
// optional image and document) and returns the new reference ID.
func (h *Handler) SubmitGrievance(c *gin.Context) {
	req := grievance.SubmitRequest{
		Name: c.PostForm("name"),
		Text: c.PostForm("text"),
		Date: c.PostForm("date"),
	}

	image, imageClose, err := openUpload(c, "image")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to read image upload"})
		return
	}
	if imageClose != nil {
		defer imageClose()
		req.Image = image
	}

	document, documentClose, err := openUpload(c, "document")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Failed to read document upload"})
		return
	}
	if documentClose != nil {
		defer documentClose()
		req.Document = document
		req.DocumentName = documentName(c)
	}

	g, err := h.Grievances.Submit(req)
	if err != nil {
		if errors.Is(err, grievance.ErrMissingFields) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"warning": "Please fill in all fields."})
			return
		}
		h.Logger.Error("submit failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit grievance"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       g.ID,
		"category": g.Category,
		"priority": g.Priority,
		"message":  "Grievance submitted! Your Reference ID: " + g.ID,
	})
}

// GetDashboard returns the triage table: filterable by status and by one
// or more categories, sorted by priority descending, each row annotated
// with the suggested departmental action.
func (h *Handler) GetDashboard(c *gin.Context) {
	rows, err := h.Grievances.Dashboard(c.Query("status"), c.QueryArray("category"))
	if err != nil {
		h.Logger.Error("dashboard failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	if rows == nil {
		rows = []grievance.DashboardRow{}
	}
	c.JSON(http.StatusOK, gin.H{"grievances": rows})
}

// TrackGrievances looks up all records for a submitter name.
func (h *Handler) TrackGrievances(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"warning": "Please enter your name to search."})
		return
	}

	records, err := h.Grievances.Track(name)
	if err != nil {
		h.Logger.Error("track failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to search records"})
		return
	}
	if len(records) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"warning": "No records found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus applies a staff status change and reports whether the
// auto-escalation rule fired on the record afterwards.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"warning": "Status is required."})
		return
	}

	status, err := models.ParseStatus(req.Status)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, escalated, err := h.Grievances.UpdateStatus(c.Param("id"), status)
	if err != nil {
		if errors.Is(err, grievance.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"warning": "No records found."})
			return
		}
		h.Logger.Error("status update failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"grievance": g,
		"escalated": escalated,
		"message":   "Status updated to " + string(g.Status) + " for ID " + g.ID,
	})
}

type feedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitFeedback acknowledges feedback or a reopen request. Feedback is
// not persisted.
func (h *Handler) SubmitFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"warning": "Please fill in all fields."})
		return
	}

	if err := h.Grievances.Feedback(req.Name, req.Message); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"warning": "Please fill in all fields."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback noted. Concern will be reviewed again."})
}

// openUpload opens an optional multipart file. A missing file is not an
// error; the closer is nil in that case.
func openUpload(c *gin.Context, field string) (multipart.File, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func documentName(c *gin.Context) string {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return ""
	}
	return fileHeader.Filename
}
