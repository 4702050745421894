package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/dmitrijs2005/feedbackhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

// caller loads the authenticated user and checks their role, writing the
// error response itself on failure.
func (h *Handler) caller(c *gin.Context, role models.Role) (*models.User, bool) {
	user, err := h.guard.RequireRole(c.Request.Context(), c.GetString(callerEmailKey), role)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return user, true
}

// pathID parses the :id segment. Any integer is passed on; ids that match
// no row surface as not found from the service.
func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, fmt.Errorf("%w: invalid id %q", common.ErrValidation, c.Param("id")))
		return 0, false
	}
	return id, true
}

func (h *Handler) submitFeedback(c *gin.Context) {
	manager, ok := h.caller(c, models.RoleManager)
	if !ok {
		return
	}

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", common.ErrValidation, err))
		return
	}

	fb, err := h.feedback.Submit(c.Request.Context(), manager, services.SubmitInput{
		EmployeeEmail: req.EmployeeEmail,
		Strengths:     req.Strengths,
		Improvements:  req.Improvements,
		Sentiment:     req.Sentiment,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "feedback submitted",
		"feedback_id", fb.ID, "manager_id", manager.ID, "employee_id", fb.EmployeeID)
	c.JSON(http.StatusCreated, messageResponse{Message: "Feedback submitted successfully", ID: fb.ID})
}

func (h *Handler) myFeedback(c *gin.Context) {
	employee, ok := h.caller(c, models.RoleEmployee)
	if !ok {
		return
	}

	list, err := h.feedback.ListForEmployee(c.Request.Context(), employee.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toFeedbackList(list))
}

func (h *Handler) acknowledgeFeedback(c *gin.Context) {
	employee, ok := h.caller(c, models.RoleEmployee)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if _, err := h.feedback.Acknowledge(c.Request.Context(), employee, id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Feedback acknowledged"})
}

func (h *Handler) updateFeedback(c *gin.Context) {
	manager, ok := h.caller(c, models.RoleManager)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", common.ErrValidation, err))
		return
	}

	_, err := h.feedback.Update(c.Request.Context(), manager, id, models.FeedbackPatch{
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    req.Sentiment,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Feedback updated successfully"})
}
