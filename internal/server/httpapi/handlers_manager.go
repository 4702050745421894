package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) myEmployees(c *gin.Context) {
	manager, ok := h.caller(c, models.RoleManager)
	if !ok {
		return
	}

	list, err := h.identity.ListEmployeesOf(c.Request.Context(), manager.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserList(list))
}

func (h *Handler) managerDashboard(c *gin.Context) {
	manager, ok := h.caller(c, models.RoleManager)
	if !ok {
		return
	}

	rows, err := h.dashboard.Dashboard(c.Request.Context(), manager)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboard(rows))
}

func (h *Handler) employeeFeedback(c *gin.Context) {
	h.employeeView(c, false)
}

func (h *Handler) employeeFeedbackHistory(c *gin.Context) {
	h.employeeView(c, true)
}

func (h *Handler) employeeView(c *gin.Context, history bool) {
	manager, ok := h.caller(c, models.RoleManager)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	list, err := h.feedback.ManagerView(c.Request.Context(), manager, id, history)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toFeedbackList(list))
}
