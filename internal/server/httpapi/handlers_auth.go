package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/feedbackhub/internal/common"
	"github.com/dmitrijs2005/feedbackhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", common.ErrValidation, err))
		return
	}

	user, err := h.identity.Register(c.Request.Context(), services.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		ManagerEmail: req.ManagerEmail,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("%s registered successfully", user.Role)})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("%w: %v", common.ErrValidation, err))
		return
	}

	sess, err := h.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		ID:      sess.User.ID,
		Name:    sess.User.Name,
		Role:    sess.User.Role,
		Manager: toManagerJSON(sess.User.Manager),
		Token:   sess.Token,
	})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.identity.Profile(c.Request.Context(), c.GetString(callerEmailKey))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Manager: toManagerJSON(user.Manager),
	})
}

func (h *Handler) managers(c *gin.Context) {
	list, err := h.identity.ListManagers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]managerListItem, 0, len(list))
	for _, m := range list {
		out = append(out, managerListItem{Name: m.Name, Email: m.Email})
	}
	c.JSON(http.StatusOK, out)
}
