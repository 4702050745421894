package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Routes builds the gin engine with every endpoint mounted.
func (h *Handler) Routes(requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(h.logger), timeout(requestTimeout))

	authed := bearerAuth(h.identity.TokenEmail)

	a := r.Group("/auth")
	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.GET("/managers", h.managers)
	a.GET("/me", authed, h.me)

	f := r.Group("/feedback", authed)
	f.POST("/ab", h.submitFeedback)
	f.GET("/me", h.myFeedback)
	f.PUT("/:id/ack", h.acknowledgeFeedback)
	f.PUT("/:id", h.updateFeedback)

	m := r.Group("/manager", authed)
	m.GET("/my-employees", h.myEmployees)
	m.GET("/team", h.myEmployees)
	m.GET("/dashboard", h.managerDashboard)
	m.GET("/employee/:id/feedback", h.employeeFeedback)
	m.GET("/employee/:id/feedback-history", h.employeeFeedbackHistory)

	return r
}
