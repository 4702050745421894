package httpapi

import (
	"time"

	"github.com/dmitrijs2005/feedbackhub/internal/server/models"
)

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ManagerEmail string `json:"manager_email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type submitRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Strengths     string `json:"strengths"`
	Improvements  string `json:"improvements"`
	Sentiment     string `json:"sentiment"`
}

type updateRequest struct {
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Sentiment    *string `json:"sentiment"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type managerJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResponse struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Role    models.Role  `json:"role"`
	Manager *managerJSON `json:"manager"`
	Token   string       `json:"token"`
}

type profileResponse struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Role    models.Role  `json:"role"`
	Manager *managerJSON `json:"manager"`
}

type managerListItem struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type feedbackJSON struct {
	ID           int64            `json:"id"`
	ManagerID    int64            `json:"manager_id"`
	EmployeeID   int64            `json:"employee_id"`
	Strengths    string           `json:"strengths"`
	Improvements string           `json:"improvements"`
	Sentiment    models.Sentiment `json:"sentiment"`
	Acknowledged bool             `json:"acknowledged"`
	Timestamp    time.Time        `json:"timestamp"`
}

type breakdownJSON struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type dashboardRowJSON struct {
	EmployeeID         int64         `json:"employee_id"`
	EmployeeName       string        `json:"employee_name"`
	FeedbackCount      int           `json:"feedback_count"`
	SentimentBreakdown breakdownJSON `json:"sentiment_breakdown"`
}

func toManagerJSON(m *models.ManagerSummary) *managerJSON {
	if m == nil {
		return nil
	}
	return &managerJSON{ID: m.ID, Name: m.Name, Email: m.Email}
}

func toUserList(users []*models.User) []managerJSON {
	out := make([]managerJSON, 0, len(users))
	for _, u := range users {
		out = append(out, managerJSON{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}

func toFeedbackList(list []*models.Feedback) []feedbackJSON {
	out := make([]feedbackJSON, 0, len(list))
	for _, fb := range list {
		out = append(out, feedbackJSON{
			ID:           fb.ID,
			ManagerID:    fb.ManagerID,
			EmployeeID:   fb.EmployeeID,
			Strengths:    fb.Strengths,
			Improvements: fb.Improvements,
			Sentiment:    fb.Sentiment,
			Acknowledged: fb.Acknowledged,
			Timestamp:    fb.CreatedAt,
		})
	}
	return out
}

func toDashboard(rows []models.DashboardRow) []dashboardRowJSON {
	out := make([]dashboardRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboardRowJSON{
			EmployeeID:    r.EmployeeID,
			EmployeeName:  r.EmployeeName,
			FeedbackCount: r.FeedbackCount,
			SentimentBreakdown: breakdownJSON{
				Positive: r.SentimentBreakdown.Positive,
				Neutral:  r.SentimentBreakdown.Neutral,
				Negative: r.SentimentBreakdown.Negative,
			},
		})
	}
	return out
}
