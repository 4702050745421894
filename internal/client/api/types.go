package api

import "time"

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ManagerEmail string `json:"manager_email,omitempty"`
}

type Person struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Role    string  `json:"role"`
	Manager *Person `json:"manager"`
	Token   string  `json:"token"`
}

type Profile struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Manager *Person `json:"manager"`
}

type ManagerItem struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SubmitRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Strengths     string `json:"strengths"`
	Improvements  string `json:"improvements"`
	Sentiment     string `json:"sentiment"`
}

// UpdateRequest is a partial update; nil fields are omitted from the body.
type UpdateRequest struct {
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	Sentiment    *string `json:"sentiment,omitempty"`
}

type Feedback struct {
	ID           int64     `json:"id"`
	ManagerID    int64     `json:"manager_id"`
	EmployeeID   int64     `json:"employee_id"`
	Strengths    string    `json:"strengths"`
	Improvements string    `json:"improvements"`
	Sentiment    string    `json:"sentiment"`
	Acknowledged bool      `json:"acknowledged"`
	Timestamp    time.Time `json:"timestamp"`
}

type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type DashboardRow struct {
	EmployeeID         int64              `json:"employee_id"`
	EmployeeName       string             `json:"employee_name"`
	FeedbackCount      int                `json:"feedback_count"`
	SentimentBreakdown SentimentBreakdown `json:"sentiment_breakdown"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}
