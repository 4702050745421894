package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownSentiment is returned for any value outside the closed set.
var ErrUnknownSentiment = errors.New("unknown sentiment")

// Sentiment is the categorical tag on a feedback record.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ParseSentiment converts raw input into a Sentiment.
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive:
		return SentimentPositive, nil
	case SentimentNeutral:
		return SentimentNeutral, nil
	case SentimentNegative:
		return SentimentNegative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSentiment, s)
	}
}

// Feedback is one review a manager wrote about an employee.
type Feedback struct {
	ID           int64
	ManagerID    int64
	EmployeeID   int64
	Strengths    string
	Improvements string
	Sentiment    Sentiment
	Acknowledged bool
	CreatedAt    time.Time
}

// FeedbackPatch carries a partial update; nil fields keep their stored value.
type FeedbackPatch struct {
	Strengths    *string
	Improvements *string
	Sentiment    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p FeedbackPatch) IsEmpty() bool {
	return p.Strengths == nil && p.Improvements == nil && p.Sentiment == nil
}
