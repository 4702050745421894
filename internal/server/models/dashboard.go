package models

// SentimentBreakdown counts feedback per sentiment bucket. Every bucket is
// always present, zero when empty.
type SentimentBreakdown struct {
	Positive int
	Neutral  int
	Negative int
}

// Add increments the bucket for s. Unknown values are rejected rather than
// silently dropped.
func (b *SentimentBreakdown) Add(s Sentiment) error {
	switch s {
	case SentimentPositive:
		b.Positive++
	case SentimentNeutral:
		b.Neutral++
	case SentimentNegative:
		b.Negative++
	default:
		return ErrUnknownSentiment
	}
	return nil
}

// Total is the sum of all buckets.
func (b SentimentBreakdown) Total() int {
	return b.Positive + b.Neutral + b.Negative
}

// DashboardRow is the per-employee aggregate shown to a manager.
type DashboardRow struct {
	EmployeeID         int64
	EmployeeName       string
	FeedbackCount      int
	SentimentBreakdown SentimentBreakdown
}
