package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("manager")
	require.NoError(t, err)
	assert.Equal(t, RoleManager, r)

	r, err = ParseRole("employee")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, r)

	for _, bad := range []string{"", "Manager", "admin"} {
		_, err := ParseRole(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseSentiment(t *testing.T) {
	for _, ok := range []string{"positive", "neutral", "negative"} {
		s, err := ParseSentiment(ok)
		require.NoError(t, err)
		assert.Equal(t, Sentiment(ok), s)
	}

	_, err := ParseSentiment("ecstatic")
	assert.True(t, errors.Is(err, ErrUnknownSentiment))
}

func TestUser_ManagedBy(t *testing.T) {
	mgr := int64(7)
	emp := &User{ID: 2, Role: RoleEmployee, ManagerID: &mgr}

	assert.True(t, emp.ManagedBy(7))
	assert.False(t, emp.ManagedBy(8))
	assert.False(t, (&User{ID: 7, Role: RoleManager}).ManagedBy(7))
	assert.False(t, (&User{ID: 3, Role: RoleEmployee}).ManagedBy(7))
}

func TestSentimentBreakdown_Add(t *testing.T) {
	var b SentimentBreakdown
	for _, s := range []Sentiment{SentimentPositive, SentimentPositive, SentimentNegative} {
		require.NoError(t, b.Add(s))
	}
	assert.Equal(t, SentimentBreakdown{Positive: 2, Neutral: 0, Negative: 1}, b)
	assert.Equal(t, 3, b.Total())

	assert.ErrorIs(t, b.Add("ecstatic"), ErrUnknownSentiment)
	assert.Equal(t, 3, b.Total())
}

func TestFeedbackPatch_IsEmpty(t *testing.T) {
	assert.True(t, FeedbackPatch{}.IsEmpty())
	s := "x"
	assert.False(t, FeedbackPatch{Strengths: &s}.IsEmpty())
}
