package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionHistoryAccuracy(t *testing.T) {
	cases := []struct {
		name      string
		attempted int
		correct   int
		want      float64
	}{
		{"never attempted", 0, 0, 0},
		{"all correct", 4, 4, 100},
		{"half", 4, 2, 50},
		{"one of three", 3, 1, 100.0 / 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &QuestionHistory{TimesAttempted: tc.attempted, TimesCorrect: tc.correct}
			assert.InDelta(t, tc.want, h.ComputeAccuracy(), 1e-9)
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, LanguageRussian.Valid())
	assert.False(t, Language("it").Valid())
	assert.True(t, ThemeSystem.Valid())
	assert.False(t, Theme("blue").Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, ProgressStatus("paused").Valid())
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences(7)
	assert.Equal(t, uint(7), p.UserID)
	assert.Equal(t, LanguageEnglish, p.Language)
	assert.Equal(t, ThemeSystem, p.Theme)
	assert.True(t, p.NotificationsEnabled)
}
