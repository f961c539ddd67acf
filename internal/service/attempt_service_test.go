package service

import (
	"context"
	"testing"

	"teksher_backend/internal/model"
	"teksher_backend/internal/testutil"
	"teksher_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptsOwnership(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	cat := testutil.CreateCategory(t, s.db, "Math")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Fractions", "", "easy")
	q := testutil.CreateQuestion(t, s.db, ts.ID, "1/2+1/2")
	opt := testutil.CreateOption(t, s.db, q.ID, "1", true)

	attempt, err := s.attempts.CreateAttempt(ctx, alice.ID, &AttemptInput{
		TestSetID: ptr(ts.ID), ScorePercent: ptr(75.0), Passed: ptr(true), DurationMinutes: ptr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, attempt.UserID)
	assert.Equal(t, []model.Answer{}, attempt.Answers)

	_, err = s.attempts.CreateAnswer(ctx, bob.ID, &AnswerInput{
		AttemptID: ptr(attempt.ID), QuestionID: ptr(q.ID), IsCorrect: ptr(true),
	})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "attempt")

	answer, err := s.attempts.CreateAnswer(ctx, alice.ID, &AnswerInput{
		AttemptID: ptr(attempt.ID), QuestionID: ptr(q.ID), SelectedOptionID: ptr(opt.ID), IsCorrect: ptr(true),
	})
	require.NoError(t, err)

	skipped, err := s.attempts.CreateAnswer(ctx, alice.ID, &AnswerInput{
		AttemptID: ptr(attempt.ID), QuestionID: ptr(q.ID), IsCorrect: ptr(false),
	})
	require.NoError(t, err)
	assert.Nil(t, skipped.SelectedOptionID)

	got, err := s.attempts.GetAttempt(ctx, alice.ID, attempt.ID)
	require.NoError(t, err)
	assert.Len(t, got.Answers, 2)

	_, err = s.attempts.GetAttempt(ctx, bob.ID, attempt.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = s.attempts.GetAnswer(ctx, bob.ID, answer.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = s.attempts.UpdateAttempt(ctx, bob.ID, attempt.ID, &AttemptInput{Passed: ptr(false)}, true)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, s.attempts.DeleteAttempt(ctx, bob.ID, attempt.ID), util.ErrNotFound)

	list, err := s.attempts.ListAttempts(ctx, bob.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	answers, err := s.attempts.ListAnswers(ctx, bob.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, answers)

	answers, err = s.attempts.ListAnswers(ctx, alice.ID, ptr(attempt.ID))
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	require.NoError(t, s.attempts.DeleteAttempt(ctx, alice.ID, attempt.ID))
	assert.Zero(t, s.count(t, &model.Answer{}))
}

func TestBookmarksOwnership(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, s.db, "alice")
	bob := testutil.CreateUser(t, s.db, "bob")
	cat := testutil.CreateCategory(t, s.db, "Math")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Fractions", "", "easy")
	q := testutil.CreateQuestion(t, s.db, ts.ID, "1/2+1/2")

	qb, err := s.bookmark.CreateQuestionBookmark(ctx, alice.ID, &QuestionBookmarkInput{TestSetID: ptr(ts.ID), QuestionID: ptr(q.ID)})
	require.NoError(t, err)
	_, err = s.bookmark.CreateQuestionBookmark(ctx, alice.ID, &QuestionBookmarkInput{TestSetID: ptr(ts.ID), QuestionID: ptr(q.ID)})
	require.NoError(t, err)

	list, err := s.bookmark.ListQuestionBookmarks(ctx, alice.ID, ptr(ts.ID), ptr(q.ID))
	require.NoError(t, err)
	assert.Len(t, list, 2)
	list, err = s.bookmark.ListQuestionBookmarks(ctx, bob.ID, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.bookmark.GetQuestionBookmark(ctx, bob.ID, qb.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	tb, err := s.bookmark.CreateTestSetBookmark(ctx, alice.ID, &TestSetBookmarkInput{TestSetID: ptr(ts.ID)})
	require.NoError(t, err)
	assert.ErrorIs(t, s.bookmark.DeleteTestSetBookmark(ctx, bob.ID, tb.ID), util.ErrNotFound)
	require.NoError(t, s.bookmark.DeleteTestSetBookmark(ctx, alice.ID, tb.ID))

	_, err = s.bookmark.CreateTestSetBookmark(ctx, alice.ID, &TestSetBookmarkInput{})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, fe["testset"])
}
