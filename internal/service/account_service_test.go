package service

import (
	"context"
	"errors"
	"testing"

	"teksher_backend/internal/model"
	"teksher_backend/internal/testutil"
	"teksher_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type accountFixture struct {
	s        *testServices
	alice    *model.User
	bob      *model.User
	testSet  *model.TestSet
	question *model.Question
}

func newAccountFixture(t *testing.T) *accountFixture {
	s := newTestServices(t)
	cat := testutil.CreateCategory(t, s.db, "Math")
	ts := testutil.CreateTestSet(t, s.db, cat.ID, "Fractions", "", "easy")
	return &accountFixture{
		s:        s,
		alice:    testutil.CreateUser(t, s.db, "alice"),
		bob:      testutil.CreateUser(t, s.db, "bob"),
		testSet:  ts,
		question: testutil.CreateQuestion(t, s.db, ts.ID, "1/2 + 1/4 = ?"),
	}
}

func TestDuplicateProgressConflicts(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{TestSetID: ptr(f.testSet.ID)})
	require.NoError(t, err)

	_, err = f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{TestSetID: ptr(f.testSet.ID)})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The fields user, testset must make a unique set."}, fe["non_field_errors"])

	// 其他用户不受影响
	_, err = f.s.account.CreateProgress(ctx, f.bob.ID, &ProgressInput{TestSetID: ptr(f.testSet.ID)})
	assert.NoError(t, err)
}

func TestProgressValidation(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, fe["testset"])

	_, err = f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{
		TestSetID: ptr(f.testSet.ID),
		Status:    ptr(model.ProgressStatus("paused")),
	})
	fe, ok = util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "status")

	_, err = f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{TestSetID: ptr(uint(999))})
	fe, ok = util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{`Invalid pk "999" - object does not exist.`}, fe["testset"])
}

func TestProgressByStatus(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	_, err := f.s.account.ProgressByStatus(ctx, f.alice.ID, "")
	assert.ErrorIs(t, err, util.ErrStatusParamRequired)

	_, err = f.s.account.CreateProgress(ctx, f.alice.ID, &ProgressInput{
		TestSetID: ptr(f.testSet.ID),
		Status:    ptr(model.StatusCompleted),
	})
	require.NoError(t, err)

	got, err := f.s.account.ProgressByStatus(ctx, f.alice.ID, "completed")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = f.s.account.ProgressByStatus(ctx, f.bob.ID, "completed")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func seedProgressAndHistory(t *testing.T, f *accountFixture, user *model.User) {
	ctx := context.Background()
	_, err := f.s.account.CreateProgress(ctx, user.ID, &ProgressInput{TestSetID: ptr(f.testSet.ID)})
	require.NoError(t, err)
	_, err = f.s.account.CreateHistory(ctx, user.ID, &HistoryInput{
		QuestionID:     ptr(f.question.ID),
		TimesAttempted: ptr(3),
		TimesCorrect:   ptr(1),
	})
	require.NoError(t, err)
}

func TestResetAllScopedToCaller(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	seedProgressAndHistory(t, f, f.alice)
	seedProgressAndHistory(t, f, f.bob)

	require.NoError(t, f.s.account.ResetAll(ctx, f.alice.ID))

	progress, err := f.s.account.ListProgress(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Empty(t, progress)
	history, err := f.s.account.ListHistory(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	progress, err = f.s.account.ListProgress(ctx, f.bob.ID)
	require.NoError(t, err)
	assert.Len(t, progress, 1)
	history, err = f.s.account.ListHistory(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 100.0/3, history[0].Accuracy, 1e-9)
}

func TestResetAllRollsBackOnFailure(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	seedProgressAndHistory(t, f, f.alice)

	boom := errors.New("history delete failed")
	require.NoError(t, f.s.db.Callback().Delete().Before("gorm:delete").Register("test:fail_history_delete", func(tx *gorm.DB) {
		if tx.Statement.Table == "question_histories" {
			_ = tx.AddError(boom)
		}
	}))

	err := f.s.account.ResetAll(ctx, f.alice.ID)
	require.ErrorIs(t, err, boom)

	progress, err := f.s.account.ListProgress(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Len(t, progress, 1)
	history, err := f.s.account.ListHistory(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestHistoryAccuracyAndDuplicate(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	h, err := f.s.account.CreateHistory(ctx, f.alice.ID, &HistoryInput{QuestionID: ptr(f.question.ID)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Accuracy)

	h, err = f.s.account.UpdateHistory(ctx, f.alice.ID, h.ID, &HistoryInput{TimesAttempted: ptr(4), TimesCorrect: ptr(2)}, true)
	require.NoError(t, err)
	assert.Equal(t, 50.0, h.Accuracy)

	_, err = f.s.account.CreateHistory(ctx, f.alice.ID, &HistoryInput{QuestionID: ptr(f.question.ID)})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"The fields user, question must make a unique set."}, fe["non_field_errors"])

	_, err = f.s.account.GetHistory(ctx, f.bob.ID, h.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestPreferencesScopedAndValidated(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	mine, err := f.s.account.MyPreferences(ctx, f.alice.ID)
	require.NoError(t, err)
	again, err := f.s.account.MyPreferences(ctx, f.alice.ID)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, again.ID)

	_, err = f.s.account.UpdatePreferences(ctx, f.alice.ID, mine.ID, &PreferencesInput{Theme: ptr(model.Theme("neon"))})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{`"neon" is not a valid choice.`}, fe["theme"])

	updated, err := f.s.account.UpdatePreferences(ctx, f.alice.ID, mine.ID, &PreferencesInput{
		Language:             ptr(model.LanguageGerman),
		NotificationsEnabled: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, model.LanguageGerman, updated.Language)
	assert.False(t, updated.NotificationsEnabled)

	_, err = f.s.account.GetPreferences(ctx, f.bob.ID, mine.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, f.s.account.DeletePreferences(ctx, f.bob.ID, mine.ID), util.ErrNotFound)
}

func TestProfileOnePerUser(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	p, err := f.s.account.CreateProfile(ctx, f.alice.ID)
	require.NoError(t, err)
	_, err = f.s.account.CreateProfile(ctx, f.alice.ID)
	_, ok := util.AsFieldErrors(err)
	assert.True(t, ok)

	_, err = f.s.account.GetProfile(ctx, f.bob.ID, p.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
