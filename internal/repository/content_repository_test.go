package repository

import (
	"context"
	"testing"

	"teksher_backend/internal/model"
	"teksher_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func titles(sets []model.TestSet) []string {
	out := make([]string, 0, len(sets))
	for _, s := range sets {
		out = append(out, s.Title)
	}
	return out
}

func TestTestSetSearchFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "Math")
	other := testutil.CreateCategory(t, db, "History")

	testutil.CreateTestSet(t, db, cat.ID, "Fractions", "Basic arithmetic", "Easy")
	testutil.CreateTestSet(t, db, cat.ID, "Algebra", "Linear equations", "easy")
	testutil.CreateTestSet(t, db, cat.ID, "Calculus", "Limits and fractions", "Hard")
	testutil.CreateTestSet(t, db, other.ID, "Rome", "100% ancient_history", "EASY")

	repo := NewTestSetRepository(db)

	got, err := repo.Search(ctx, TestSetFilter{Difficulty: strPtr("EASY")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fractions", "Algebra", "Rome"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Search: strPtr("FRACTION")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fractions", "Calculus"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{CategoryID: uintPtr(cat.ID), Difficulty: strPtr("easy"), Search: strPtr("linear")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Algebra"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Search: strPtr("100%")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rome"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Search: strPtr("s_c")})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.Search(ctx, TestSetFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 4)
	require.NotNil(t, got[0].Category)
	assert.Equal(t, "Math", got[0].Category.Name)
}

func TestTestSetSearchNonASCII(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "Математика")
	testutil.CreateTestSet(t, db, cat.ID, "Алгебра", "Линейные уравнения", "Легко")
	testutil.CreateTestSet(t, db, cat.ID, "Geometry", "Triangles", "Hard")

	repo := NewTestSetRepository(db)

	got, err := repo.Search(ctx, TestSetFilter{Difficulty: strPtr("Легко")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Алгебра"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Search: strPtr("Алгебра")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Алгебра"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Search: strPtr("уравнения")})
	require.NoError(t, err)
	assert.Equal(t, []string{"Алгебра"}, titles(got))

	got, err = repo.Search(ctx, TestSetFilter{Difficulty: strPtr("Сложно")})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChildIDsOrdered(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "Math")
	ts := testutil.CreateTestSet(t, db, cat.ID, "A", "", "easy")
	empty := testutil.CreateTestSet(t, db, cat.ID, "B", "", "easy")
	q1 := testutil.CreateQuestion(t, db, ts.ID, "q1")
	q2 := testutil.CreateQuestion(t, db, ts.ID, "q2")
	o1 := testutil.CreateOption(t, db, q2.ID, "o1", true)

	ids, err := NewTestSetRepository(db).QuestionIDs(ctx, ts.ID, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{q1.ID, q2.ID}, ids[ts.ID])
	assert.Equal(t, []uint{}, ids[empty.ID])

	opts, err := NewQuestionRepository(db).OptionIDs(ctx, q1.ID, q2.ID)
	require.NoError(t, err)
	assert.Empty(t, opts[q1.ID])
	assert.Equal(t, []uint{o1.ID}, opts[q2.ID])
}

func TestCascadeDeleteCategory(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, db, "Math")
	ts := testutil.CreateTestSet(t, db, cat.ID, "A", "", "easy")
	q := testutil.CreateQuestion(t, db, ts.ID, "q1")
	testutil.CreateOption(t, db, q.ID, "o1", true)

	require.NoError(t, NewCategoryRepository(db).Delete(ctx, cat.ID))

	var count int64
	require.NoError(t, db.Model(&model.Option{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&model.TestSet{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestStoreScopesHideOtherUsers(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	cat := testutil.CreateCategory(t, db, "Math")
	ts := testutil.CreateTestSet(t, db, cat.ID, "A", "", "easy")
	q := testutil.CreateQuestion(t, db, ts.ID, "q1")

	attempt := testutil.CreateAttempt(t, db, alice.ID, ts.ID)
	answers := NewAnswerRepository(db)
	require.NoError(t, answers.Create(ctx, &model.Answer{AttemptID: attempt.ID, QuestionID: q.ID, IsCorrect: true}))

	attempts := NewAttemptRepository(db)
	_, err := attempts.Get(ctx, attempt.ID, OwnedBy(bob.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := attempts.Get(ctx, attempt.ID, OwnedBy(alice.ID))
	require.NoError(t, err)
	assert.Len(t, got.Answers, 1)

	list, err := answers.List(ctx, AnswersOwnedBy(bob.ID))
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = answers.List(ctx, AnswersOwnedBy(alice.ID))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	err = answers.Delete(ctx, list[0].ID, AnswersOwnedBy(bob.ID))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResetAllScopedToUser(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	cat := testutil.CreateCategory(t, db, "Math")
	ts := testutil.CreateTestSet(t, db, cat.ID, "A", "", "easy")
	q := testutil.CreateQuestion(t, db, ts.ID, "q1")

	progress := NewProgressRepository(db)
	history := NewHistoryRepository(db)
	for _, uid := range []uint{alice.ID, bob.ID} {
		require.NoError(t, progress.Create(ctx, &model.TestProgress{UserID: uid, TestSetID: ts.ID, Status: model.StatusInProgress}))
		require.NoError(t, history.Create(ctx, &model.QuestionHistory{UserID: uid, QuestionID: q.ID, TimesAttempted: 2, TimesCorrect: 1}))
	}

	require.NoError(t, progress.ResetAll(ctx, alice.ID))

	n, err := progress.Count(ctx, OwnedBy(alice.ID))
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = history.Count(ctx, OwnedBy(alice.ID))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = progress.Count(ctx, OwnedBy(bob.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rows, err := history.List(ctx, OwnedBy(bob.ID))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 50.0, rows[0].Accuracy)
}

func TestProgressUniqueIndexTranslated(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice")
	cat := testutil.CreateCategory(t, db, "Math")
	ts := testutil.CreateTestSet(t, db, cat.ID, "A", "", "easy")

	progress := NewProgressRepository(db)
	require.NoError(t, progress.Create(ctx, &model.TestProgress{UserID: alice.ID, TestSetID: ts.ID, Status: model.StatusNotStarted}))
	err := progress.Create(ctx, &model.TestProgress{UserID: alice.ID, TestSetID: ts.ID, Status: model.StatusCompleted})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := progress.ExistsForTestSet(ctx, alice.ID, ts.ID, 0)
	require.NoError(t, err)
	assert.True(t, exists)
}
