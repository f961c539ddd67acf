package service

import (
	"context"
	"testing"

	"teksher_backend/internal/repository"
	"teksher_backend/internal/testutil"
	"teksher_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSetCRUDAndViews(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, s.db, "Math")

	_, err := s.content.CreateTestSet(ctx, &TestSetInput{Title: ptr("Fractions")})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "category_id")
	assert.Contains(t, fe, "description")
	assert.Contains(t, fe, "time_limit_minutes")
	assert.Contains(t, fe, "difficulty")

	_, err = s.content.CreateTestSet(ctx, &TestSetInput{
		Title: ptr("Fractions"), Description: ptr("d"), CategoryID: ptr(uint(42)),
		TimeLimitMinutes: ptr(10), Difficulty: ptr("Easy"),
	})
	fe, ok = util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{`Invalid pk "42" - object does not exist.`}, fe["category_id"])

	ts, err := s.content.CreateTestSet(ctx, &TestSetInput{
		Title: ptr("Fractions"), Description: ptr("Adding halves"), CategoryID: ptr(cat.ID),
		TimeLimitMinutes: ptr(10), Difficulty: ptr("Easy"),
	})
	require.NoError(t, err)
	require.NotNil(t, ts.Category)
	assert.Equal(t, "Math", ts.Category.Name)
	assert.Equal(t, []uint{}, ts.Questions)

	q, err := s.content.CreateQuestion(ctx, &QuestionInput{TestSetID: ptr(ts.ID), Content: ptr("1/2+1/2"), Explanation: ptr("one")})
	require.NoError(t, err)
	require.NotNil(t, q.TestSet)
	assert.Equal(t, []uint{q.ID}, q.TestSet.Questions)

	o, err := s.content.CreateOption(ctx, &OptionInput{QuestionID: ptr(q.ID), Content: ptr("1"), IsCorrect: ptr(true)})
	require.NoError(t, err)
	require.NotNil(t, o.Question)
	assert.Equal(t, []uint{o.ID}, o.Question.Options)
	assert.Equal(t, "Math", o.Question.TestSet.Category.Name)

	got, err := s.content.GetTestSet(ctx, ts.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{q.ID}, got.Questions)

	updated, err := s.content.UpdateTestSet(ctx, ts.ID, &TestSetInput{Difficulty: ptr("Hard")}, true)
	require.NoError(t, err)
	assert.Equal(t, "Hard", updated.Difficulty)
	assert.Equal(t, "Fractions", updated.Title)

	_, err = s.content.UpdateTestSet(ctx, ts.ID, &TestSetInput{Difficulty: ptr("Hard")}, false)
	_, ok = util.AsFieldErrors(err)
	assert.True(t, ok)

	require.NoError(t, s.content.DeleteTestSet(ctx, ts.ID))
	_, err = s.content.GetQuestion(ctx, q.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = s.content.GetOption(ctx, o.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestListTestSetsFilters(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	cat := testutil.CreateCategory(t, s.db, "Math")
	testutil.CreateTestSet(t, s.db, cat.ID, "Fractions", "halves", "Easy")
	testutil.CreateTestSet(t, s.db, cat.ID, "Decimals", "tenths and fractions", "easy")
	testutil.CreateTestSet(t, s.db, cat.ID, "Integrals", "area", "Hard")

	got, err := s.content.ListTestSets(ctx, repository.TestSetFilter{Difficulty: ptr("EASY")})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.content.ListTestSets(ctx, repository.TestSetFilter{Search: ptr("fraction")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Fractions", got[0].Title)
	assert.Equal(t, "Decimals", got[1].Title)
}

func TestCategoryService(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.category.Create(ctx, &CategoryInput{Name: ptr("  ")})
	fe, ok := util.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field may not be blank."}, fe["name"])

	c, err := s.category.Create(ctx, &CategoryInput{Name: ptr("Science"), Metadata: []byte(`{"color":"green"}`)})
	require.NoError(t, err)

	c, err = s.category.Update(ctx, c.ID, &CategoryInput{Description: ptr("Physics and more")}, true)
	require.NoError(t, err)
	assert.Equal(t, "Science", c.Name)
	assert.JSONEq(t, `{"color":"green"}`, string(c.Metadata))

	require.NoError(t, s.category.Delete(ctx, c.ID))
	assert.ErrorIs(t, s.category.Delete(ctx, c.ID), util.ErrNotFound)
}
