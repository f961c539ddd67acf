package service

import (
	"context"

	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"
)

// TestSetView 试卷及其题目 id 列表
// swagger:model TestSetView
type TestSetView struct {
	model.TestSet
	Questions []uint `json:"questions"`
}

// QuestionView 题目，所属试卷完整展开
// swagger:model QuestionView
type QuestionView struct {
	model.Question
	TestSet *TestSetView `json:"testset"`
	Options []uint       `json:"options"`
}

// OptionView 选项，所属题目完整展开
// swagger:model OptionView
type OptionView struct {
	model.Option
	Question *QuestionView `json:"question"`
}

// swagger:model TestSetInput
type TestSetInput struct {
	Title            *string `json:"title" binding:"omitempty,max=255"`
	Description      *string `json:"description"`
	CategoryID       *uint   `json:"category_id"`
	TimeLimitMinutes *int    `json:"time_limit_minutes"`
	Difficulty       *string `json:"difficulty" binding:"omitempty,max=50"`
}

// swagger:model QuestionInput
type QuestionInput struct {
	TestSetID   *uint   `json:"testset_id"`
	Content     *string `json:"content"`
	Explanation *string `json:"explanation"`
}

// swagger:model OptionInput
type OptionInput struct {
	QuestionID *uint   `json:"question_id"`
	Content    *string `json:"content"`
	IsCorrect  *bool   `json:"is_correct"`
}

type ContentService struct {
	CategoryRepo *repository.CategoryRepository
	TestSetRepo  *repository.TestSetRepository
	QuestionRepo *repository.QuestionRepository
	OptionRepo   *repository.OptionRepository
}

func NewContentService(
	categoryRepo *repository.CategoryRepository,
	testSetRepo *repository.TestSetRepository,
	questionRepo *repository.QuestionRepository,
	optionRepo *repository.OptionRepository,
) *ContentService {
	return &ContentService{
		CategoryRepo: categoryRepo,
		TestSetRepo:  testSetRepo,
		QuestionRepo: questionRepo,
		OptionRepo:   optionRepo,
	}
}

// ---------- 试卷 ----------

func (s *ContentService) ListTestSets(ctx context.Context, filter repository.TestSetFilter) ([]TestSetView, error) {
	sets, err := s.TestSetRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.testSetViews(ctx, sets)
}

func (s *ContentService) GetTestSet(ctx context.Context, id uint) (*TestSetView, error) {
	ts, err := s.TestSetRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	views, err := s.testSetViews(ctx, []model.TestSet{*ts})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ContentService) CreateTestSet(ctx context.Context, in *TestSetInput) (*TestSetView, error) {
	ts := &model.TestSet{}
	if err := s.applyTestSet(ctx, ts, in, false); err != nil {
		return nil, err
	}
	if err := s.TestSetRepo.Create(ctx, ts); err != nil {
		return nil, err
	}
	return s.GetTestSet(ctx, ts.ID)
}

func (s *ContentService) UpdateTestSet(ctx context.Context, id uint, in *TestSetInput, partial bool) (*TestSetView, error) {
	ts, err := s.TestSetRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.applyTestSet(ctx, ts, in, partial); err != nil {
		return nil, err
	}
	if err := s.TestSetRepo.Save(ctx, ts); err != nil {
		return nil, err
	}
	return s.GetTestSet(ctx, id)
}

func (s *ContentService) DeleteTestSet(ctx context.Context, id uint) error {
	return notFound(s.TestSetRepo.Delete(ctx, id))
}

func (s *ContentService) applyTestSet(ctx context.Context, ts *model.TestSet, in *TestSetInput, partial bool) error {
	check := newChecker(partial)
	check.text("title", in.Title)
	check.text("description", in.Description)
	check.present("time_limit_minutes", in.TimeLimitMinutes != nil)
	check.text("difficulty", in.Difficulty)
	if check.present("category_id", in.CategoryID != nil) {
		if err := requireExisting(ctx, s.CategoryRepo.Exists, "category_id", *in.CategoryID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.Title != nil {
		ts.Title = *in.Title
	}
	if in.Description != nil {
		ts.Description = *in.Description
	}
	if in.CategoryID != nil {
		ts.CategoryID = *in.CategoryID
		ts.Category = nil
	}
	if in.TimeLimitMinutes != nil {
		ts.TimeLimitMinutes = *in.TimeLimitMinutes
	}
	if in.Difficulty != nil {
		ts.Difficulty = *in.Difficulty
	}
	return nil
}

func (s *ContentService) testSetViews(ctx context.Context, sets []model.TestSet) ([]TestSetView, error) {
	ids := make([]uint, 0, len(sets))
	for _, ts := range sets {
		ids = append(ids, ts.ID)
	}
	questionIDs, err := s.TestSetRepo.QuestionIDs(ctx, ids...)
	if err != nil {
		return nil, err
	}
	views := make([]TestSetView, 0, len(sets))
	for _, ts := range sets {
		qs := questionIDs[ts.ID]
		if qs == nil {
			qs = []uint{}
		}
		views = append(views, TestSetView{TestSet: ts, Questions: qs})
	}
	return views, nil
}

// ---------- 题目 ----------

func (s *ContentService) ListQuestions(ctx context.Context, testSetID *uint) ([]QuestionView, error) {
	questions, err := s.QuestionRepo.ByTestSet(ctx, testSetID)
	if err != nil {
		return nil, err
	}
	return s.questionViews(ctx, questions)
}

func (s *ContentService) GetQuestion(ctx context.Context, id uint) (*QuestionView, error) {
	q, err := s.QuestionRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	views, err := s.questionViews(ctx, []model.Question{*q})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ContentService) CreateQuestion(ctx context.Context, in *QuestionInput) (*QuestionView, error) {
	q := &model.Question{}
	if err := s.applyQuestion(ctx, q, in, false); err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return s.GetQuestion(ctx, q.ID)
}

func (s *ContentService) UpdateQuestion(ctx context.Context, id uint, in *QuestionInput, partial bool) (*QuestionView, error) {
	q, err := s.QuestionRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.applyQuestion(ctx, q, in, partial); err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.Save(ctx, q); err != nil {
		return nil, err
	}
	return s.GetQuestion(ctx, id)
}

func (s *ContentService) DeleteQuestion(ctx context.Context, id uint) error {
	return notFound(s.QuestionRepo.Delete(ctx, id))
}

func (s *ContentService) applyQuestion(ctx context.Context, q *model.Question, in *QuestionInput, partial bool) error {
	check := newChecker(partial)
	check.text("content", in.Content)
	check.text("explanation", in.Explanation)
	if check.present("testset_id", in.TestSetID != nil) {
		if err := requireExisting(ctx, s.TestSetRepo.Exists, "testset_id", *in.TestSetID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.TestSetID != nil {
		q.TestSetID = *in.TestSetID
		q.TestSet = nil
	}
	if in.Content != nil {
		q.Content = *in.Content
	}
	if in.Explanation != nil {
		q.Explanation = *in.Explanation
	}
	return nil
}

func (s *ContentService) questionViews(ctx context.Context, questions []model.Question) ([]QuestionView, error) {
	ids := make([]uint, 0, len(questions))
	sets := make([]model.TestSet, 0, len(questions))
	seen := make(map[uint]bool)
	for _, q := range questions {
		ids = append(ids, q.ID)
		if q.TestSet != nil && !seen[q.TestSetID] {
			seen[q.TestSetID] = true
			sets = append(sets, *q.TestSet)
		}
	}
	optionIDs, err := s.QuestionRepo.OptionIDs(ctx, ids...)
	if err != nil {
		return nil, err
	}
	setViews, err := s.testSetViews(ctx, sets)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*TestSetView, len(setViews))
	for i := range setViews {
		byID[setViews[i].ID] = &setViews[i]
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		opts := optionIDs[q.ID]
		if opts == nil {
			opts = []uint{}
		}
		view := QuestionView{Question: q, TestSet: byID[q.TestSetID], Options: opts}
		view.Question.TestSet = nil
		views = append(views, view)
	}
	return views, nil
}

// ---------- 选项 ----------

func (s *ContentService) ListOptions(ctx context.Context, questionID *uint) ([]OptionView, error) {
	options, err := s.OptionRepo.ByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return s.optionViews(ctx, options)
}

func (s *ContentService) GetOption(ctx context.Context, id uint) (*OptionView, error) {
	o, err := s.OptionRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	views, err := s.optionViews(ctx, []model.Option{*o})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ContentService) CreateOption(ctx context.Context, in *OptionInput) (*OptionView, error) {
	o := &model.Option{}
	if err := s.applyOption(ctx, o, in, false); err != nil {
		return nil, err
	}
	if err := s.OptionRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return s.GetOption(ctx, o.ID)
}

func (s *ContentService) UpdateOption(ctx context.Context, id uint, in *OptionInput, partial bool) (*OptionView, error) {
	o, err := s.OptionRepo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.applyOption(ctx, o, in, partial); err != nil {
		return nil, err
	}
	if err := s.OptionRepo.Save(ctx, o); err != nil {
		return nil, err
	}
	return s.GetOption(ctx, id)
}

func (s *ContentService) DeleteOption(ctx context.Context, id uint) error {
	return notFound(s.OptionRepo.Delete(ctx, id))
}

func (s *ContentService) applyOption(ctx context.Context, o *model.Option, in *OptionInput, partial bool) error {
	check := newChecker(partial)
	check.text("content", in.Content)
	check.present("is_correct", in.IsCorrect != nil)
	if check.present("question_id", in.QuestionID != nil) {
		if err := requireExisting(ctx, s.QuestionRepo.Exists, "question_id", *in.QuestionID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.QuestionID != nil {
		o.QuestionID = *in.QuestionID
		o.Question = nil
	}
	if in.Content != nil {
		o.Content = *in.Content
	}
	if in.IsCorrect != nil {
		o.IsCorrect = *in.IsCorrect
	}
	return nil
}

func (s *ContentService) optionViews(ctx context.Context, options []model.Option) ([]OptionView, error) {
	questions := make([]model.Question, 0, len(options))
	seen := make(map[uint]bool)
	for _, o := range options {
		if o.Question != nil && !seen[o.QuestionID] {
			seen[o.QuestionID] = true
			questions = append(questions, *o.Question)
		}
	}
	questionViews, err := s.questionViews(ctx, questions)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*QuestionView, len(questionViews))
	for i := range questionViews {
		byID[questionViews[i].ID] = &questionViews[i]
	}

	views := make([]OptionView, 0, len(options))
	for _, o := range options {
		view := OptionView{Option: o, Question: byID[o.QuestionID]}
		view.Option.Question = nil
		views = append(views, view)
	}
	return views, nil
}

type existsFunc func(ctx context.Context, id uint, scopes ...repository.Scope) (bool, error)
