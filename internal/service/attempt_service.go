package service

import (
	"context"

	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/monitoring"
)

// AttemptInput 分数与是否通过由客户端计算后提交
// swagger:model AttemptInput
type AttemptInput struct {
	TestSetID       *uint    `json:"testset"`
	ScorePercent    *float64 `json:"score_percent"`
	Passed          *bool    `json:"passed"`
	DurationMinutes *int     `json:"duration_minutes"`
}

// swagger:model AnswerInput
type AnswerInput struct {
	AttemptID        *uint `json:"attempt"`
	QuestionID       *uint `json:"question"`
	SelectedOptionID *uint `json:"selected_option"`
	IsCorrect        *bool `json:"is_correct"`
}

type AttemptService struct {
	AttemptRepo  *repository.AttemptRepository
	AnswerRepo   *repository.AnswerRepository
	TestSetRepo  *repository.TestSetRepository
	QuestionRepo *repository.QuestionRepository
	OptionRepo   *repository.OptionRepository
}

func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.AnswerRepository,
	testSetRepo *repository.TestSetRepository,
	questionRepo *repository.QuestionRepository,
	optionRepo *repository.OptionRepository,
) *AttemptService {
	return &AttemptService{
		AttemptRepo:  attemptRepo,
		AnswerRepo:   answerRepo,
		TestSetRepo:  testSetRepo,
		QuestionRepo: questionRepo,
		OptionRepo:   optionRepo,
	}
}

func withAnswers(a *model.TestAttempt) *model.TestAttempt {
	if a.Answers == nil {
		a.Answers = []model.Answer{}
	}
	return a
}

func (s *AttemptService) ListAttempts(ctx context.Context, userID uint, testSetID *uint) ([]model.TestAttempt, error) {
	attempts, err := s.AttemptRepo.List(ctx, repository.OwnedBy(userID), repository.Equals("testset_id", testSetID))
	if err != nil {
		return nil, err
	}
	for i := range attempts {
		withAnswers(&attempts[i])
	}
	return attempts, nil
}

func (s *AttemptService) GetAttempt(ctx context.Context, userID, id uint) (*model.TestAttempt, error) {
	a, err := s.AttemptRepo.Get(ctx, id, repository.OwnedBy(userID))
	if err != nil {
		return nil, notFound(err)
	}
	return withAnswers(a), nil
}

// CreateAttempt 归属用户取自当前会话
func (s *AttemptService) CreateAttempt(ctx context.Context, userID uint, in *AttemptInput) (*model.TestAttempt, error) {
	a := &model.TestAttempt{UserID: userID}
	if err := s.applyAttempt(ctx, a, in, false); err != nil {
		return nil, err
	}
	if err := s.AttemptRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	monitoring.RecordAttempt(a.Passed)
	return s.GetAttempt(ctx, userID, a.ID)
}

func (s *AttemptService) UpdateAttempt(ctx context.Context, userID, id uint, in *AttemptInput, partial bool) (*model.TestAttempt, error) {
	a, err := s.AttemptRepo.Get(ctx, id, repository.OwnedBy(userID))
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.applyAttempt(ctx, a, in, partial); err != nil {
		return nil, err
	}
	if err := s.AttemptRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return s.GetAttempt(ctx, userID, id)
}

func (s *AttemptService) DeleteAttempt(ctx context.Context, userID, id uint) error {
	return notFound(s.AttemptRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

func (s *AttemptService) applyAttempt(ctx context.Context, a *model.TestAttempt, in *AttemptInput, partial bool) error {
	check := newChecker(partial)
	check.present("score_percent", in.ScorePercent != nil)
	check.present("passed", in.Passed != nil)
	check.present("duration_minutes", in.DurationMinutes != nil)
	if check.present("testset", in.TestSetID != nil) {
		if err := requireExisting(ctx, s.TestSetRepo.Exists, "testset", *in.TestSetID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.TestSetID != nil {
		a.TestSetID = *in.TestSetID
	}
	if in.ScorePercent != nil {
		a.ScorePercent = *in.ScorePercent
	}
	if in.Passed != nil {
		a.Passed = *in.Passed
	}
	if in.DurationMinutes != nil {
		a.DurationMinutes = *in.DurationMinutes
	}
	a.Answers = nil
	return nil
}

// ---------- 作答 ----------

func (s *AttemptService) ListAnswers(ctx context.Context, userID uint, attemptID *uint) ([]model.Answer, error) {
	return s.AnswerRepo.List(ctx, repository.AnswersOwnedBy(userID), repository.Equals("attempt_id", attemptID))
}

func (s *AttemptService) GetAnswer(ctx context.Context, userID, id uint) (*model.Answer, error) {
	a, err := s.AnswerRepo.Get(ctx, id, repository.AnswersOwnedBy(userID))
	return a, notFound(err)
}

// CreateAnswer 只能挂到当前用户自己的答题记录下
func (s *AttemptService) CreateAnswer(ctx context.Context, userID uint, in *AnswerInput) (*model.Answer, error) {
	a := &model.Answer{}
	if err := s.applyAnswer(ctx, userID, a, in, false); err != nil {
		return nil, err
	}
	if err := s.AnswerRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.GetAnswer(ctx, userID, a.ID)
}

func (s *AttemptService) UpdateAnswer(ctx context.Context, userID, id uint, in *AnswerInput, partial bool) (*model.Answer, error) {
	a, err := s.GetAnswer(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyAnswer(ctx, userID, a, in, partial); err != nil {
		return nil, err
	}
	if err := s.AnswerRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return s.GetAnswer(ctx, userID, id)
}

func (s *AttemptService) DeleteAnswer(ctx context.Context, userID, id uint) error {
	return notFound(s.AnswerRepo.Delete(ctx, id, repository.AnswersOwnedBy(userID)))
}

func (s *AttemptService) applyAnswer(ctx context.Context, userID uint, a *model.Answer, in *AnswerInput, partial bool) error {
	check := newChecker(partial)
	check.present("is_correct", in.IsCorrect != nil)
	if check.present("attempt", in.AttemptID != nil) {
		if err := requireExisting(ctx, s.AttemptRepo.Exists, "attempt", *in.AttemptID, check, repository.OwnedBy(userID)); err != nil {
			return err
		}
	}
	if check.present("question", in.QuestionID != nil) {
		if err := requireExisting(ctx, s.QuestionRepo.Exists, "question", *in.QuestionID, check); err != nil {
			return err
		}
	}
	if in.SelectedOptionID != nil {
		if err := requireExisting(ctx, s.OptionRepo.Exists, "selected_option", *in.SelectedOptionID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.AttemptID != nil {
		a.AttemptID = *in.AttemptID
	}
	if in.QuestionID != nil {
		a.QuestionID = *in.QuestionID
	}
	// PATCH 未提供时保留原值，PUT 未提供时清空
	if in.SelectedOptionID != nil || !partial {
		a.SelectedOptionID = in.SelectedOptionID
	}
	if in.IsCorrect != nil {
		a.IsCorrect = *in.IsCorrect
	}
	return nil
}

// requireExisting 关联对象不存在（或不在范围内）时记录字段错误
func requireExisting(ctx context.Context, exists existsFunc, field string, id uint, check *checker, scopes ...repository.Scope) error {
	ok, err := exists(ctx, id, scopes...)
	if err != nil {
		return err
	}
	if !ok {
		check.add(util.InvalidPK(field, id))
	}
	return nil
}
