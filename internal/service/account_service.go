package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/tracing"

	"gorm.io/gorm"
)

// swagger:model PreferencesInput
type PreferencesInput struct {
	Language             *model.Language `json:"language"`
	Theme                *model.Theme    `json:"theme"`
	NotificationsEnabled *bool           `json:"notifications_enabled"`
}

// swagger:model ProgressInput
type ProgressInput struct {
	TestSetID         *uint                 `json:"testset"`
	Status            *model.ProgressStatus `json:"status"`
	LastQuestionIndex *int                  `json:"last_question_index"`
	TimeSpent         *int                  `json:"time_spent"`
}

// swagger:model HistoryInput
type HistoryInput struct {
	QuestionID     *uint      `json:"question"`
	TimesAttempted *int       `json:"times_attempted"`
	TimesCorrect   *int       `json:"times_correct"`
	LastAttempted  *time.Time `json:"last_attempted"`
}

func invalidChoice(v interface{}) string {
	return fmt.Sprintf("\"%v\" is not a valid choice.", v)
}

// AccountService 资料、偏好、进度与答题历史，全部限定为当前用户
type AccountService struct {
	ProfileRepo     *repository.ProfileRepository
	PreferencesRepo *repository.PreferencesRepository
	ProgressRepo    *repository.ProgressRepository
	HistoryRepo     *repository.HistoryRepository
	TestSetRepo     *repository.TestSetRepository
	QuestionRepo    *repository.QuestionRepository
}

func NewAccountService(
	profileRepo *repository.ProfileRepository,
	preferencesRepo *repository.PreferencesRepository,
	progressRepo *repository.ProgressRepository,
	historyRepo *repository.HistoryRepository,
	testSetRepo *repository.TestSetRepository,
	questionRepo *repository.QuestionRepository,
) *AccountService {
	return &AccountService{
		ProfileRepo:     profileRepo,
		PreferencesRepo: preferencesRepo,
		ProgressRepo:    progressRepo,
		HistoryRepo:     historyRepo,
		TestSetRepo:     testSetRepo,
		QuestionRepo:    questionRepo,
	}
}

// ---------- 资料 ----------

func (s *AccountService) ListProfiles(ctx context.Context, userID uint) ([]model.UserProfile, error) {
	return s.ProfileRepo.List(ctx, repository.OwnedBy(userID))
}

func (s *AccountService) GetProfile(ctx context.Context, userID, id uint) (*model.UserProfile, error) {
	p, err := s.ProfileRepo.Get(ctx, id, repository.OwnedBy(userID))
	return p, notFound(err)
}

// CreateProfile 每个用户只有一份资料
func (s *AccountService) CreateProfile(ctx context.Context, userID uint) (*model.UserProfile, error) {
	n, err := s.ProfileRepo.Count(ctx, repository.OwnedBy(userID))
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, util.NewFieldError("user", "This field must be unique.")
	}
	p := &model.UserProfile{UserID: userID}
	if err := s.ProfileRepo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewFieldError("user", "This field must be unique.")
		}
		return nil, err
	}
	return p, nil
}

func (s *AccountService) DeleteProfile(ctx context.Context, userID, id uint) error {
	return notFound(s.ProfileRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

// ---------- 偏好 ----------

func (s *AccountService) ListPreferences(ctx context.Context, userID uint) ([]model.UserPreferences, error) {
	return s.PreferencesRepo.List(ctx, repository.OwnedBy(userID))
}

func (s *AccountService) GetPreferences(ctx context.Context, userID, id uint) (*model.UserPreferences, error) {
	p, err := s.PreferencesRepo.Get(ctx, id, repository.OwnedBy(userID))
	return p, notFound(err)
}

// MyPreferences 不存在时按默认值创建；并发创建时唯一索引冲突后重新读取
func (s *AccountService) MyPreferences(ctx context.Context, userID uint) (*model.UserPreferences, error) {
	prefs, err := s.PreferencesRepo.FindByUser(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prefs = model.DefaultPreferences(userID)
	if err := s.PreferencesRepo.Create(ctx, prefs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.PreferencesRepo.FindByUser(ctx, userID)
		}
		return nil, err
	}
	return prefs, nil
}

func (s *AccountService) CreatePreferences(ctx context.Context, userID uint, in *PreferencesInput) (*model.UserPreferences, error) {
	n, err := s.PreferencesRepo.Count(ctx, repository.OwnedBy(userID))
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, util.NewFieldError("user", "This field must be unique.")
	}

	prefs := model.DefaultPreferences(userID)
	if err := applyPreferences(prefs, in); err != nil {
		return nil, err
	}
	if err := s.PreferencesRepo.Create(ctx, prefs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewFieldError("user", "This field must be unique.")
		}
		return nil, err
	}
	return prefs, nil
}

// UpdatePreferences 所有字段都有默认值，PUT 与 PATCH 行为一致
func (s *AccountService) UpdatePreferences(ctx context.Context, userID, id uint, in *PreferencesInput) (*model.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := applyPreferences(prefs, in); err != nil {
		return nil, err
	}
	if err := s.PreferencesRepo.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (s *AccountService) DeletePreferences(ctx context.Context, userID, id uint) error {
	return notFound(s.PreferencesRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

func applyPreferences(prefs *model.UserPreferences, in *PreferencesInput) error {
	errs := util.FieldErrors{}
	if in.Language != nil && !in.Language.Valid() {
		errs.Add("language", invalidChoice(*in.Language))
	}
	if in.Theme != nil && !in.Theme.Valid() {
		errs.Add("theme", invalidChoice(*in.Theme))
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	if in.Language != nil {
		prefs.Language = *in.Language
	}
	if in.Theme != nil {
		prefs.Theme = *in.Theme
	}
	if in.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *in.NotificationsEnabled
	}
	return nil
}

// ---------- 进度 ----------

func (s *AccountService) ListProgress(ctx context.Context, userID uint) ([]model.TestProgress, error) {
	return s.ProgressRepo.List(ctx, repository.OwnedBy(userID))
}

// ProgressByStatus status 为空时返回 util.ErrStatusParamRequired
func (s *AccountService) ProgressByStatus(ctx context.Context, userID uint, status string) ([]model.TestProgress, error) {
	if status == "" {
		return nil, util.ErrStatusParamRequired
	}
	return s.ProgressRepo.ByStatus(ctx, userID, model.ProgressStatus(status))
}

func (s *AccountService) GetProgress(ctx context.Context, userID, id uint) (*model.TestProgress, error) {
	p, err := s.ProgressRepo.Get(ctx, id, repository.OwnedBy(userID))
	return p, notFound(err)
}

func (s *AccountService) CreateProgress(ctx context.Context, userID uint, in *ProgressInput) (*model.TestProgress, error) {
	p := &model.TestProgress{UserID: userID, Status: model.StatusNotStarted}
	if err := s.applyProgress(ctx, p, in, false); err != nil {
		return nil, err
	}
	if err := s.ProgressRepo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.UniqueTogether("user", "testset")
		}
		return nil, err
	}
	return p, nil
}

func (s *AccountService) UpdateProgress(ctx context.Context, userID, id uint, in *ProgressInput, partial bool) (*model.TestProgress, error) {
	p, err := s.GetProgress(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyProgress(ctx, p, in, partial); err != nil {
		return nil, err
	}
	if err := s.ProgressRepo.Save(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.UniqueTogether("user", "testset")
		}
		return nil, err
	}
	return p, nil
}

func (s *AccountService) DeleteProgress(ctx context.Context, userID, id uint) error {
	return notFound(s.ProgressRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

// ResetAll 删除当前用户的全部进度与答题历史，要么全部成功要么全部回滚
func (s *AccountService) ResetAll(ctx context.Context, userID uint) error {
	ctx, span := tracing.Tracer.Start(ctx, "AccountService.ResetAll")
	defer span.End()
	return s.ProgressRepo.ResetAll(ctx, userID)
}

func (s *AccountService) applyProgress(ctx context.Context, p *model.TestProgress, in *ProgressInput, partial bool) error {
	check := newChecker(partial)
	if in.Status != nil && !in.Status.Valid() {
		check.add(util.NewFieldError("status", invalidChoice(*in.Status)))
	}
	if check.present("testset", in.TestSetID != nil) {
		if err := requireExisting(ctx, s.TestSetRepo.Exists, "testset", *in.TestSetID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.TestSetID != nil {
		dup, err := s.ProgressRepo.ExistsForTestSet(ctx, p.UserID, *in.TestSetID, p.ID)
		if err != nil {
			return err
		}
		if dup {
			return util.UniqueTogether("user", "testset")
		}
		p.TestSetID = *in.TestSetID
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.LastQuestionIndex != nil {
		p.LastQuestionIndex = *in.LastQuestionIndex
	}
	if in.TimeSpent != nil {
		p.TimeSpent = *in.TimeSpent
	}
	return nil
}

// ---------- 答题历史 ----------

func (s *AccountService) ListHistory(ctx context.Context, userID uint) ([]model.QuestionHistory, error) {
	return s.HistoryRepo.List(ctx, repository.OwnedBy(userID))
}

func (s *AccountService) GetHistory(ctx context.Context, userID, id uint) (*model.QuestionHistory, error) {
	h, err := s.HistoryRepo.Get(ctx, id, repository.OwnedBy(userID))
	return h, notFound(err)
}

func (s *AccountService) CreateHistory(ctx context.Context, userID uint, in *HistoryInput) (*model.QuestionHistory, error) {
	h := &model.QuestionHistory{UserID: userID}
	if err := s.applyHistory(ctx, h, in, false); err != nil {
		return nil, err
	}
	if err := s.HistoryRepo.Create(ctx, h); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.UniqueTogether("user", "question")
		}
		return nil, err
	}
	return h, nil
}

func (s *AccountService) UpdateHistory(ctx context.Context, userID, id uint, in *HistoryInput, partial bool) (*model.QuestionHistory, error) {
	h, err := s.GetHistory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyHistory(ctx, h, in, partial); err != nil {
		return nil, err
	}
	if err := s.HistoryRepo.Save(ctx, h); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.UniqueTogether("user", "question")
		}
		return nil, err
	}
	return h, nil
}

func (s *AccountService) DeleteHistory(ctx context.Context, userID, id uint) error {
	return notFound(s.HistoryRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

func (s *AccountService) applyHistory(ctx context.Context, h *model.QuestionHistory, in *HistoryInput, partial bool) error {
	check := newChecker(partial)
	if check.present("question", in.QuestionID != nil) {
		if err := requireExisting(ctx, s.QuestionRepo.Exists, "question", *in.QuestionID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.QuestionID != nil {
		dup, err := s.HistoryRepo.ExistsForQuestion(ctx, h.UserID, *in.QuestionID, h.ID)
		if err != nil {
			return err
		}
		if dup {
			return util.UniqueTogether("user", "question")
		}
		h.QuestionID = *in.QuestionID
	}
	if in.TimesAttempted != nil {
		h.TimesAttempted = *in.TimesAttempted
	}
	if in.TimesCorrect != nil {
		h.TimesCorrect = *in.TimesCorrect
	}
	if in.LastAttempted != nil || !partial {
		h.LastAttempted = in.LastAttempted
	}
	return nil
}
