package service

import (
	"context"

	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"
)

// swagger:model QuestionBookmarkInput
type QuestionBookmarkInput struct {
	TestSetID  *uint `json:"testset"`
	QuestionID *uint `json:"question"`
}

// swagger:model TestSetBookmarkInput
type TestSetBookmarkInput struct {
	TestSetID *uint `json:"testset"`
}

// BookmarkService 书签允许重复
type BookmarkService struct {
	QuestionBookmarkRepo *repository.QuestionBookmarkRepository
	TestSetBookmarkRepo  *repository.TestSetBookmarkRepository
	TestSetRepo          *repository.TestSetRepository
	QuestionRepo         *repository.QuestionRepository
}

func NewBookmarkService(
	questionBookmarkRepo *repository.QuestionBookmarkRepository,
	testSetBookmarkRepo *repository.TestSetBookmarkRepository,
	testSetRepo *repository.TestSetRepository,
	questionRepo *repository.QuestionRepository,
) *BookmarkService {
	return &BookmarkService{
		QuestionBookmarkRepo: questionBookmarkRepo,
		TestSetBookmarkRepo:  testSetBookmarkRepo,
		TestSetRepo:          testSetRepo,
		QuestionRepo:         questionRepo,
	}
}

func (s *BookmarkService) ListQuestionBookmarks(ctx context.Context, userID uint, testSetID, questionID *uint) ([]model.QuestionBookmark, error) {
	return s.QuestionBookmarkRepo.ListForUser(ctx, userID, testSetID, questionID)
}

func (s *BookmarkService) GetQuestionBookmark(ctx context.Context, userID, id uint) (*model.QuestionBookmark, error) {
	b, err := s.QuestionBookmarkRepo.Get(ctx, id, repository.OwnedBy(userID))
	return b, notFound(err)
}

func (s *BookmarkService) CreateQuestionBookmark(ctx context.Context, userID uint, in *QuestionBookmarkInput) (*model.QuestionBookmark, error) {
	b := &model.QuestionBookmark{UserID: userID}
	if err := s.applyQuestionBookmark(ctx, b, in, false); err != nil {
		return nil, err
	}
	if err := s.QuestionBookmarkRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) UpdateQuestionBookmark(ctx context.Context, userID, id uint, in *QuestionBookmarkInput, partial bool) (*model.QuestionBookmark, error) {
	b, err := s.GetQuestionBookmark(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyQuestionBookmark(ctx, b, in, partial); err != nil {
		return nil, err
	}
	if err := s.QuestionBookmarkRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) DeleteQuestionBookmark(ctx context.Context, userID, id uint) error {
	return notFound(s.QuestionBookmarkRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

func (s *BookmarkService) applyQuestionBookmark(ctx context.Context, b *model.QuestionBookmark, in *QuestionBookmarkInput, partial bool) error {
	check := newChecker(partial)
	if check.present("testset", in.TestSetID != nil) {
		if err := requireExisting(ctx, s.TestSetRepo.Exists, "testset", *in.TestSetID, check); err != nil {
			return err
		}
	}
	if check.present("question", in.QuestionID != nil) {
		if err := requireExisting(ctx, s.QuestionRepo.Exists, "question", *in.QuestionID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}

	if in.TestSetID != nil {
		b.TestSetID = *in.TestSetID
	}
	if in.QuestionID != nil {
		b.QuestionID = *in.QuestionID
	}
	return nil
}

// ---------- 试卷书签 ----------

func (s *BookmarkService) ListTestSetBookmarks(ctx context.Context, userID uint, testSetID *uint) ([]model.TestSetBookmark, error) {
	return s.TestSetBookmarkRepo.ListForUser(ctx, userID, testSetID)
}

func (s *BookmarkService) GetTestSetBookmark(ctx context.Context, userID, id uint) (*model.TestSetBookmark, error) {
	b, err := s.TestSetBookmarkRepo.Get(ctx, id, repository.OwnedBy(userID))
	return b, notFound(err)
}

func (s *BookmarkService) CreateTestSetBookmark(ctx context.Context, userID uint, in *TestSetBookmarkInput) (*model.TestSetBookmark, error) {
	b := &model.TestSetBookmark{UserID: userID}
	if err := s.applyTestSetBookmark(ctx, b, in, false); err != nil {
		return nil, err
	}
	if err := s.TestSetBookmarkRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) UpdateTestSetBookmark(ctx context.Context, userID, id uint, in *TestSetBookmarkInput, partial bool) (*model.TestSetBookmark, error) {
	b, err := s.GetTestSetBookmark(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyTestSetBookmark(ctx, b, in, partial); err != nil {
		return nil, err
	}
	if err := s.TestSetBookmarkRepo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) DeleteTestSetBookmark(ctx context.Context, userID, id uint) error {
	return notFound(s.TestSetBookmarkRepo.Delete(ctx, id, repository.OwnedBy(userID)))
}

func (s *BookmarkService) applyTestSetBookmark(ctx context.Context, b *model.TestSetBookmark, in *TestSetBookmarkInput, partial bool) error {
	check := newChecker(partial)
	if check.present("testset", in.TestSetID != nil) {
		if err := requireExisting(ctx, s.TestSetRepo.Exists, "testset", *in.TestSetID, check); err != nil {
			return err
		}
	}
	if err := check.err(); err != nil {
		return err
	}
	if in.TestSetID != nil {
		b.TestSetID = *in.TestSetID
	}
	return nil
}
