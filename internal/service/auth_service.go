package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"teksher_backend/internal/config"
	"teksher_backend/internal/model"
	"teksher_backend/internal/repository"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/monitoring"
	"teksher_backend/pkg/tracing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgPasswordMismatch = "Password fields didn't match."
	msgUsernameTaken    = "A user with that username already exists."
	msgUsernameInvalid  = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."

	MsgResetSent    = "Password reset link has been sent to your email"
	MsgResetGeneric = "If this email is registered, a password reset link will be sent."
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// swagger:model RegisterInput
type RegisterInput struct {
	Username        string `json:"username" binding:"required,max=150"`
	Email           string `json:"email" binding:"omitempty,email,max=254"`
	Password        string `json:"password" binding:"required,password"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
	FirstName       string `json:"first_name" binding:"max=150"`
	LastName        string `json:"last_name" binding:"max=150"`
}

// swagger:model LoginInput
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// swagger:model ChangePasswordInput
type ChangePasswordInput struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// swagger:model ResetRequestInput
type ResetRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

// swagger:model ResetConfirmInput
type ResetConfirmInput struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Token           string `json:"token" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,password"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetRequestResult uid 与 token 仅在邮箱存在时返回
// swagger:model ResetRequestResult
type ResetRequestResult struct {
	Message string `json:"message"`
	UID     string `json:"uid,omitempty"`
	Token   string `json:"token,omitempty"`
}

type AuthService struct {
	DB              *gorm.DB
	UserRepo        *repository.UserRepository
	ProfileRepo     *repository.ProfileRepository
	PreferencesRepo *repository.PreferencesRepository
	Cfg             *config.Config
	ResetTokens     *ResetTokenGenerator
	Mailer          Mailer
	Revoker         TokenRevoker
}

func NewAuthService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	profileRepo *repository.ProfileRepository,
	preferencesRepo *repository.PreferencesRepository,
	cfg *config.Config,
	mailer Mailer,
	revoker TokenRevoker,
) *AuthService {
	return &AuthService{
		DB:              db,
		UserRepo:        userRepo,
		ProfileRepo:     profileRepo,
		PreferencesRepo: preferencesRepo,
		Cfg:             cfg,
		ResetTokens:     NewResetTokenGenerator(cfg.JWT.Secret, cfg.Auth.ResetTokenTTL),
		Mailer:          mailer,
		Revoker:         revoker,
	}
}

// Register 用户、资料、偏好设置在同一事务中创建
func (s *AuthService) Register(ctx context.Context, in *RegisterInput) (*model.User, string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	errs := util.FieldErrors{}
	username := strings.TrimSpace(in.Username)
	if !usernamePattern.MatchString(username) {
		errs.Add("username", msgUsernameInvalid)
	}
	for _, msg := range validatePassword(in.Password, map[string]string{
		"username":      username,
		"email address": in.Email,
		"first name":    in.FirstName,
		"last name":     in.LastName,
	}) {
		errs.Add("password", msg)
	}
	if errs.Empty() && in.Password != in.PasswordConfirm {
		errs.Add("password", msgPasswordMismatch)
	}
	if errs.Empty() {
		taken, err := s.UserRepo.UsernameExists(ctx, username)
		if err != nil {
			return nil, "", err
		}
		if taken {
			errs.Add("username", msgUsernameTaken)
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &model.User{
		Username:  username,
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		if err := s.ProfileRepo.WithTx(tx).Create(ctx, &model.UserProfile{UserID: user.ID}); err != nil {
			return err
		}
		return s.PreferencesRepo.WithTx(tx).Create(ctx, model.DefaultPreferences(user.ID))
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, "", util.NewFieldError("username", msgUsernameTaken)
	}
	if err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	monitoring.UsersRegistered.Inc()
	return user, token, nil
}

// Login 成功后更新 last_login，同时使未使用的重置令牌失效
func (s *AuthService) Login(ctx context.Context, in *LoginInput) (string, error) {
	user, err := s.UserRepo.FindByUsername(ctx, in.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", util.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return "", err
	}
	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// Logout 注销当前令牌直至其过期
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	until := time.Now().Add(s.Cfg.JWT.ExpireTime)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	return s.Revoker.Revoke(ctx, claims.ID, until)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	return user, notFound(err)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, in *ChangePasswordInput) error {
	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}

	errs := util.FieldErrors{}
	for _, msg := range validatePassword(in.NewPassword, userAttributes(user)) {
		errs.Add("new_password", msg)
	}
	if errs.Empty() && in.NewPassword != in.ConfirmPassword {
		errs.Add("password", msgPasswordMismatch)
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return util.NewFieldError("old_password", util.ErrWrongPassword.Error())
	}
	return s.setPassword(ctx, user.ID, in.NewPassword)
}

// RequestPasswordReset 邮箱不存在时只返回通用提示
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*ResetRequestResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ResetRequestResult{Message: MsgResetGeneric}, nil
	}
	if err != nil {
		return nil, err
	}

	uid := EncodeUID(user.ID)
	token := s.ResetTokens.Make(user)
	link := fmt.Sprintf("%s?uid=%s&token=%s", s.Cfg.Auth.ResetURL, uid, token)
	if err := s.Mailer.SendPasswordReset(ctx, user, link); err != nil {
		return nil, err
	}
	monitoring.PasswordResets.WithLabelValues("requested").Inc()

	return &ResetRequestResult{Message: MsgResetSent, UID: uid, Token: token}, nil
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, in *ResetConfirmInput) error {
	errs := util.FieldErrors{}
	for _, msg := range util.PasswordStrengthErrors(in.NewPassword) {
		errs.Add("new_password", msg)
	}
	if errs.Empty() && in.NewPassword != in.ConfirmPassword {
		errs.Add("password", msgPasswordMismatch)
	}
	if err := errs.OrNil(); err != nil {
		return err
	}

	user, err := s.UserRepo.FindByID(ctx, in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrInvalidResetUser
	}
	if err != nil {
		return err
	}
	if !s.ResetTokens.Check(user, in.Token) {
		return util.ErrInvalidResetToken
	}
	if msgs := util.PasswordSimilarityErrors(in.NewPassword, userAttributes(user)); len(msgs) > 0 {
		return util.FieldErrors{"new_password": msgs}
	}

	if err := s.setPassword(ctx, user.ID, in.NewPassword); err != nil {
		return err
	}
	monitoring.PasswordResets.WithLabelValues("completed").Inc()
	return nil
}

func (s *AuthService) setPassword(ctx context.Context, userID uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, userID, string(hash))
}

func validatePassword(password string, attrs map[string]string) []string {
	msgs := util.PasswordStrengthErrors(password)
	return append(msgs, util.PasswordSimilarityErrors(password, attrs)...)
}

func userAttributes(user *model.User) map[string]string {
	return map[string]string{
		"username":      user.Username,
		"email address": user.Email,
		"first name":    user.FirstName,
		"last name":     user.LastName,
	}
}
