package service

import (
	"errors"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/pkg"
	"Saut_Review/internal/repository/mysql"
	"Saut_Review/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	rSession *redis.SessionRepository
	emailSvc *EmailService
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: mysql.DB},
		rSession: &redis.SessionRepository{},
		emailSvc: emailSvc,
	}
}

func (s *UserService) Register(username, password, email, fullName, code string) error {
	ok, err := s.emailSvc.VerifyCode("register", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:   username,
		Password:   string(hash),
		Email:      email,
		FullName:   fullName,
		Role:       model.RoleUser,
		IsActive:   true,
		IsVerified: true, // 验证码通过即视为已验证邮箱
	}
	return s.repo.Create(user)
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if !user.IsActive {
		return nil, errors.New("account disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.PinToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.rSession.DropToken(userID)
}

// ResetPassword 验证码方式重置密码（未登录）
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyCode("reset", email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword 登录态修改密码，成功后踢掉当前会话
func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(userID)
}

func (s *UserService) Me(userID uint64) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return user, err
}

// List 管理员查看用户列表
func (s *UserService) List(actor *authz.Actor, page, size int) ([]model.User, error) {
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}
	offset, limit := pageToRange(page, size)
	return s.repo.List(offset, limit)
}

func (s *UserService) Get(actor *authz.Actor, id uint64) (*model.User, error) {
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return user, err
}

// UserUpdate 管理员部分更新；nil 字段不动
type UserUpdate struct {
	FullName   *string     `json:"full_name"`
	Role       *model.Role `json:"role"`
	IsActive   *bool       `json:"is_active"`
	IsVerified *bool       `json:"is_verified"`
}

func (s *UserService) Update(actor *authz.Actor, id uint64, in *UserUpdate) (*model.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Admin() {
		return nil, apperr.ErrForbidden
	}

	if in.Role != nil {
		switch *in.Role {
		case model.RoleUser, model.RoleScholar, model.RoleAdmin:
		default:
			return nil, apperr.Validationf("unknown role")
		}
		user.Role = *in.Role
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsVerified != nil {
		user.IsVerified = *in.IsVerified
	}
	if err = s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// pageToRange 页码转 offset/limit，约束条数上限
func pageToRange(page, size int) (offset, limit int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return (page - 1) * size, size
}
