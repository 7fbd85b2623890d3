package service

import (
	"context"
	"errors"

	"Saut_Review/internal/apperr"
	"Saut_Review/internal/authz"
	"Saut_Review/internal/model"
	"Saut_Review/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MembershipRepository
}

func NewCommunityService() *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: mysql.DB},
		memberRepo: &mysql.MembershipRepository{DB: mysql.DB},
	}
}

type CommunityCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Location    string `json:"location"`
}

// Create 学者/管理员建社区，创建者自动成为社区管理员
func (s *CommunityService) Create(actor *authz.Actor, in *CommunityCreate) (*model.Community, error) {
	if !actor.Privileged() {
		return nil, apperr.ErrForbidden
	}
	c := &model.Community{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		Location:    in.Location,
		IsActive:    true,
		CreatedBy:   actor.ID,
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommunityService) List(search string, page, size int) ([]model.Community, error) {
	offset, limit := pageToRange(page, size)
	return s.repo.List(search, offset, limit)
}

// CommunityView 带成员统计的社区视图
type CommunityView struct {
	model.Community
	MemberCount  int64        `json:"member_count"`
	ScholarCount int64        `json:"scholar_count"`
	Members      []model.User `json:"members,omitempty"`
}

func (s *CommunityService) view(c *model.Community, includeMembers bool) (*CommunityView, error) {
	memberCount, err := s.memberRepo.CountActive(c.ID)
	if err != nil {
		return nil, err
	}
	scholarCount, err := s.memberRepo.CountActiveScholars(c.ID)
	if err != nil {
		return nil, err
	}
	v := &CommunityView{Community: *c, MemberCount: memberCount, ScholarCount: scholarCount}
	if includeMembers {
		if v.Members, err = s.memberRepo.ListActiveMembers(c.ID); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ListMine 自己在内的社区
func (s *CommunityService) ListMine(actor *authz.Actor) ([]CommunityView, error) {
	memberships, err := s.memberRepo.ListActiveByUser(actor.ID)
	if err != nil {
		return nil, err
	}
	views := make([]CommunityView, 0, len(memberships))
	for _, m := range memberships {
		c, err := s.repo.FindByID(m.CommunityID)
		if err != nil {
			return nil, err
		}
		v, err := s.view(c, false)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Get 任何登录用户可看概况；成员名单只给 active 成员
func (s *CommunityService) Get(actor *authz.Actor, id uint64) (*CommunityView, error) {
	c, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	isMember, err := s.memberRepo.IsActiveMember(id, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.view(c, isMember)
}

type CommunityUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Location    *string `json:"location"`
	IsActive    *bool   `json:"is_active"`
}

// Update 平台管理员，或该社区的 active 管理员成员
func (s *CommunityService) Update(actor *authz.Actor, id uint64, in *CommunityUpdate) (*model.Community, error) {
	c, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !actor.Admin() {
		isCommunityAdmin, err := s.memberRepo.IsActiveAdmin(id, actor.ID)
		if err != nil {
			return nil, err
		}
		if !isCommunityAdmin {
			return nil, apperr.ErrForbidden
		}
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Address != nil {
		c.Address = *in.Address
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err = s.repo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommunityService) Join(ctx context.Context, actor *authz.Actor, communityID uint64) error {
	if _, err := s.repo.FindByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.memberRepo.Join(ctx, communityID, actor.ID, model.MemberRoleMember)
}

func (s *CommunityService) Leave(ctx context.Context, actor *authz.Actor, communityID uint64) error {
	if _, err := s.repo.FindByID(communityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}
	return s.memberRepo.Leave(ctx, communityID, actor.ID)
}

type CommunityStats struct {
	TotalMembers  int64 `json:"total_members"`
	TotalScholars int64 `json:"total_scholars"`
	ActiveMembers int64 `json:"active_members"`
}

// Stats 成员或平台管理员可看
func (s *CommunityService) Stats(actor *authz.Actor, id uint64) (*CommunityStats, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	isMember, err := s.memberRepo.IsActiveMember(id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !isMember && !actor.Admin() {
		return nil, apperr.ErrForbidden
	}

	members, err := s.memberRepo.CountActive(id)
	if err != nil {
		return nil, err
	}
	scholars, err := s.memberRepo.CountActiveScholars(id)
	if err != nil {
		return nil, err
	}
	return &CommunityStats{
		TotalMembers:  members,
		TotalScholars: scholars,
		ActiveMembers: members,
	}, nil
}
