package mapper

import (
	"thinkora-be/internal/entity"
	"thinkora-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) UserToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:                           u.Id,
		Email:                        u.Email,
		PasswordHash:                 u.PasswordHash,
		FullName:                     u.FullName,
		Role:                         entity.UserRole(u.Role),
		Status:                       entity.UserStatus(u.Status),
		EmailVerified:                u.EmailVerified,
		EmailVerifiedAt:              u.EmailVerifiedAt,
		CreatedAt:                    u.CreatedAt,
		UpdatedAt:                    u.UpdatedAt,
		AssistantDailyUsage:          u.AssistantDailyUsage,
		AssistantDailyUsageLastReset: u.AssistantDailyUsageLastReset,
	}
}

func (m *UserMapper) UserToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                           u.Id,
		Email:                        u.Email,
		PasswordHash:                 u.PasswordHash,
		FullName:                     u.FullName,
		Role:                         string(u.Role),
		Status:                       string(u.Status),
		EmailVerified:                u.EmailVerified,
		EmailVerifiedAt:              u.EmailVerifiedAt,
		CreatedAt:                    u.CreatedAt,
		UpdatedAt:                    u.UpdatedAt,
		AssistantDailyUsage:          u.AssistantDailyUsage,
		AssistantDailyUsageLastReset: u.AssistantDailyUsageLastReset,
	}
}

func (m *UserMapper) VerificationTokenToEntity(t *model.EmailVerificationToken) *entity.EmailVerificationToken {
	if t == nil {
		return nil
	}
	e := entity.EmailVerificationToken(*t)
	return &e
}

func (m *UserMapper) VerificationTokenToModel(t *entity.EmailVerificationToken) *model.EmailVerificationToken {
	if t == nil {
		return nil
	}
	mo := model.EmailVerificationToken(*t)
	return &mo
}

func (m *UserMapper) RefreshTokenToEntity(t *model.UserRefreshToken) *entity.UserRefreshToken {
	if t == nil {
		return nil
	}
	e := entity.UserRefreshToken(*t)
	return &e
}

func (m *UserMapper) RefreshTokenToModel(t *entity.UserRefreshToken) *model.UserRefreshToken {
	if t == nil {
		return nil
	}
	mo := model.UserRefreshToken(*t)
	return &mo
}
