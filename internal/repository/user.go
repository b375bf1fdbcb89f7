package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Zoli1212/awsflow/gen/ent"
	"github.com/Zoli1212/awsflow/gen/ent/user"
	"github.com/Zoli1212/awsflow/internal/entity"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// ListUsers returns every account, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// UpdateRoleFlags sets the two role bits on a user.
	UpdateRoleFlags(ctx context.Context, id uuid.UUID, isSuperUser, isTenant bool) error
	IsSuperUser(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toUser(u), nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := r.client.User.Query().
		Order(user.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	result := make([]*entity.User, len(users))
	for i, u := range users {
		result[i] = toUser(u)
	}
	return result, nil
}

func (r *userRepository) UpdateRoleFlags(ctx context.Context, id uuid.UUID, isSuperUser, isTenant bool) error {
	err := r.client.User.UpdateOneID(id).
		SetIsSuperUser(isSuperUser).
		SetIsTenant(isTenant).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update user role", "user_id", id, "error", err)
	}
	return err
}

func (r *userRepository) IsSuperUser(ctx context.Context, email string) (bool, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Select(user.FieldIsSuperUser).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		r.logger.Error("failed to check superuser flag", "email", email, "error", err)
		return false, err
	}
	return u.IsSuperUser, nil
}

func toUser(u *ent.User) *entity.User {
	return &entity.User{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperUser: u.IsSuperUser,
		IsTenant:    u.IsTenant,
		InvitedBy:   u.InvitedBy,
		TrialEndsAt: u.TrialEndsAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
