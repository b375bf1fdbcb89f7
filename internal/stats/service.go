package stats

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Zoli1212/awsflow/constants"
	"github.com/Zoli1212/awsflow/internal/auth"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/repository"
)

// recentActivityLimit bounds the per-user activity drill-down.
const recentActivityLimit = 20

// StatisticsData is the dashboard payload: every account with its activity
// aggregate, plus role totals.
type StatisticsData struct {
	Users           []*entity.UserStatistics `json:"users"`
	TotalUsers      int                      `json:"total_users"`
	TotalSuperUsers int                      `json:"total_super_users"`
	TotalTenants    int                      `json:"total_tenants"`
	TotalWorkers    int                      `json:"total_workers"`
}

// UserActivityDetails is the drill-down for one user.
type UserActivityDetails struct {
	RecentActivity []*entity.History `json:"recent_activity"`
	OffersCount    int               `json:"offers_count"`
	WorksCount     int               `json:"works_count"`
	BillingsCount  int               `json:"billings_count"`
}

// Service aggregates per-user activity for the superuser dashboard and
// applies role changes. Every operation is gated on the caller holding the
// superuser flag.
type Service struct {
	users    repository.UserRepository
	activity repository.ActivityRepository
	identity auth.IdentityResolver
	logger   *slog.Logger
}

func NewService(
	users repository.UserRepository,
	activity repository.ActivityRepository,
	identity auth.IdentityResolver,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		activity: activity,
		identity: identity,
		logger:   logger,
	}
}

// GetStatistics lists every account, newest first, with its history count
// and last-activity timestamp, plus role totals. Per-user aggregates are
// loaded concurrently; the listing order is preserved.
func (s *Service) GetStatistics(ctx context.Context) (*StatisticsData, error) {
	if err := s.requireSuperUser(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*entity.UserStatistics, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range users {
		g.Go(func() error {
			count, err := s.activity.CountHistory(gctx, u.Email)
			if err != nil {
				return err
			}
			last, err := s.activity.LastActivity(gctx, u.Email)
			if err != nil {
				return err
			}
			rows[i] = &entity.UserStatistics{
				User:          *u,
				ActivityCount: count,
				LastActivity:  last,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &StatisticsData{
		Users:      rows,
		TotalUsers: len(users),
	}
	for _, u := range users {
		if u.IsSuperUser {
			data.TotalSuperUsers++
		}
		if u.IsTenant {
			data.TotalTenants++
		} else {
			data.TotalWorkers++
		}
	}
	return data, nil
}

// GetUserActivityDetails returns the most recent history rows and the
// offer/work/billing counts for one user's tenant scope.
func (s *Service) GetUserActivityDetails(ctx context.Context, userEmail string) (*UserActivityDetails, error) {
	if err := s.requireSuperUser(ctx); err != nil {
		return nil, err
	}
	v := common.NewValidator()
	v.Field("userEmail", userEmail, common.Required, common.Email)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	details := &UserActivityDetails{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.activity.RecentHistory(gctx, userEmail, recentActivityLimit)
		if err == nil {
			details.RecentActivity = rows
		}
		return err
	})
	g.Go(func() error {
		n, err := s.activity.CountOffers(gctx, userEmail)
		if err == nil {
			details.OffersCount = n
		}
		return err
	})
	g.Go(func() error {
		n, err := s.activity.CountWorks(gctx, userEmail)
		if err == nil {
			details.WorksCount = n
		}
		return err
	})
	g.Go(func() error {
		n, err := s.activity.CountBillings(gctx, userEmail)
		if err == nil {
			details.BillingsCount = n
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}

// UpdateUserRole sets the role flags for a user: superuser implies tenant,
// tenant clears superuser, worker clears both.
func (s *Service) UpdateUserRole(ctx context.Context, userID uuid.UUID, role constants.UserRole) error {
	if err := s.requireSuperUser(ctx); err != nil {
		return err
	}

	var isSuperUser, isTenant bool
	switch role {
	case constants.RoleSuperuser:
		isSuperUser, isTenant = true, true
	case constants.RoleTenant:
		isSuperUser, isTenant = false, true
	case constants.RoleWorker:
		isSuperUser, isTenant = false, false
	default:
		return common.InvalidArgumentError("unknown role: " + string(role))
	}

	if err := s.users.UpdateRoleFlags(ctx, userID, isSuperUser, isTenant); err != nil {
		return err
	}
	s.logger.Info("user role updated", "user_id", userID, "role", role)
	return nil
}

func (s *Service) requireSuperUser(ctx context.Context) error {
	principal, err := s.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	ok, err := s.users.IsSuperUser(ctx, principal.Email)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn("statistics access denied", "email", principal.Email)
		return common.ErrUnauthorized
	}
	return nil
}
