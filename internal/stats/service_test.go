package stats

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zoli1212/awsflow/constants"
	"github.com/Zoli1212/awsflow/internal/auth"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/repository/mocks"
)

const adminEmail = "admin@pelda.hu"

type fakeResolver struct {
	principal auth.Principal
	err       error
}

func (f fakeResolver) Resolve(context.Context) (auth.Principal, error) {
	return f.principal, f.err
}

func newStatsService(t *testing.T, resolver auth.IdentityResolver) (*Service, *mocks.MockUserRepository, *mocks.MockActivityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	activity := mocks.NewMockActivityRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(users, activity, resolver, logger), users, activity
}

func adminResolver() fakeResolver {
	return fakeResolver{principal: auth.Principal{Email: adminEmail, TenantEmail: adminEmail}}
}

func TestGetStatisticsAggregates(t *testing.T) {
	svc, users, activity := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)

	accounts := []*entity.User{
		{ID: uuid.New(), Email: adminEmail, IsSuperUser: true, IsTenant: true},
		{ID: uuid.New(), Email: "mester@pelda.hu", IsTenant: true},
		{ID: uuid.New(), Email: "szaki@pelda.hu"},
	}
	users.EXPECT().ListUsers(gomock.Any()).Return(accounts, nil)

	lastSeen := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	activity.EXPECT().CountHistory(gomock.Any(), adminEmail).Return(5, nil)
	activity.EXPECT().LastActivity(gomock.Any(), adminEmail).Return(&lastSeen, nil)
	activity.EXPECT().CountHistory(gomock.Any(), "mester@pelda.hu").Return(12, nil)
	activity.EXPECT().LastActivity(gomock.Any(), "mester@pelda.hu").Return(&lastSeen, nil)
	activity.EXPECT().CountHistory(gomock.Any(), "szaki@pelda.hu").Return(0, nil)
	activity.EXPECT().LastActivity(gomock.Any(), "szaki@pelda.hu").Return(nil, nil)

	data, err := svc.GetStatistics(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if data.TotalUsers != 3 || data.TotalSuperUsers != 1 || data.TotalTenants != 2 || data.TotalWorkers != 1 {
		t.Errorf("totals = %+v", data)
	}
	if len(data.Users) != 3 {
		t.Fatalf("users = %d", len(data.Users))
	}
	// Concurrent aggregation must keep the listing order.
	for i, account := range accounts {
		if data.Users[i].Email != account.Email {
			t.Errorf("row %d = %q, want %q", i, data.Users[i].Email, account.Email)
		}
	}
	if data.Users[1].ActivityCount != 12 || data.Users[1].LastActivity == nil {
		t.Errorf("row 1 aggregate = %+v", data.Users[1])
	}
	if data.Users[2].ActivityCount != 0 || data.Users[2].LastActivity != nil {
		t.Errorf("row 2 aggregate = %+v", data.Users[2])
	}
}

func TestGetStatisticsDeniesNonSuperUser(t *testing.T) {
	svc, users, _ := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(false, nil)

	_, err := svc.GetStatistics(context.Background())
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGetStatisticsUnresolvedIdentity(t *testing.T) {
	svc, _, _ := newStatsService(t, fakeResolver{err: common.ErrUnauthorized})

	_, err := svc.GetStatistics(context.Background())
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("err = %v", err)
	}
}

func TestGetStatisticsAggregateFailure(t *testing.T) {
	svc, users, activity := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)
	users.EXPECT().ListUsers(gomock.Any()).Return([]*entity.User{
		{ID: uuid.New(), Email: adminEmail},
	}, nil)
	activity.EXPECT().CountHistory(gomock.Any(), adminEmail).Return(0, errors.New("timeout"))
	activity.EXPECT().LastActivity(gomock.Any(), adminEmail).Return(nil, nil).AnyTimes()

	_, err := svc.GetStatistics(context.Background())
	if err == nil {
		t.Fatal("aggregate failure must propagate")
	}
}

func TestGetUserActivityDetails(t *testing.T) {
	svc, users, activity := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)

	rows := []*entity.History{{ID: uuid.New(), UserEmail: "mester@pelda.hu", Content: "ajánlat generálva"}}
	activity.EXPECT().RecentHistory(gomock.Any(), "mester@pelda.hu", 20).Return(rows, nil)
	activity.EXPECT().CountOffers(gomock.Any(), "mester@pelda.hu").Return(7, nil)
	activity.EXPECT().CountWorks(gomock.Any(), "mester@pelda.hu").Return(3, nil)
	activity.EXPECT().CountBillings(gomock.Any(), "mester@pelda.hu").Return(1, nil)

	details, err := svc.GetUserActivityDetails(context.Background(), "mester@pelda.hu")
	if err != nil {
		t.Fatal(err)
	}
	if len(details.RecentActivity) != 1 || details.OffersCount != 7 || details.WorksCount != 3 || details.BillingsCount != 1 {
		t.Errorf("details = %+v", details)
	}
}

func TestGetUserActivityDetailsValidatesEmail(t *testing.T) {
	svc, users, _ := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)

	_, err := svc.GetUserActivityDetails(context.Background(), "nem-email")
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	cases := []struct {
		role        constants.UserRole
		isSuperUser bool
		isTenant    bool
	}{
		{constants.RoleSuperuser, true, true},
		{constants.RoleTenant, false, true},
		{constants.RoleWorker, false, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			svc, users, _ := newStatsService(t, adminResolver())
			users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)

			id := uuid.New()
			users.EXPECT().UpdateRoleFlags(gomock.Any(), id, tc.isSuperUser, tc.isTenant).Return(nil)

			if err := svc.UpdateUserRole(context.Background(), id, tc.role); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	svc, users, _ := newStatsService(t, adminResolver())
	users.EXPECT().IsSuperUser(gomock.Any(), adminEmail).Return(true, nil)

	err := svc.UpdateUserRole(context.Background(), uuid.New(), constants.UserRole("manager"))
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("err = %v, want InvalidArgument", err)
	}
}

func TestUpdateUserRoleDeniedForTenant(t *testing.T) {
	svc, users, _ := newStatsService(t, fakeResolver{principal: auth.Principal{Email: "mester@pelda.hu"}})
	users.EXPECT().IsSuperUser(gomock.Any(), "mester@pelda.hu").Return(false, nil)

	err := svc.UpdateUserRole(context.Background(), uuid.New(), constants.RoleTenant)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
