package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Zoli1212/awsflow/constants"
	statsv1 "github.com/Zoli1212/awsflow/gen/proto/stats/v1"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/stats"
	"github.com/Zoli1212/awsflow/internal/utils"
)

type StatsService struct {
	statsv1.UnimplementedStatsServiceServer
	svc    *stats.Service
	logger *slog.Logger
}

func NewStatsService(svc *stats.Service, logger *slog.Logger) *StatsService {
	return &StatsService{
		svc:    svc,
		logger: logger,
	}
}

func (s *StatsService) GetStatistics(ctx context.Context, _ *statsv1.GetStatisticsRequest) (*statsv1.GetStatisticsResponse, error) {
	data, err := s.svc.GetStatistics(ctx)
	if err != nil {
		return nil, s.mapError(err, "get statistics")
	}

	users := make([]*statsv1.UserStatistics, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, utils.ToPBUserStatistics(u))
	}
	return &statsv1.GetStatisticsResponse{
		Users:           users,
		TotalUsers:      int32(data.TotalUsers),
		TotalSuperUsers: int32(data.TotalSuperUsers),
		TotalTenants:    int32(data.TotalTenants),
		TotalWorkers:    int32(data.TotalWorkers),
	}, nil
}

func (s *StatsService) GetUserActivityDetails(ctx context.Context, req *statsv1.GetUserActivityDetailsRequest) (*statsv1.GetUserActivityDetailsResponse, error) {
	if strings.TrimSpace(req.GetUserEmail()) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_email is required")
	}

	details, err := s.svc.GetUserActivityDetails(ctx, req.GetUserEmail())
	if err != nil {
		return nil, s.mapError(err, "get user activity details")
	}

	recent := make([]*statsv1.HistoryEntry, 0, len(details.RecentActivity))
	for _, h := range details.RecentActivity {
		recent = append(recent, utils.ToPBHistoryEntry(h))
	}
	return &statsv1.GetUserActivityDetailsResponse{
		RecentActivity: recent,
		OffersCount:    int32(details.OffersCount),
		WorksCount:     int32(details.WorksCount),
		BillingsCount:  int32(details.BillingsCount),
	}, nil
}

func (s *StatsService) UpdateUserRole(ctx context.Context, req *statsv1.UpdateUserRoleRequest) (*statsv1.UpdateUserRoleResponse, error) {
	userID, err := uuid.Parse(req.GetUserId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	role, ok := constants.ParseUserRole(req.GetRole())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown role %q", req.GetRole())
	}

	if err := s.svc.UpdateUserRole(ctx, userID, role); err != nil {
		return nil, s.mapError(err, "update user role")
	}
	return &statsv1.UpdateUserRoleResponse{}, nil
}

func (s *StatsService) mapError(err error, op string) error {
	if errors.Is(err, common.ErrUnauthorized) {
		return status.Error(codes.PermissionDenied, "superuser access required")
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return err
	}
	s.logger.Error(op+" failed", "error", err)
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}
