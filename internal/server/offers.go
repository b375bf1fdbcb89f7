package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	offersv1 "github.com/Zoli1212/awsflow/gen/proto/offers/v1"
	"github.com/Zoli1212/awsflow/internal/auth"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/offers"
	"github.com/Zoli1212/awsflow/internal/utils"
)

type OffersService struct {
	offersv1.UnimplementedOffersServiceServer
	svc      *offers.Service
	identity auth.IdentityResolver
	logger   *slog.Logger
}

func NewOffersService(svc *offers.Service, identity auth.IdentityResolver, logger *slog.Logger) *OffersService {
	return &OffersService{
		svc:      svc,
		identity: identity,
		logger:   logger,
	}
}

func (s *OffersService) GenerateOffer(ctx context.Context, req *offersv1.GenerateOfferRequest) (*offersv1.GenerateOfferResponse, error) {
	if strings.TrimSpace(req.GetUserInput()) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_input is required")
	}
	principal, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "caller identity missing")
	}

	result := s.svc.Generate(ctx, offers.GenerateRequest{
		TenantEmail:   principal.TenantEmail,
		UserInput:     req.GetUserInput(),
		ExistingItems: utils.ToOfferItems(req.GetExistingItems()),
	})

	resp := &offersv1.GenerateOfferResponse{
		Success:       result.Success,
		Error:         result.Error,
		WorkId:        result.WorkID,
		RequirementId: result.RequirementID,
		OfferId:       result.OfferID,
		Items:         utils.ToPBOfferItems(result.Items),
	}
	if result.Offer != nil {
		resp.Title = result.Offer.Title
		resp.Location = result.Offer.Location
		resp.CustomerName = result.Offer.CustomerName
		resp.EstimatedTime = result.Offer.EstimatedTime
		resp.OfferSummary = result.Offer.OfferSummary
		resp.Questions = result.Offer.Questions
	}
	return resp, nil
}

func (s *OffersService) ConvertOffer(ctx context.Context, req *offersv1.ConvertOfferRequest) (*offersv1.ConvertOfferResponse, error) {
	principal, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "caller identity missing")
	}

	result, err := s.svc.Convert(ctx, offers.ConvertRequest{
		TenantEmail:   principal.TenantEmail,
		Title:         req.GetTitle(),
		Location:      req.GetLocation(),
		CustomerName:  req.GetCustomerName(),
		EstimatedTime: req.GetEstimatedTime(),
		Description:   req.GetDescription(),
		OfferSummary:  req.GetOfferSummary(),
		TotalPrice:    req.GetTotalPrice(),
		Items:         utils.ToConvertItems(req.GetItems()),
		Notes:         req.GetNotes(),
	})
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
			return nil, err
		}
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, status.Error(codes.PermissionDenied, "not allowed")
		}
		s.logger.Error("convert offer failed", "error", err)
		return nil, status.Errorf(codes.Internal, "convert offer: %v", err)
	}

	return &offersv1.ConvertOfferResponse{
		WorkId:        result.WorkID,
		RequirementId: result.RequirementID,
		OfferId:       result.OfferID,
	}, nil
}
