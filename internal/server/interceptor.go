package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/Zoli1212/awsflow/internal/common"
)

const (
	userEmailHeader   = "x-user-email"
	tenantEmailHeader = "x-tenant-email"
	requestIDHeader   = "x-request-id"
)

// IdentityInterceptor copies the caller identity headers set by the edge
// proxy into context values. It does not authenticate: requests reach this
// process only through the proxy, which has already verified the session.
func IdentityInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)

		requestID := firstValue(md, requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = common.WithRequestID(ctx, requestID)

		if email := firstValue(md, userEmailHeader); email != "" {
			ctx = common.WithUserEmail(ctx, email)
		}
		if tenant := firstValue(md, tenantEmailHeader); tenant != "" {
			ctx = common.WithTenantEmail(ctx, tenant)
		}

		logger.Debug("request received", "method", info.FullMethod, "request_id", requestID)
		return handler(ctx, req)
	}
}

func firstValue(md metadata.MD, key string) string {
	if vs := md.Get(key); len(vs) > 0 {
		return vs[0]
	}
	return ""
}
