package auth

import (
	"context"

	"github.com/Zoli1212/awsflow/internal/common"
)

// Principal is the resolved caller: their email and the tenant scope their
// records live under.
type Principal struct {
	Email       string
	TenantEmail string
}

// IdentityResolver resolves the calling principal from the request context.
// The hosted identity provider integration implements this; tests use fakes.
type IdentityResolver interface {
	Resolve(ctx context.Context) (Principal, error)
}

// ContextResolver reads the principal from context values placed there by
// transport-level interceptors.
type ContextResolver struct{}

func (ContextResolver) Resolve(ctx context.Context) (Principal, error) {
	email := common.UserEmailFromContext(ctx)
	if email == "" {
		return Principal{}, common.ErrUnauthorized
	}
	tenant := common.TenantEmailFromContext(ctx)
	if tenant == "" {
		tenant = email
	}
	return Principal{Email: email, TenantEmail: tenant}, nil
}
