package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID   contextKey = "request_id"
	ContextKeyTenantEmail contextKey = "tenant_email"
	ContextKeyUserEmail   contextKey = "user_email"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithTenantEmail adds the caller's tenant scope to the context
func WithTenantEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextKeyTenantEmail, email)
}

// TenantEmailFromContext extracts the tenant scope from context
func TenantEmailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(ContextKeyTenantEmail).(string); ok {
		return email
	}
	return ""
}

// WithUserEmail adds the calling principal's email to the context
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, ContextKeyUserEmail, email)
}

// UserEmailFromContext extracts the calling principal's email from context
func UserEmailFromContext(ctx context.Context) string {
	if email, ok := ctx.Value(ContextKeyUserEmail).(string); ok {
		return email
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
