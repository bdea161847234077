package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
)

// statusCodes maps sentinel errors to gRPC codes. Order matters: the first
// match wins.
var statusCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrInvalidCredentials, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenNotFound, codes.Unauthenticated},
	{common.ErrAccountDisabled, codes.PermissionDenied},
	{common.ErrEmailAlreadyRegistered, codes.AlreadyExists},
	{common.ErrTooManyAttempts, codes.ResourceExhausted},
	{common.ErrTokenAlreadyUsed, codes.FailedPrecondition},
	{common.ErrAlreadyEnabled, codes.FailedPrecondition},
	{common.ErrNotEnabled, codes.FailedPrecondition},
	{common.ErrNoPendingSecret, codes.FailedPrecondition},
	{common.ErrInvalidCode, codes.InvalidArgument},
	{common.ErrTransientStore, codes.Unavailable},
}

// toStatus converts a service error into a gRPC status error. Unknown
// errors become Internal with a generic message so no detail leaks.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return status.Error(codes.InvalidArgument, verr.Error())
	}

	for _, m := range statusCodes {
		if errors.Is(err, m.err) {
			msg := m.err.Error()
			if m.code == codes.Unavailable {
				s.logger.Warn(ctx, "store unavailable", "error", err)
			}
			return status.Error(m.code, msg)
		}
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

// resetStatus reports reset-token problems as bad input rather than as a
// missing session.
func (s *GRPCServer) resetStatus(ctx context.Context, err error) error {
	for _, target := range []error{common.ErrTokenExpired, common.ErrTokenAlreadyUsed, common.ErrInvalidToken} {
		if errors.Is(err, target) {
			return status.Error(codes.InvalidArgument, target.Error())
		}
	}
	return s.toStatus(ctx, err)
}
