package grpc

import (
	"context"
	"errors"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// sessionMethods need a valid access token.
var sessionMethods = map[string]bool{
	pb.AuthService_Logout_FullMethodName:         true,
	pb.AuthService_Me_FullMethodName:             true,
	pb.AuthService_ChangePassword_FullMethodName: true,
	pb.AuthService_UpdateProfile_FullMethodName:  true,
	pb.AuthService_Enable2FA_FullMethodName:      true,
	pb.AuthService_Confirm2FA_FullMethodName:     true,
	pb.AuthService_Disable2FA_FullMethodName:     true,
}

// UserIDFromContext returns the authenticated user id put there by the
// access token interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func firstMD(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !sessionMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		accessToken = firstMD(md, common.AccessTokenHeaderName)
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.issuer.VerifyAccessToken(accessToken)
	if errors.Is(err, common.ErrTokenExpired) {
		// clients refresh on this exact message
		return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "grpc request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// requestMeta collects the client metadata attached to new sessions.
func requestMeta(ctx context.Context) services.RequestMeta {
	var meta services.RequestMeta

	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		meta.IPAddress = p.Addr.String()
		if host, _, err := net.SplitHostPort(meta.IPAddress); err == nil {
			meta.IPAddress = host
		}
	}

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		meta.UserAgent = firstMD(md, "user-agent")
		meta.DeviceID = firstMD(md, common.DeviceIDHeaderName)
		meta.DeviceName = firstMD(md, common.DeviceNameHeaderName)
	}
	return meta
}
