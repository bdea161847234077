package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	"github.com/dmitrijs2005/commpro-auth/internal/logging"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
)

func newInterceptorServer(t *testing.T) *GRPCServer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(auth.Config{
		AccessSecret: "a", RefreshSecret: "r", AccessLifetime: "15m", RefreshLifetime: "7d",
	})
	require.NoError(t, err)
	return NewGRPCServer("", logging.Nop{}, nil, issuer)
}

func TestInterceptor_PublicMethodSkipsCheck(t *testing.T) {
	s := newInterceptorServer(t)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Login_FullMethodName}

	called := false
	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		called = true
		return "ok", nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_SessionMethod(t *testing.T) {
	s := newInterceptorServer(t)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AuthService_Me_FullMethodName}

	mustNotRun := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called")
		return nil, nil
	}

	t.Run("missing token", func(t *testing.T) {
		_, err := s.accessTokenInterceptor(context.Background(), nil, info, mustNotRun)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := s.issuer.IssueRefreshToken("u1")
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, refresh))
		_, err = s.accessTokenInterceptor(ctx, nil, info, mustNotRun)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("expired token says so", func(t *testing.T) {
		old := s.issuer.WithClock(func() time.Time { return time.Now().Add(-time.Hour) })
		token, err := old.IssueAccessToken("u1", "u1@x.com", models.RoleUser)
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
		_, err = s.accessTokenInterceptor(ctx, nil, info, mustNotRun)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
		assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())
	})

	t.Run("valid token puts user id in context", func(t *testing.T) {
		token, err := s.issuer.IssueAccessToken("u1", "u1@x.com", models.RoleUser)
		require.NoError(t, err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))

		var got string
		_, err = s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
			got, _ = UserIDFromContext(ctx)
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "u1", got)
	})
}

func TestRequestMeta(t *testing.T) {
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 5555}})
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(
		"user-agent", "cli/1.0",
		common.DeviceIDHeaderName, "dev-9",
		common.DeviceNameHeaderName, "Laptop",
	))

	meta := requestMeta(ctx)
	assert.Equal(t, "10.1.2.3", meta.IPAddress)
	assert.Equal(t, "cli/1.0", meta.UserAgent)
	assert.Equal(t, "dev-9", meta.DeviceID)
	assert.Equal(t, "Laptop", meta.DeviceName)
}
