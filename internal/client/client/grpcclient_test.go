package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
)

/*************
 * Fake API client
 *************/

// fakeAPI implements the calls under test; anything else panics on the nil
// embedded interface.
type fakeAPI struct {
	pb.AuthServiceClient

	lastRefreshReq  *pb.RefreshTokenRequest
	lastLoginReq    *pb.LoginRequest
	lastVerifyReq   *pb.Verify2FARequest
	lastRegisterReq *pb.RegisterRequest
	lastLogoutReq   *pb.LogoutRequest
	lastDisableReq  *pb.Disable2FARequest

	refreshResp *pb.TokenResponse
	refreshErr  error

	pingResp *pb.PingResponse
	pingErr  error

	authResp *pb.AuthResponse
	authErr  error

	logoutErr error
	changeErr error

	meResp *pb.UserResponse
	meErr  error
}

func (f *fakeAPI) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.TokenResponse, error) {
	f.lastRefreshReq = in
	return f.refreshResp, f.refreshErr
}
func (f *fakeAPI) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakeAPI) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastRegisterReq = in
	return f.authResp, f.authErr
}
func (f *fakeAPI) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastLoginReq = in
	return f.authResp, f.authErr
}
func (f *fakeAPI) Verify2FA(ctx context.Context, in *pb.Verify2FARequest, opts ...grpc.CallOption) (*pb.AuthResponse, error) {
	f.lastVerifyReq = in
	return f.authResp, f.authErr
}
func (f *fakeAPI) Logout(ctx context.Context, in *pb.LogoutRequest, opts ...grpc.CallOption) (*pb.MessageResponse, error) {
	f.lastLogoutReq = in
	return &pb.MessageResponse{}, f.logoutErr
}
func (f *fakeAPI) ChangePassword(ctx context.Context, in *pb.ChangePasswordRequest, opts ...grpc.CallOption) (*pb.MessageResponse, error) {
	return &pb.MessageResponse{}, f.changeErr
}
func (f *fakeAPI) Me(ctx context.Context, in *pb.MeRequest, opts ...grpc.CallOption) (*pb.UserResponse, error) {
	return f.meResp, f.meErr
}
func (f *fakeAPI) Disable2FA(ctx context.Context, in *pb.Disable2FARequest, opts ...grpc.CallOption) (*pb.MessageResponse, error) {
	f.lastDisableReq = in
	return &pb.MessageResponse{}, nil
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakeAPI{
		refreshResp: &pb.TokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), pb.AuthService_Me_FullMethodName, nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshReq.RefreshToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakeAPI{}
	c := &GRPCClient{client: f, accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}
	err := c.accessTokenInterceptor(context.Background(), pb.AuthService_Me_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshReq)
}

func TestInterceptor_RefreshCallIsNotRetried(t *testing.T) {
	f := &fakeAPI{}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}
	err := c.accessTokenInterceptor(context.Background(), pb.AuthService_RefreshToken_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshReq)
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), pb.AuthService_Me_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "invalid token")
	}
	err := c.accessTokenInterceptor(context.Background(), pb.AuthService_Me_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return nil
	}
	require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.AuthService_Login_FullMethodName, nil, nil, nil, invoker))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	require.ErrorIs(t, c.mapError(status.Error(codes.PermissionDenied, "x")), ErrUnauthorized)
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.EqualError(t, c.mapError(status.Error(codes.AlreadyExists, "email already registered")), "rpc error: email already registered")
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
	require.NoError(t, c.mapError(nil))
}

/*************
 * Ping tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakeAPI{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakeAPI{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	f := &fakeAPI{pingErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * Session tests
 *************/

func TestRegister_StoresTokens(t *testing.T) {
	f := &fakeAPI{authResp: &pb.AuthResponse{AccessToken: "A", RefreshToken: "R", User: &pb.User{Email: "u@x.com"}}}
	c := &GRPCClient{client: f}

	u, err := c.Register(context.Background(), "u@x.com", []byte("Secret123"))
	require.NoError(t, err)
	require.Equal(t, "u@x.com", u.Email)
	require.Equal(t, "Secret123", f.lastRegisterReq.Password)
	require.True(t, c.LoggedIn())
}

func TestLogin_SetsTokensAndDevice(t *testing.T) {
	f := &fakeAPI{authResp: &pb.AuthResponse{AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f, device: Device{ID: "d1", Name: "laptop"}}

	needs2FA, err := c.Login(context.Background(), "u@x.com", []byte{9})
	require.NoError(t, err)
	require.False(t, needs2FA)
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "d1", f.lastLoginReq.DeviceId)
	require.Equal(t, "laptop", f.lastLoginReq.DeviceName)
}

func TestLogin_TwoFactorThenVerify(t *testing.T) {
	f := &fakeAPI{authResp: &pb.AuthResponse{RequiresTwoFactor: true, Email: "u@x.com"}}
	c := &GRPCClient{client: f}

	needs2FA, err := c.Login(context.Background(), "u@x.com", []byte("pw"))
	require.NoError(t, err)
	require.True(t, needs2FA)
	require.False(t, c.LoggedIn())

	f.authResp = &pb.AuthResponse{AccessToken: "A", RefreshToken: "R"}
	require.NoError(t, c.Verify2FA(context.Background(), "u@x.com", []byte("pw"), "123456"))
	require.Equal(t, "123456", f.lastVerifyReq.Code)
	require.True(t, c.LoggedIn())
}

func TestLogin_MapsError(t *testing.T) {
	f := &fakeAPI{authErr: status.Error(codes.Unauthenticated, "invalid credentials")}
	c := &GRPCClient{client: f}

	_, err := c.Login(context.Background(), "u@x.com", []byte("pw"))
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorContains(t, err, "invalid credentials")
}

func TestLogout_ClearsTokens(t *testing.T) {
	f := &fakeAPI{logoutErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f, accessToken: "A", refreshToken: "R"}

	require.ErrorIs(t, c.Logout(context.Background()), ErrUnavailable)
	require.Equal(t, "R", f.lastLogoutReq.RefreshToken)
	require.False(t, c.LoggedIn())

	require.ErrorIs(t, c.Logout(context.Background()), ErrNotLoggedIn)
}

func TestChangePassword_DropsSession(t *testing.T) {
	f := &fakeAPI{}
	c := &GRPCClient{client: f, accessToken: "A", refreshToken: "R"}

	require.NoError(t, c.ChangePassword(context.Background(), []byte("old"), []byte("new-secret")))
	require.False(t, c.LoggedIn())
}

func TestDisable2FA_SendsPasswordAndCode(t *testing.T) {
	f := &fakeAPI{}
	c := &GRPCClient{client: f}

	require.NoError(t, c.Disable2FA(context.Background(), []byte("pw"), "654321"))
	require.Equal(t, "pw", f.lastDisableReq.Password)
	require.Equal(t, "654321", f.lastDisableReq.Code)
}
