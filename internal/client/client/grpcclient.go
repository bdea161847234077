package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
)

// Device identifies this client to the server's session registry.
type Device struct {
	ID   string
	Name string
}

type GRPCClient struct {
	endpointURL string
	device      Device
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.AuthService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	pair, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(pair.AccessToken, pair.RefreshToken)

	// tokens refreshed, retry with the new access token
	return invoker(withAccessToken(ctx, pair.AccessToken), method, req, reply, cc, opts...)
}

func NewAuthClient(endpointURL string, device Device) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, device: device}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

// LoggedIn reports whether a session is held.
func (s *GRPCClient) LoggedIn() bool {
	_, refresh := s.tokens()
	return refresh != ""
}

func (s *GRPCClient) Register(ctx context.Context, email string, password []byte) (*pb.User, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return resp.User, nil
}

// Login authenticates. When the account has two-factor authentication the
// result is true and no session is stored; finish with Verify2FA.
func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (bool, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{
		Email:      email,
		Password:   string(password),
		DeviceId:   s.device.ID,
		DeviceName: s.device.Name,
	})
	if err != nil {
		return false, s.mapError(err)
	}
	if resp.RequiresTwoFactor {
		return true, nil
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return false, nil
}

func (s *GRPCClient) Verify2FA(ctx context.Context, email string, password []byte, code string) error {
	resp, err := s.client.Verify2FA(ctx, &pb.Verify2FARequest{
		Email:      email,
		Password:   string(password),
		Code:       code,
		DeviceId:   s.device.ID,
		DeviceName: s.device.Name,
	})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Me(ctx context.Context) (*pb.User, error) {
	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.User, nil
}

// ChangePassword changes the password. The server ends every session, so
// the local one is dropped too.
func (s *GRPCClient) ChangePassword(ctx context.Context, current, next []byte) error {
	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	if err != nil {
		return s.mapError(err)
	}
	s.setTokens("", "")
	return nil
}

func (s *GRPCClient) Enable2FA(ctx context.Context) (*pb.Enable2FAResponse, error) {
	resp, err := s.client.Enable2FA(ctx, &pb.Enable2FARequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Confirm2FA(ctx context.Context, code string) error {
	_, err := s.client.Confirm2FA(ctx, &pb.Confirm2FARequest{Code: code})
	return s.mapError(err)
}

func (s *GRPCClient) Disable2FA(ctx context.Context, password []byte, code string) error {
	_, err := s.client.Disable2FA(ctx, &pb.Disable2FARequest{Password: string(password), Code: code})
	return s.mapError(err)
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (string, error) {
	resp, err := s.client.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: email})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Message, nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, token string, password []byte) error {
	_, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: token, NewPassword: string(password)})
	return s.mapError(err)
}

// Logout revokes the held refresh token and forgets the session. The local
// session is cleared even when the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	if refresh == "" {
		return ErrNotLoggedIn
	}

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})
	s.setTokens("", "")
	return s.mapError(err)
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %s", st.Message())
	}
}
