package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
	"github.com/dmitrijs2005/commpro-auth/internal/server/auth"
	"github.com/dmitrijs2005/commpro-auth/internal/server/models"
	"github.com/dmitrijs2005/commpro-auth/internal/server/services"
)

func toUser(u *models.PublicUser) *pb.User {
	if u == nil {
		return nil
	}
	out := &pb.User{
		Id:           u.ID,
		Email:        u.Email,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
		TwoFaEnabled: u.TwoFAEnabled,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		CompanyName:  u.CompanyName,
		Timezone:     u.Timezone,
		CreatedAt:    timestamppb.New(u.CreatedAt),
	}
	if u.LastLogin != nil {
		out.LastLogin = timestamppb.New(*u.LastLogin)
	}
	return out
}

func toAuthResponse(res *services.AuthResult) *pb.AuthResponse {
	out := &pb.AuthResponse{
		User:              toUser(res.User),
		RequiresTwoFactor: res.Requires2FA,
		Email:             res.Email,
	}
	if res.Tokens != nil {
		out.AccessToken = res.Tokens.AccessToken
		out.RefreshToken = res.Tokens.RefreshToken
	}
	return out
}

func toTokenResponse(p *auth.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func (s *GRPCServer) userID(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthorized")
	}
	return id, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Register(ctx, services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
	}, requestMeta(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", res.User.ID)
	return toAuthResponse(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.users.Login(ctx, services.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		DeviceID:   req.DeviceId,
		DeviceName: req.DeviceName,
	}, requestMeta(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) Verify2FA(ctx context.Context, req *pb.Verify2FARequest) (*pb.AuthResponse, error) {
	res, err := s.users.Verify2FA(ctx, services.Verify2FAInput{
		Email:      req.Email,
		Password:   req.Password,
		Code:       req.Code,
		DeviceID:   req.DeviceId,
		DeviceName: req.DeviceName,
	}, requestMeta(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toAuthResponse(res), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	pair, err := s.users.Refresh(ctx, services.RefreshInput{RefreshToken: req.RefreshToken}, requestMeta(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toTokenResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.MessageResponse, error) {
	if err := s.users.Logout(ctx, services.RefreshInput{RefreshToken: req.RefreshToken}); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Logout successful"}, nil
}

func (s *GRPCServer) Me(ctx context.Context, _ *pb.MeRequest) (*pb.UserResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Me(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toUser(user)}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.MessageResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	err = s.users.ChangePassword(ctx, id, services.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Password changed successfully"}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.UserResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, id, services.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Timezone:    req.Timezone,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UserResponse{User: toUser(user)}, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {
	msg, err := s.users.ForgotPassword(ctx, services.ForgotPasswordInput{Email: req.Email})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: msg}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	err := s.users.ResetPassword(ctx, services.ResetPasswordInput{Token: req.Token, NewPassword: req.NewPassword})
	if err != nil {
		return nil, s.resetStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Password reset successfully"}, nil
}

func (s *GRPCServer) Enable2FA(ctx context.Context, _ *pb.Enable2FARequest) (*pb.Enable2FAResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	enr, err := s.users.Enable2FA(ctx, id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Enable2FAResponse{Secret: enr.Secret, OtpauthUrl: enr.OTPAuthURL, QrCode: enr.QRCode}, nil
}

func (s *GRPCServer) Confirm2FA(ctx context.Context, req *pb.Confirm2FARequest) (*pb.MessageResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.Confirm2FA(ctx, id, services.TwoFactorCodeInput{Code: req.Code}); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Two-factor authentication enabled"}, nil
}

func (s *GRPCServer) Disable2FA(ctx context.Context, req *pb.Disable2FARequest) (*pb.MessageResponse, error) {
	id, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.users.Disable2FA(ctx, id, services.DisableTwoFactorInput{Password: req.Password, Code: req.Code}); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: "Two-factor authentication disabled"}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

var _ pb.AuthServiceServer = (*GRPCServer)(nil)
