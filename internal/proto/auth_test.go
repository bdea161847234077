package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptor_ServiceAndMethods(t *testing.T) {
	require.Equal(t, 1, File_proto_auth_proto.Services().Len())

	svc := File_proto_auth_proto.Services().Get(0)
	assert.Equal(t, "commpro.auth.v1.AuthService", string(svc.FullName()))
	assert.Equal(t, AuthService_ServiceDesc.ServiceName, string(svc.FullName()))
	assert.Equal(t, len(AuthService_ServiceDesc.Methods), svc.Methods().Len())

	for _, m := range AuthService_ServiceDesc.Methods {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

func TestUser_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tz := "Europe/Riga"
	empty := ""

	in := &User{
		Id:           "u1",
		Email:        "alice@x.com",
		Role:         "USER",
		TwoFaEnabled: true,
		Timezone:     &tz,
		FirstName:    &empty,
		CreatedAt:    timestamppb.New(created),
	}

	b, err := gproto.Marshal(in)
	require.NoError(t, err)

	out := &User{}
	require.NoError(t, gproto.Unmarshal(b, out))

	assert.True(t, gproto.Equal(in, out))
	assert.Equal(t, created, out.GetCreatedAt().AsTime())
	assert.Nil(t, out.GetLastLogin())
	// explicit empty string survives, unset stays unset
	require.NotNil(t, out.FirstName)
	assert.Equal(t, "", *out.FirstName)
	assert.Nil(t, out.LastName)
	assert.Equal(t, "Europe/Riga", out.GetTimezone())
}

func TestUpdateProfileRequest_Presence(t *testing.T) {
	company := "Acme"
	b, err := gproto.Marshal(&UpdateProfileRequest{CompanyName: &company})
	require.NoError(t, err)

	out := &UpdateProfileRequest{}
	require.NoError(t, gproto.Unmarshal(b, out))
	assert.Nil(t, out.FirstName)
	assert.Nil(t, out.Timezone)
	require.NotNil(t, out.CompanyName)
	assert.Equal(t, "Acme", *out.CompanyName)
}

func TestGetters_NilSafe(t *testing.T) {
	var resp *AuthResponse
	assert.Nil(t, resp.GetUser())
	assert.False(t, resp.GetRequiresTwoFactor())
	assert.Equal(t, "", resp.GetUser().GetEmail())
}
