package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DeviceIDHeaderName and DeviceNameHeaderName carry optional client device
// metadata attached to new sessions.
const (
	DeviceIDHeaderName   = "x-device-id"
	DeviceNameHeaderName = "x-device-name"
)

// ResetRequestedMessage is returned by forgot-password regardless of whether
// the account exists.
const ResetRequestedMessage = "If an account with that email exists, a password reset link has been sent."
