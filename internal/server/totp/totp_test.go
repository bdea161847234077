package totp

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RFC 6238 appendix B secret, truncated to 6 digits.
var rfcSecret = b32.EncodeToString([]byte("12345678901234567890"))

func TestCode_RFCVectors(t *testing.T) {
	g := New("CommPro")

	cases := []struct {
		ts   int64
		code string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
		{20000000000, "353130"},
	}

	for _, tc := range cases {
		got, err := g.Code(rfcSecret, time.Unix(tc.ts, 0))
		require.NoError(t, err)
		assert.Equal(t, tc.code, got, "t=%d", tc.ts)
	}
}

func TestVerify_Window(t *testing.T) {
	now := time.Unix(1234567890, 0)
	g := New("CommPro").WithClock(func() time.Time { return now })

	for _, offset := range []int{-2, -1, 0, 1, 2} {
		code, err := g.Code(rfcSecret, now.Add(time.Duration(offset*period)*time.Second))
		require.NoError(t, err)
		assert.True(t, g.Verify(rfcSecret, code, 2), "offset %d", offset)
	}

	for _, offset := range []int{-4, 3} {
		code, err := g.Code(rfcSecret, now.Add(time.Duration(offset*period)*time.Second))
		require.NoError(t, err)
		assert.False(t, g.Verify(rfcSecret, code, 2), "offset %d", offset)
	}

	edge, err := g.Code(rfcSecret, now.Add(period*time.Second))
	require.NoError(t, err)
	assert.False(t, g.Verify(rfcSecret, edge, 0))
}

func TestVerify_RejectsMalformed(t *testing.T) {
	g := New("CommPro")
	code, err := g.Code(rfcSecret, time.Now())
	require.NoError(t, err)

	assert.False(t, g.Verify(rfcSecret, "12345", 2))
	assert.False(t, g.Verify(rfcSecret, "1234567", 2))
	assert.False(t, g.Verify(rfcSecret, "12a456", 2))
	assert.False(t, g.Verify("not base32!", code, 2))
	assert.False(t, g.Verify("", code, 2))
	assert.True(t, g.Verify(strings.ToLower(rfcSecret), " "+code+" ", 2))
}

func TestGenerateSecret(t *testing.T) {
	g := New("CommPro")

	a, err := g.GenerateSecret("alice@x.com")
	require.NoError(t, err)
	b, err := g.GenerateSecret("alice@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, a.Secret, b.Secret)
	assert.Len(t, a.Secret, 32)

	u, err := url.Parse(a.URI)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", u.Scheme)
	assert.Equal(t, "totp", u.Host)
	assert.Equal(t, "/CommPro:alice@x.com", u.Path)
	assert.Equal(t, a.Secret, u.Query().Get("secret"))
	assert.Equal(t, "CommPro", u.Query().Get("issuer"))

	code, err := g.Code(a.Secret, time.Now())
	require.NoError(t, err)
	assert.True(t, g.Verify(a.Secret, code, 2))
}

func TestQRCodeDataURL(t *testing.T) {
	dataURL, err := QRCodeDataURL("otpauth://totp/CommPro:a@x.com?secret=ABC")
	require.NoError(t, err)

	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(dataURL, prefix))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
