// Package totp implements RFC 6238 time-based one-time passwords
// (HMAC-SHA1, 6 digits, 30 second steps) and provisioning helpers.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
)

const (
	secretBytes = 20
	digits      = 6
	period      = 30
	qrSize      = 256
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// ErrInvalidSecret is returned for secrets that are not valid base32.
var ErrInvalidSecret = errors.New("invalid totp secret")

// Key is a freshly generated shared secret with its provisioning URI.
type Key struct {
	Secret string
	URI    string
}

// Generator creates and checks codes. The zero value is not usable; build
// one with New.
type Generator struct {
	issuer string
	now    func() time.Time
}

// New returns a generator labelling its URIs with issuer.
func New(issuer string) *Generator {
	return &Generator{issuer: issuer, now: time.Now}
}

// WithClock returns a copy of g reading time from now.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	c := *g
	c.now = now
	return &c
}

// GenerateSecret returns a random 160-bit base32 secret and the otpauth URI
// for account.
func (g *Generator) GenerateSecret(account string) (*Key, error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	secret := b32.EncodeToString(raw)
	return &Key{Secret: secret, URI: g.ProvisionURI(secret, account)}, nil
}

// ProvisionURI builds the otpauth:// URI authenticator apps import.
func (g *Generator) ProvisionURI(secret, account string) string {
	label := url.PathEscape(g.issuer + ":" + account)

	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", g.issuer)
	v.Set("algorithm", "SHA1")
	v.Set("digits", strconv.Itoa(digits))
	v.Set("period", strconv.Itoa(period))

	return "otpauth://totp/" + label + "?" + v.Encode()
}

// Code returns the code for secret at instant t.
func (g *Generator) Code(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return hotp(key, t.Unix()/period), nil
}

// Verify reports whether code matches secret within ±window steps of now.
// Malformed codes and secrets simply fail.
func (g *Generator) Verify(secret, code string, window int) bool {
	code = strings.TrimSpace(code)
	if len(code) != digits || !numeric(code) {
		return false
	}

	key, err := decodeSecret(secret)
	if err != nil {
		return false
	}

	base := g.now().Unix() / period
	match := 0
	for step := -window; step <= window; step++ {
		counter := base + int64(step)
		if counter < 0 {
			continue
		}
		// no early return, every step costs the same
		match |= subtle.ConstantTimeCompare([]byte(hotp(key, counter)), []byte(code))
	}
	return match == 1
}

// QRCodeDataURL renders uri as a PNG QR code embedded in a data URL.
func QRCodeDataURL(uri string) (string, error) {
	png, err := qrcode.Encode(uri, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("render qr code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func decodeSecret(secret string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "="))
	key, err := b32.DecodeString(s)
	if err != nil || len(key) == 0 {
		return nil, ErrInvalidSecret
	}
	return key, nil
}

func hotp(key []byte, counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	_, _ = mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	bin := (uint32(sum[offset])&0x7f)<<24 |
		uint32(sum[offset+1])<<16 |
		uint32(sum[offset+2])<<8 |
		uint32(sum[offset+3])

	return fmt.Sprintf("%0*d", digits, bin%1_000_000)
}

func numeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
