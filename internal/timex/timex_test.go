package timex

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "30s", want: 30 * time.Second},
		{in: "15m", want: 15 * time.Minute},
		{in: "12h", want: 12 * time.Hour},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "0m", want: 0},
		{in: "", wantErr: true},
		{in: "15", wantErr: true},
		{in: "m15", wantErr: true},
		{in: "1.5h", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "7w", wantErr: true},
		{in: " 7d", wantErr: true},
		{in: "99999999999999999999d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLifetime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDurationFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpiryDate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	got, err := ExpiryDate(now, "7d")
	require.NoError(t, err)
	assert.Equal(t, now.Add(7*24*time.Hour), got)

	_, err = ExpiryDate(now, "soon")
	assert.ErrorIs(t, err, ErrInvalidDurationFormat)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var cfg struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
		C Duration `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a":"1m30s","b":"7d","c":1000000000}`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.A.Duration)
	assert.Equal(t, 7*24*time.Hour, cfg.B.Duration)
	assert.Equal(t, time.Second, cfg.C.Duration)

	var bad struct {
		A Duration `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a":"forever"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &bad))
}
