package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "domain sentinel passes", in: common.ErrTokenNotFound, want: common.ErrTokenNotFound},
		{name: "wrapped sentinel passes", in: fmt.Errorf("ctx: %w", common.ErrInvalidCode), want: common.ErrInvalidCode},
		{name: "transient", in: fmt.Errorf("db error: %w", common.ErrTransientStore), want: common.ErrTransientStore},
		{name: "deadline", in: context.DeadlineExceeded, want: common.ErrTransientStore},
		{name: "anything else", in: errors.New("boom"), want: common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestNewStore_Defaults(t *testing.T) {
	s := newStore(nil, nil, 0, nil)
	assert.Equal(t, defaultStoreTimeout, s.timeout)
	assert.NotNil(t, s.log)
	assert.Equal(t, "UTC", s.clock().Location().String())
}
