package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/commpro-auth/internal/logging"
)

func TestNew_NoEndpointIsNoop(t *testing.T) {
	p, err := New(context.Background(), "", "auth-service", logging.Nop{})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_WithEndpoint(t *testing.T) {
	// the exporter connects lazily, so nothing has to listen here
	p, err := New(context.Background(), "127.0.0.1:4318", "auth-service", logging.Nop{})
	require.NoError(t, err)
	assert.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "test")
	span.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = p.Shutdown(ctx)
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}
