package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingAuth struct {
	fakeAuth
	err error
}

func (p *pingAuth) Ping(context.Context) error { return p.err }

func TestIsLoggedIn(t *testing.T) {
	assert.False(t, (&App{}).isLoggedIn())
	assert.False(t, (&App{client: &fakeAuth{}}).isLoggedIn())
	assert.True(t, (&App{client: &fakeAuth{loggedIn: true}}).isLoggedIn())
}

func TestGetStatus(t *testing.T) {
	a := &App{client: &fakeAuth{loggedIn: true}, userName: "bob@x.com", Mode: ModeOnline}
	assert.Equal(t, "(bob@x.com online)", a.getStatus())

	a = &App{client: &fakeAuth{}, userName: "bob@x.com"}
	assert.Equal(t, "", a.getStatus())
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change to offline, got empty")
	}
}

func TestCheckOnline(t *testing.T) {
	p := &pingAuth{}
	a := &App{client: p}

	a.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, a.Mode)

	p.err = errors.New("down")
	a.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, a.Mode)
}
