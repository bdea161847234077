package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/client/client"
	"github.com/dmitrijs2005/commpro-auth/internal/client/config"
	pb "github.com/dmitrijs2005/commpro-auth/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// authClient is the part of client.GRPCClient the commands use.
type authClient interface {
	LoggedIn() bool
	Register(ctx context.Context, email string, password []byte) (*pb.User, error)
	Login(ctx context.Context, email string, password []byte) (bool, error)
	Verify2FA(ctx context.Context, email string, password []byte, code string) error
	Me(ctx context.Context) (*pb.User, error)
	ChangePassword(ctx context.Context, current, next []byte) error
	Enable2FA(ctx context.Context) (*pb.Enable2FAResponse, error)
	Confirm2FA(ctx context.Context, code string) error
	Disable2FA(ctx context.Context, password []byte, code string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token string, password []byte) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	client   authClient
	userName string
	Mode     Mode
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, client.Device{ID: c.DeviceID, Name: c.DeviceName})
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.client != nil && a.client.LoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() && a.userName != "" {
		s = a.userName + " "
	}
	s += string(a.Mode)
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// Run starts the status watcher and the REPL, and closes the connection on
// exit.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.client.Close()

	log.Println("Welcome to CommPro auth CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
