package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Me(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Enable2FA(ctx context.Context) error
	Confirm2FA(ctx context.Context) error
	Disable2FA(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from scanner and dispatches them to a until EOF
// or "exit"/"quit". Session commands are refused while logged out.
// Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	session := map[string]func(context.Context) error{
		"me":          a.Me,
		"password":    a.ChangePassword,
		"2fa-enable":  a.Enable2FA,
		"2fa-confirm": a.Confirm2FA,
		"2fa-disable": a.Disable2FA,
		"logout":      a.Logout,
	}

	for {
		printlnFn(fmt.Sprintf("auth %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if fn, ok := session[cmd]; ok {
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			_ = fn(ctx)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, password, 2fa-enable, 2fa-confirm, 2fa-disable, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
