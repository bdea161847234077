package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/commpro-auth/internal/client/client"
	"github.com/dmitrijs2005/commpro-auth/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates the account. The
// new session is kept, so the user is logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.client.Register(ctx, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = user.Email
	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials. When the server asks for a second factor
// it prompts for the authenticator code and completes the login with it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	needs2FA, err := a.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if needs2FA {
		code, err := getSimpleText(a.reader, "Enter the 6-digit code from your authenticator app", os.Stdout)
		if err != nil {
			return err
		}
		if err := a.client.Verify2FA(ctx, email, password, code); err != nil {
			log.Printf("Login unsuccessful: %s", err.Error())
			return err
		}
	}

	a.userName = common.NormalizeEmail(email)
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Me prints the current account.
func (a *App) Me(ctx context.Context) error {
	user, err := a.client.Me(ctx)
	if err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}

	fmt.Printf("ID:       %s\n", user.GetId())
	fmt.Printf("Email:    %s\n", user.GetEmail())
	fmt.Printf("Role:     %s\n", user.GetRole())
	fmt.Printf("2FA:      %t\n", user.GetTwoFaEnabled())
	if user.GetLastLogin() != nil {
		fmt.Printf("Last login: %s\n", user.GetLastLogin().AsTime().Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// ChangePassword changes the password. Every session ends, including this one.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Current password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.client.ChangePassword(ctx, current, next); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}

	a.userName = ""
	fmt.Println("Password changed. Please log in again.")
	return nil
}

// ForgotPassword requests a reset link for an email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	fmt.Println(msg)
	return nil
}

// ResetPassword sets a new password with a token from the reset link.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.ResetPassword(ctx, token, password); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	fmt.Println("Password reset. You can log in now.")
	return nil
}

// Logout revokes the current session.
func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	a.userName = ""
	if err != nil && !errors.Is(err, client.ErrNotLoggedIn) {
		log.Printf("error: %s", err.Error())
		return err
	}
	fmt.Println("Logged out")
	return nil
}
