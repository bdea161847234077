package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/commpro-auth/internal/common"
)

// Enable2FA starts enrollment and prints the secret and provisioning URI.
func (a *App) Enable2FA(ctx context.Context) error {
	enr, err := a.client.Enable2FA(ctx)
	if err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}

	fmt.Println("Add this account to your authenticator app:")
	fmt.Printf("  Secret: %s\n", enr.Secret)
	fmt.Printf("  URI:    %s\n", enr.OtpauthUrl)
	fmt.Println("Then run 2fa-confirm with the current code.")
	return nil
}

func (a *App) Confirm2FA(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter the 6-digit code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Confirm2FA(ctx, code); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	fmt.Println("Two-factor authentication enabled")
	return nil
}

func (a *App) Disable2FA(ctx context.Context) error {
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	code, err := getSimpleText(a.reader, "Enter the 6-digit code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.client.Disable2FA(ctx, password, code); err != nil {
		log.Printf("error: %s", err.Error())
		return err
	}
	fmt.Println("Two-factor authentication disabled")
	return nil
}
