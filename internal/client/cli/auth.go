package cli

import (
	"context"
	"os"

	"github.com/syncveil/syncveil/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts the user for an email and password and attempts to create
// a new account.
//
// When the backend requires email verification, the command says so and, if
// the backend handed back a development verification token, prints it so the
// user can complete the flow with the verify command. The password byte
// slice is securely wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.auth.Signup(ctx, email, string(password))
	if err != nil {
		printlnFn("Signup failed:", err.Error())
		return err
	}

	if res.RequiresVerification {
		printlnFn("Account created. Check your inbox for a verification link.")
		if res.VerificationToken != "" {
			printlnFn("Verification token:", res.VerificationToken)
		}
		return nil
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session is persisted by the underlying service and the prompt
// switches to the signed-in user's email.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	a.userEmail = res.User.Email
	printlnFn("Logged in as", res.User.Email)
	return nil
}

// Verify prompts for an email verification token and confirms it with the
// backend.
func (a *App) Verify(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter verification token", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.VerifyEmail(ctx, token)
	if err != nil {
		printlnFn("Verification failed:", err.Error())
		return err
	}

	printlnFn("Email verified for", user.Email)
	return nil
}

// Logout clears the locally persisted session. The backend is not called;
// tokens are simply discarded.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userEmail = ""
	printlnFn("Logged out")
	return nil
}
