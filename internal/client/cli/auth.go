package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the customer's document number and password and tries to
// authenticate. On success the session store transition takes care of
// persistence and the welcome notification. The password byte slice is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	document, err := getSimpleText(a.reader, "Enter document (CPF/CNPJ)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if _, err := a.auth.Login(ctx, document, password); err != nil {
		return fail(err)
	}
	return nil
}

// Logout resets the session and forgets the cached view state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return fail(err)
	}
	a.sites = nil
	a.selected = nil
	a.bills = nil
	return nil
}
