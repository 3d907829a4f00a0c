package cli

import (
	"context"
	"fmt"
)

// Dashboard fetches and prints the protection stats.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.vault.Dashboard(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Protected records: %d", stats.ProtectedRecords))
	printlnFn(fmt.Sprintf("Vault files:       %d", stats.VaultFiles))
	printlnFn(fmt.Sprintf("Threats detected:  %d", stats.ThreatsDetected))
	return nil
}
