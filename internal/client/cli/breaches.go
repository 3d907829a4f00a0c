package cli

import (
	"context"
	"fmt"
)

// Breaches fetches and prints breach-monitor records.
func (a *App) Breaches(ctx context.Context) error {
	breaches, err := a.vault.Breaches(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(breaches) == 0 {
		printlnFn("No breaches detected")
		return nil
	}

	for _, b := range breaches {
		printlnFn(fmt.Sprintf("%s  %s  %s  severity=%s  %d records", b.ID, b.Source, b.Date, b.Severity, b.Records))
	}
	return nil
}
