package cli

import (
	"context"
	"fmt"
)

// Files lists the files stored in the vault.
func (a *App) Files(ctx context.Context) error {
	files, err := a.vault.Files(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(files) == 0 {
		printlnFn("Vault is empty")
		return nil
	}

	for _, f := range files {
		printlnFn(fmt.Sprintf("%s  %s  %d bytes  %s  %s", f.ID, f.Name, f.Size, f.Status, f.UploadedAt))
	}
	return nil
}
