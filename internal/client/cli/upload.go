package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/syncveil/syncveil/internal/client/models"
)

// settleGrace bounds how long the upload command waits for a record to
// reach a terminal state after transport completes.
const settleGrace = 5 * time.Second

// Upload transmits the file at path to the vault, printing progress
// snapshots while the transfer runs, and waits for the record to settle
// before returning, so the user sees the final "secured" state rather than
// the transient "encrypting" one.
func (a *App) Upload(ctx context.Context, path string) error {
	type result struct {
		id  string
		err error
	}
	done := make(chan result, 1)
	go func() {
		id, err := a.vault.Upload(ctx, path)
		done <- result{id: id, err: err}
	}()

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	lastProgress := -1
	var res result
loop:
	for {
		select {
		case res = <-done:
			break loop
		case <-ticker.C:
			records := a.vault.Uploads()
			if len(records) == 0 {
				continue
			}
			rec := records[0]
			if rec.Status == models.UploadStatusUploading && rec.Progress != lastProgress {
				printlnFn(fmt.Sprintf("Uploading %s: %d%%", rec.Name, rec.Progress))
				lastProgress = rec.Progress
			}
		}
	}

	if res.err != nil {
		printlnFn("Upload failed:", res.err.Error())
		return res.err
	}

	printlnFn("Transfer complete, securing...")

	rec, ok := a.waitForSettle(ctx, res.id)
	if !ok {
		printlnFn("Upload is still being secured, check 'uploads' later")
		return nil
	}

	switch rec.Status {
	case models.UploadStatusSecured:
		printlnFn(fmt.Sprintf("Secured: %s", rec.Name))
	case models.UploadStatusFailed:
		printlnFn(fmt.Sprintf("Failed: %s: %s", rec.Name, rec.Err))
	}
	return nil
}

// waitForSettle polls the tracker until the record turns terminal. The
// second return value is false when the wait was cut short.
func (a *App) waitForSettle(ctx context.Context, id string) (models.UploadRecord, bool) {
	deadline := time.Now().Add(a.config.SettleDelay + settleGrace)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		rec, ok := a.vault.UploadRecord(id)
		if !ok {
			return models.UploadRecord{}, false
		}
		if rec.Status.Terminal() {
			return rec, true
		}
		if time.Now().After(deadline) {
			return rec, false
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return rec, false
		}
	}
}

// Uploads lists the tracker's records, newest first.
func (a *App) Uploads(ctx context.Context) error {
	records := a.vault.Uploads()
	if len(records) == 0 {
		printlnFn("No uploads yet")
		return nil
	}

	for _, r := range records {
		line := fmt.Sprintf("%s  %s  %d%%  %s", r.ID, r.Name, r.Progress, r.Status)
		if r.Err != "" {
			line += "  (" + r.Err + ")"
		}
		printlnFn(line)
	}
	return nil
}
