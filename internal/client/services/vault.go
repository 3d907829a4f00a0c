package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/syncveil/syncveil/internal/client/api"
	"github.com/syncveil/syncveil/internal/client/models"
	"github.com/syncveil/syncveil/internal/client/upload"
	"github.com/syncveil/syncveil/internal/logging"
)

// VaultService wraps the vault, dashboard and breach-monitor operations and
// owns the upload tracker that mirrors in-flight uploads for the UI.
type VaultService interface {
	// Upload transmits the file at path and returns the upload record id.
	// The returned error reflects the transport outcome; the record's
	// terminal state arrives later via the tracker (settle).
	Upload(ctx context.Context, path string) (string, error)

	Uploads() []models.UploadRecord
	UploadRecord(id string) (models.UploadRecord, bool)

	Files(ctx context.Context) ([]models.VaultFile, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	Breaches(ctx context.Context) ([]models.Breach, error)

	// Close stops pending settle timers.
	Close()
}

type vaultService struct {
	client  api.Client
	tracker *upload.Tracker
	log     logging.Logger
}

func NewVaultService(client api.Client, tracker *upload.Tracker, log logging.Logger) VaultService {
	return &vaultService{client: client, tracker: tracker, log: log.With("component", "vault")}
}

func (s *vaultService) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	id := s.tracker.Start(name)

	_, err = s.client.UploadFile(ctx, name, f, func(percent float64) {
		s.tracker.Progress(id, percent)
	})
	if err != nil {
		s.tracker.Fail(id, failureMessage(err))
		s.log.Error(ctx, "upload failed", "name", name, "error", err)
		return id, err
	}

	s.tracker.TransportComplete(id)
	s.log.Info(ctx, "upload transmitted", "name", name, "id", id)
	return id, nil
}

func (s *vaultService) Uploads() []models.UploadRecord {
	return s.tracker.Records()
}

func (s *vaultService) UploadRecord(id string) (models.UploadRecord, bool) {
	return s.tracker.Record(id)
}

func (s *vaultService) Files(ctx context.Context) ([]models.VaultFile, error) {
	return s.client.VaultFiles(ctx)
}

func (s *vaultService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	return s.client.DashboardData(ctx)
}

func (s *vaultService) Breaches(ctx context.Context) ([]models.Breach, error) {
	return s.client.BreachData(ctx)
}

func (s *vaultService) Close() {
	s.tracker.Close()
}

// failureMessage prefers the API error's user-facing message.
func failureMessage(err error) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
