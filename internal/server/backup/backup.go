// Package backup создает и восстанавливает резервные копии данных портала.
//
// Копия это JSON снимок пользователей и тикетов, сжатый zstd. Контрольная
// сумма BLAKE3 хранится в таблице backups и проверяется перед восстановлением.
package backup

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/zeebo/blake3"

	"github.com/iudanet/fieldsync/internal/models"
	"github.com/iudanet/fieldsync/internal/server/storage"
)

const fileSuffix = ".json.zst"

var (
	ErrInvalidFilename  = errors.New("invalid backup filename")
	ErrChecksumMismatch = errors.New("backup checksum mismatch")
)

// Service управляет файлами резервных копий в каталоге dir
type Service struct {
	fs      afero.Fs
	store   storage.BackupStorage
	clock   clockwork.Clock
	logger  *slog.Logger
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewService creates a backup service. fs and clock may be nil.
func NewService(fs afero.Fs, dir string, store storage.BackupStorage, clock clockwork.Clock, logger *slog.Logger) (*Service, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}

	return &Service{
		fs:      fs,
		store:   store,
		clock:   clock,
		logger:  logger.With("component", "backup"),
		dir:     dir,
		encoder: encoder,
		decoder: decoder,
	}, nil
}

// Create снимает данные и записывает новую копию
func (s *Service) Create(ctx context.Context) (models.Backup, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return models.Backup{}, fmt.Errorf("failed to take snapshot: %w", err)
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return models.Backup{}, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	compressed := s.encoder.EncodeAll(raw, nil)

	now := s.clock.Now().UTC()
	b := models.Backup{
		ID:        uuid.NewString(),
		Filename:  "backup-" + now.Format("20060102-150405") + fileSuffix,
		Checksum:  checksum(compressed),
		Size:      int64(len(compressed)),
		Users:     len(snap.Users),
		Tickets:   len(snap.Tickets),
		CreatedAt: now,
	}

	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return models.Backup{}, fmt.Errorf("failed to create backup dir: %w", err)
	}
	path := filepath.Join(s.dir, b.Filename)
	if err := afero.WriteFile(s.fs, path, compressed, 0o600); err != nil {
		return models.Backup{}, fmt.Errorf("failed to write backup: %w", err)
	}

	if err := s.store.SaveBackup(ctx, b); err != nil {
		_ = s.fs.Remove(path)
		return models.Backup{}, err
	}

	s.logger.Info("Backup created",
		"filename", b.Filename,
		"users", b.Users,
		"tickets", b.Tickets,
		"size", b.Size,
	)
	return b, nil
}

// List returns known backups, newest first
func (s *Service) List(ctx context.Context) ([]models.Backup, error) {
	return s.store.ListBackups(ctx)
}

// Restore заменяет пользователей и тикеты содержимым копии.
// Возвращает число восстановленных записей.
func (s *Service) Restore(ctx context.Context, filename string) (int, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || filename == ".." {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	b, err := s.store.GetBackup(ctx, filename)
	if err != nil {
		return 0, err
	}

	compressed, err := afero.ReadFile(s.fs, filepath.Join(s.dir, b.Filename))
	if err != nil {
		return 0, fmt.Errorf("failed to read backup: %w", err)
	}
	if sum := checksum(compressed); sum != b.Checksum {
		return 0, fmt.Errorf("%w: %s", ErrChecksumMismatch, b.Filename)
	}

	raw, err := s.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to decompress backup: %w", err)
	}

	var snap storage.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return 0, fmt.Errorf("failed to decode backup: %w", err)
	}

	if err := s.store.Restore(ctx, &snap); err != nil {
		return 0, fmt.Errorf("failed to restore backup: %w", err)
	}

	count := len(snap.Users) + len(snap.Tickets)
	s.logger.Warn("Backup restored", "filename", b.Filename, "records", count)
	return count, nil
}

// Close releases encoder and decoder resources
func (s *Service) Close() error {
	s.decoder.Close()
	return s.encoder.Close()
}

func checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
