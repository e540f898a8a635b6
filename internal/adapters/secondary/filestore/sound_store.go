package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
)

const lockRetryDelay = 10 * time.Millisecond

type soundMeta struct {
	Label       string `json:"label"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type soundStore struct {
	dir string
}

// NewSoundStore stores each sound as <dir>/<project>/<sound>.bin with a JSON
// sidecar. Writers in the same project directory are serialised with an
// advisory file lock, so several server processes may share dir.
func NewSoundStore(dir string) (ports.SoundStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sounds dir: %w", err)
	}
	return &soundStore{dir: dir}, nil
}

func (s *soundStore) projectDir(projectID uuid.UUID) string {
	return filepath.Join(s.dir, projectID.String())
}

func (s *soundStore) lock(projectID uuid.UUID) *flock.Flock {
	return flock.New(filepath.Join(s.projectDir(projectID), ".lock"))
}

func (s *soundStore) Put(ctx context.Context, sound *domain.Sound, data []byte) error {
	dir := s.projectDir(sound.ProjectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create project sounds dir: %w", err)
	}

	lock := s.lock(sound.ProjectID)
	if _, err := lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("lock sounds dir: %w", err)
	}
	defer lock.Unlock()

	meta, err := json.Marshal(soundMeta{Label: sound.Label, ContentType: sound.ContentType, Size: int64(len(data))})
	if err != nil {
		return fmt.Errorf("marshal sound metadata: %w", err)
	}

	base := filepath.Join(dir, sound.ID.String())
	if err := writeFileAtomic(base+".bin", data); err != nil {
		return err
	}
	if err := writeFileAtomic(base+".json", meta); err != nil {
		_ = os.Remove(base + ".bin")
		return err
	}
	return nil
}

func (s *soundStore) Get(ctx context.Context, projectID, id uuid.UUID) (*domain.Sound, []byte, error) {
	dir := s.projectDir(projectID)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil, domain.ErrSoundNotFound
	}

	lock := s.lock(projectID)
	if _, err := lock.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return nil, nil, fmt.Errorf("lock sounds dir: %w", err)
	}
	defer lock.Unlock()

	base := filepath.Join(dir, id.String())
	rawMeta, err := os.ReadFile(base + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.ErrSoundNotFound
		}
		return nil, nil, fmt.Errorf("read sound metadata: %w", err)
	}
	var meta soundMeta
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		return nil, nil, fmt.Errorf("unmarshal sound metadata: %w", err)
	}

	data, err := os.ReadFile(base + ".bin")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, domain.ErrSoundNotFound
		}
		return nil, nil, fmt.Errorf("read sound: %w", err)
	}

	return &domain.Sound{
		ID:          id,
		ProjectID:   projectID,
		Label:       meta.Label,
		ContentType: meta.ContentType,
		Size:        meta.Size,
	}, data, nil
}

func (s *soundStore) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	dir := s.projectDir(projectID)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return domain.ErrSoundNotFound
	}

	lock := s.lock(projectID)
	if _, err := lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("lock sounds dir: %w", err)
	}
	defer lock.Unlock()

	base := filepath.Join(dir, id.String())
	err := os.Remove(base + ".bin")
	if errors.Is(err, fs.ErrNotExist) {
		return domain.ErrSoundNotFound
	}
	if err != nil {
		return fmt.Errorf("remove sound: %w", err)
	}
	if err := os.Remove(base + ".json"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove sound metadata: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
