package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coachconnect/backend/internal/models"
)

// FileProfileStore is a JSON-file-backed ProfileStore used when no Mongo
// URI is configured (local development and tests). It applies the same
// merge semantics as the Mongo store.
type FileProfileStore struct {
	mu       sync.RWMutex
	filePath string
	profiles map[string]*models.Profile
}

func NewFileProfileStore(dataDir, filename string) (*FileProfileStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	s := &FileProfileStore{
		filePath: filepath.Join(dataDir, filename),
		profiles: make(map[string]*models.Profile),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileProfileStore) Close(ctx context.Context) error {
	return nil
}

func (s *FileProfileStore) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prof, ok := s.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	cp := *prof
	return &cp, nil
}

func (s *FileProfileStore) Upsert(ctx context.Context, userID string, patch *ProfilePatch) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	prof, ok := s.profiles[userID]
	if !ok {
		prof = &models.Profile{
			UserID:    userID,
			CreatedAt: now,
		}
		s.profiles[userID] = prof
	}
	patch.Apply(prof)
	prof.UpdatedAt = now

	if err := s.save(); err != nil {
		return nil, err
	}
	cp := *prof
	return &cp, nil
}

func (s *FileProfileStore) load() error {
	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No data yet, not an error.
			return nil
		}
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(&s.profiles)
}

// save writes to a temp file first, then renames (atomic operation).
func (s *FileProfileStore) save() error {
	tempFile := s.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.profiles); err != nil {
		file.Close()
		os.Remove(tempFile)
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.filePath)
}
