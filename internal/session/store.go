// Package session persists the bearer credential across process restarts.
package session

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rajeshacpt/Invest-Guru/internal/model"
)

// Store persists a single bearer credential.
type Store interface {
	// Load returns the stored session, or a zero session if none is stored.
	// Storage errors degrade to an absent session; Load never fails.
	Load() model.Session
	Save(token string) error
	Clear() error
}

// FileStore keeps the credential as a small JSON file on disk.
// Save and Clear are serialized so a future logout cannot race a login.
type FileStore struct {
	mu       sync.Mutex
	filePath string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(filePath string) *FileStore {
	return &FileStore{filePath: filePath}
}

func (s *FileStore) Load() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read session file: %v", err)
		}
		return model.Session{}
	}
	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("[WARN] parse session file, treating as absent: %v", err)
		return model.Session{}
	}
	return sess
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := model.Session{Token: token, UpdatedAt: time.Now()}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	// 0600: the file holds a live credential.
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
