package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"deskkit/internal/logger"

	"gopkg.in/yaml.v3"
)

const fileVersion = 1

type document struct {
	Version int      `yaml:"version"`
	Files   []string `yaml:"files"`
}

// Store keeps the ranked recent-file list on disk, most recent first.
type Store struct {
	path     string
	capacity int
	logger   logger.Logger

	mu    sync.Mutex
	files []string
}

func NewStore(path string, capacity int, log logger.Logger) *Store {
	return &Store{
		path:     path,
		capacity: capacity,
		logger:   log,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the file contents. A missing file
// yields an empty list.
func (s *Store) Load() ([]string, error) {
	files, err := s.read()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.files = files
	s.mu.Unlock()

	s.logger.Debug("RecentStore", "loaded", map[string]interface{}{
		"path":  s.path,
		"count": len(files),
	})
	return s.List(), nil
}

func (s *Store) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read recent files: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse recent files %s: %w", s.path, err)
	}
	return s.normalize(doc.Files), nil
}

func (s *Store) normalize(files []string) []string {
	seen := make(map[string]bool, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
		if len(out) == s.capacity {
			break
		}
	}
	return out
}

func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

// Add moves path to the front and persists the list.
func (s *Store) Add(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return s.List(), nil
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	s.mu.Lock()
	s.files = s.normalize(append([]string{path}, s.files...))
	files := append([]string(nil), s.files...)
	s.mu.Unlock()

	return files, s.save(files)
}

func (s *Store) Remove(path string) ([]string, error) {
	s.mu.Lock()
	kept := s.files[:0:0]
	for _, f := range s.files {
		if f != path {
			kept = append(kept, f)
		}
	}
	s.files = kept
	files := append([]string(nil), kept...)
	s.mu.Unlock()

	return files, s.save(files)
}

func (s *Store) Clear() error {
	s.mu.Lock()
	s.files = nil
	s.mu.Unlock()

	return s.save(nil)
}

func (s *Store) save(files []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create recent files dir: %w", err)
	}

	data, err := yaml.Marshal(document{Version: fileVersion, Files: files})
	if err != nil {
		return fmt.Errorf("encode recent files: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write recent files: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace recent files: %w", err)
	}

	s.logger.Debug("RecentStore", "saved", map[string]interface{}{
		"path":  s.path,
		"count": len(files),
	})
	return nil
}
