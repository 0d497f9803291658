// Package jsonfile keeps the guild to server mapping in a single JSON object
// on disk, rewritten in full after every change.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"rust-wipe-tracker/internal/core/domain"
)

type FileStore struct {
	mu      sync.Mutex
	path    string
	servers map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	servers, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, servers: servers}, nil
}

// Load reads the mapping at path. A missing file yields an empty mapping;
// malformed content is returned as an error.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	servers := make(map[string]string)
	if err := json.Unmarshal(data, &servers); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if servers == nil {
		servers = make(map[string]string)
	}

	return servers, nil
}

// Save replaces the file at path with the full mapping. The content goes to a
// temporary file in the same directory which is then renamed over path.
func Save(path string, servers map[string]string) (err error) {
	data, err := json.MarshalIndent(servers, "", "    ")
	if err != nil {
		return fmt.Errorf("encode tracked servers: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(fileMode(path)); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// fileMode keeps the permissions of an existing file so a rewrite never
// widens them.
func fileMode(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

func (s *FileStore) Close() {}

func (s *FileStore) SetTrackedServer(ctx context.Context, guildID, serverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.servers[guildID]
	s.servers[guildID] = serverID

	if err := Save(s.path, s.servers); err != nil {
		if existed {
			s.servers[guildID] = previous
		} else {
			delete(s.servers, guildID)
		}
		return err
	}

	return nil
}

func (s *FileStore) GetTrackedServer(ctx context.Context, guildID string) (*domain.TrackedServer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	serverID, ok := s.servers[guildID]
	if !ok {
		return nil, domain.ErrNotTracked
	}

	return &domain.TrackedServer{GuildID: guildID, ServerID: serverID}, nil
}

func (s *FileStore) DeleteTrackedServer(ctx context.Context, guildID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	serverID, ok := s.servers[guildID]
	if !ok {
		return false, nil
	}
	delete(s.servers, guildID)

	if err := Save(s.path, s.servers); err != nil {
		s.servers[guildID] = serverID
		return false, err
	}

	return true, nil
}

func (s *FileStore) ListTrackedServers(ctx context.Context) ([]domain.TrackedServer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.TrackedServer, 0, len(s.servers))
	for guildID, serverID := range s.servers {
		result = append(result, domain.TrackedServer{GuildID: guildID, ServerID: serverID})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GuildID < result[j].GuildID
	})

	return result, nil
}
