package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lancelocker.dev/internal/models"
)

const defaultReloadDebounce = 500 * time.Millisecond

var errNotObject = errors.New("locker document must be an object")

// LockerService provides the current locker document.
// Without a watcher every call to Current reads the file again;
// while Watch is running the last loaded copy is served instead.
type LockerService struct {
	path     string
	logger   *zap.Logger
	debounce time.Duration

	mu       sync.RWMutex
	watching bool
	locker   *models.Locker
}

// NewLockerService creates a new LockerService
func NewLockerService(path string, logger *zap.Logger) *LockerService {
	if strings.TrimSpace(path) == "" {
		path = DefaultLockerPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LockerService{
		path:     path,
		logger:   logger,
		debounce: defaultReloadDebounce,
	}
}

// Path returns the locker document path
func (s *LockerService) Path() string {
	return s.path
}

// Current returns the locker document for one render cycle
func (s *LockerService) Current() *models.Locker {
	s.mu.RLock()
	cached := s.locker
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}
	return LoadLocker(s.path, s.logger)
}

// Reload reads the document from disk and, while watching, replaces the cached copy
func (s *LockerService) Reload() *models.Locker {
	locker := LoadLocker(s.path, s.logger)
	s.mu.Lock()
	if s.watching {
		s.locker = locker
	}
	s.mu.Unlock()
	return locker
}

// Watch starts reloading the document whenever it changes on disk.
// The watcher is registered before Watch returns and stops when ctx is done.
func (s *LockerService) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory and filter by name.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.mu.Lock()
	s.watching = true
	s.mu.Unlock()
	s.Reload()

	go s.watchLoop(ctx, watcher)
	return nil
}

func (s *LockerService) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	target := filepath.Clean(s.path)

	var reloadTimer *time.Timer
	defer func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
		s.mu.Lock()
		s.watching = false
		s.locker = nil
		s.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.logger.Debug("locker changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(s.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				locker := s.Reload()
				s.logger.Info("locker reloaded", zap.String("path", s.path), zap.Int("projects", len(locker.Projects)))
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("locker watcher error", zap.Error(err))
		}
	}
}

// LoadLocker reads and normalizes the locker document at path.
// Any failure is logged and answered with DefaultLocker; the caller always gets a document.
func LoadLocker(path string, logger *zap.Logger) *models.Locker {
	if logger == nil {
		logger = zap.NewNop()
	}
	locker, err := ReadLocker(path)
	if err != nil {
		logger.Warn("locker unavailable, using defaults", zap.String("path", path), zap.Error(err))
		locker = DefaultLocker()
	}
	NormalizeLocker(locker)
	return locker
}

// ReadLocker reads the locker document without applying defaults
func ReadLocker(path string) (*models.Locker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locker: %w", err)
	}
	if isYAML(path) {
		return DecodeLockerYAML(data)
	}
	return DecodeLockerJSON(data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// DecodeLockerJSON parses a JSON locker document
func DecodeLockerJSON(data []byte) (*models.Locker, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	var locker models.Locker
	if err := json.Unmarshal(trimmed, &locker); err != nil {
		return nil, fmt.Errorf("failed to parse locker: %w", err)
	}
	return &locker, nil
}

// DecodeLockerYAML parses a YAML locker document
func DecodeLockerYAML(data []byte) (*models.Locker, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse locker: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errNotObject
	}
	var locker models.Locker
	if err := doc.Content[0].Decode(&locker); err != nil {
		return nil, fmt.Errorf("failed to parse locker: %w", err)
	}
	return &locker, nil
}

// NormalizeLocker fills in every missing field of the document in place
func NormalizeLocker(l *models.Locker) {
	if l.Profile == nil {
		l.Profile = DefaultProfile()
	}
	NormalizeProfile(l.Profile)
	if l.Projects == nil {
		l.Projects = []models.Project{}
	}
	for i := range l.Projects {
		NormalizeProject(&l.Projects[i])
	}
}

// NormalizeProfile fills in hero defaults
func NormalizeProfile(p *models.Profile) {
	if p.Name == "" {
		p.Name = defaultProfileName
	}
	if p.Tagline == "" {
		p.Tagline = defaultProfileTagline
	}
	if p.Chips == nil {
		p.Chips = []string{}
	}
	if p.Links == nil {
		p.Links = []models.Link{}
	}
}

// NormalizeProject derives a missing id and replaces absent lists with empty ones
func NormalizeProject(p *models.Project) {
	if p.ID == "" {
		p.ID = DeriveID(p.Title)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Links == nil {
		p.Links = []models.Link{}
	}
	if p.Facts == nil {
		p.Facts = []models.Fact{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
