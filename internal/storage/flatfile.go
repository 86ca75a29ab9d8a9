package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/orevault/orevault/internal/domain"
)

// settingsDocument is the on-disk shape of the settings file
type settingsDocument struct {
	Players map[string]playerSettingsEntry `json:"players"`
}

type playerSettingsEntry struct {
	RewardsEnabled bool `json:"rewards_enabled"`
}

// statisticsDocument is the on-disk shape of the statistics file
type statisticsDocument struct {
	Players map[string]playerStatisticsEntry `json:"players"`
}

type playerStatisticsEntry struct {
	Ores map[string]domain.StatisticEntry `json:"ores"`
}

// flatFileStore implements Store on two hierarchical JSON documents.
// All writes are serialized through a single mutex, so read-modify-write
// increments cannot race. Every mutation is flushed with a
// write-tmp/fsync/rename sequence so a crash leaves the previous
// document intact, never a partial one.
type flatFileStore struct {
	mu sync.Mutex

	settingsPath   string
	statisticsPath string

	settings   settingsDocument
	statistics statisticsDocument
}

// NewFlatFileStore creates the flat-file backend rooted at dir,
// loading any existing documents.
func NewFlatFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, DataDirPerm); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadDocumentFailed, dir, err)
	}

	s := &flatFileStore{
		settingsPath:   filepath.Join(dir, SettingsFileName),
		statisticsPath: filepath.Join(dir, StatisticsFileName),
		settings:       settingsDocument{Players: make(map[string]playerSettingsEntry)},
		statistics:     statisticsDocument{Players: make(map[string]playerStatisticsEntry)},
	}

	if err := loadDocument(s.settingsPath, &s.settings); err != nil {
		return nil, err
	}
	if err := loadDocument(s.statisticsPath, &s.statistics); err != nil {
		return nil, err
	}
	if s.settings.Players == nil {
		s.settings.Players = make(map[string]playerSettingsEntry)
	}
	if s.statistics.Players == nil {
		s.statistics.Players = make(map[string]playerStatisticsEntry)
	}

	return s, nil
}

func (s *flatFileStore) IsRewardsEnabled(_ context.Context, playerID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := playerID.String()
	if entry, ok := s.settings.Players[key]; ok {
		return entry.RewardsEnabled, nil
	}

	// First contact: persist the default so the record exists
	s.settings.Players[key] = playerSettingsEntry{RewardsEnabled: true}
	if err := saveDocument(s.settingsPath, &s.settings); err != nil {
		return true, err
	}
	return true, nil
}

func (s *flatFileStore) SetRewardsEnabled(_ context.Context, playerID uuid.UUID, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Players[playerID.String()] = playerSettingsEntry{RewardsEnabled: enabled}
	return saveDocument(s.settingsPath, &s.settings)
}

func (s *flatFileStore) RecordStatistic(_ context.Context, playerID uuid.UUID, ore domain.Ore, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := playerID.String()
	player, ok := s.statistics.Players[key]
	if !ok {
		player = playerStatisticsEntry{Ores: make(map[string]domain.StatisticEntry)}
	}

	entry := player.Ores[ore.String()]
	entry.TimesMined++
	entry.AmountEarned += amount
	player.Ores[ore.String()] = entry
	s.statistics.Players[key] = player

	return saveDocument(s.statisticsPath, &s.statistics)
}

func (s *flatFileStore) GetStatistics(_ context.Context, playerID uuid.UUID) (map[domain.Ore]domain.StatisticEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make(map[domain.Ore]domain.StatisticEntry)
	player, ok := s.statistics.Players[playerID.String()]
	if !ok {
		return stats, nil
	}

	for ore, entry := range player.Ores {
		stats[domain.Ore(ore)] = entry
	}
	return stats, nil
}

// loadDocument reads a JSON document, tolerating a missing file
func loadDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf(ErrMsgLoadDocumentFailed, path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf(ErrMsgLoadDocumentFailed, path, err)
	}
	return nil
}

// saveDocument writes a JSON document atomically: write to a temp file,
// fsync, then rename over the previous version.
func saveDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf(ErrMsgSaveDocumentFailed, path, err)
	}
	return nil
}
