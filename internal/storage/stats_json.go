package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

const statsFileName = "stats.json"

// jsonStatistics is the durable wire shape of the statistics record.
// Durations are stored as integer seconds, timestamps as RFC 3339.
type jsonStatistics struct {
	TotalWorkTime     int64         `json:"total_work_time"`
	TotalBreakTime    int64         `json:"total_break_time"`
	SessionsCompleted int           `json:"sessions_completed"`
	TodaySessions     []jsonSession `json:"today_sessions"`
	LastReset         string        `json:"last_reset"`
}

type jsonSession struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Duration  int64  `json:"duration"`
}

// JSONStore persists the statistics record as a single flat JSON file.
// Saves serialize on an internal mutex so fire-and-forget writes from
// the engine cannot interleave.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

// NewJSONStore creates a store writing to path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// DefaultStatsPath resolves the statistics file under the user config
// directory for the given application name.
func DefaultStatsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, statsFileName), nil
}

// Load reads the statistics record. A missing file is not an error; it
// is reported through the second return value.
func (store *JSONStore) Load() (model.Statistics, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Statistics{}, false, nil
		}
		return model.Statistics{}, false, fmt.Errorf("read statistics file: %w", err)
	}

	var fileData jsonStatistics
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return model.Statistics{}, false, fmt.Errorf("parse statistics json: %w", err)
	}

	stats := model.Statistics{
		TotalWorkTime:     time.Duration(fileData.TotalWorkTime) * time.Second,
		TotalBreakTime:    time.Duration(fileData.TotalBreakTime) * time.Second,
		SessionsCompleted: fileData.SessionsCompleted,
		LastReset:         fileData.LastReset,
	}
	for _, entry := range fileData.TodaySessions {
		timestamp, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			// Tolerate a hand-edited or truncated entry rather than
			// refusing the whole record.
			continue
		}
		stats.TodaySessions = append(stats.TodaySessions, model.SessionLogEntry{
			Kind:      model.LogKind(entry.Type),
			Timestamp: timestamp,
			Duration:  time.Duration(entry.Duration) * time.Second,
		})
	}
	return stats, true, nil
}

// Save writes the statistics record, creating the directory if needed.
func (store *JSONStore) Save(stats model.Statistics) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	fileData := jsonStatistics{
		TotalWorkTime:     int64(stats.TotalWorkTime / time.Second),
		TotalBreakTime:    int64(stats.TotalBreakTime / time.Second),
		SessionsCompleted: stats.SessionsCompleted,
		TodaySessions:     make([]jsonSession, 0, len(stats.TodaySessions)),
		LastReset:         stats.LastReset,
	}
	for _, entry := range stats.TodaySessions {
		fileData.TodaySessions = append(fileData.TodaySessions, jsonSession{
			Type:      string(entry.Kind),
			Timestamp: entry.Timestamp.Format(time.RFC3339),
			Duration:  int64(entry.Duration / time.Second),
		})
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statistics json: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create statistics directory: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write statistics file: %w", err)
	}
	return nil
}
