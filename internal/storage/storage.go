package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osuc/buscacursos/internal/course"
)

// Storage handles persistence of scrape snapshots, one JSON file per
// (subject, term) pair under the data directory.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// snapshotPath returns the path to the snapshot file for a subject and term.
func (s *Storage) snapshotPath(subject string, term course.Term) string {
	name := fmt.Sprintf("snapshot_%s_%s.json", strings.ToUpper(subject), term)
	return filepath.Join(s.dataDir, name)
}

// LoadSnapshot loads the stored snapshot for a subject and term. A missing
// file yields an empty snapshot, not an error.
func (s *Storage) LoadSnapshot(subject string, term course.Term) (*course.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(subject, term))
	if err != nil {
		if os.IsNotExist(err) {
			return course.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot course.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Courses == nil {
		snapshot.Courses = make(map[string]course.Course)
	}
	return &snapshot, nil
}

// SaveSnapshot saves a snapshot to disk, stamping it with a fresh scrape ID
// and update time.
func (s *Storage) SaveSnapshot(snapshot *course.Snapshot, subject string, term course.Term) error {
	snapshot.ScrapeID = uuid.NewString()
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(subject, term), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// SaveCourses creates and saves a snapshot from a scrape result.
func (s *Storage) SaveCourses(courses []course.Course, subject string, term course.Term) error {
	snapshot := course.CreateSnapshot(courses, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, subject, term)
}
