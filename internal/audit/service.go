// Package audit writes one JSON file per catalog mutation attempt.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/utils"
)

const maxErrorMsgLength = 500

// Service records catalog mutations as JSON audit files named by UUID.
// A nil *Service is valid and records nothing.
type Service struct {
	dir string
	now func() time.Time
}

// NewService creates a new audit service writing to dir.
// An empty directory disables auditing and returns nil.
func NewService(dir string) *Service {
	if dir == "" {
		return nil
	}
	return &Service{dir: dir, now: time.Now}
}

// Log records an audit event. Failures are logged, never returned.
func (s *Service) Log(event *entities.AuditEvent) {
	if s == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now()
	}
	if _, err := s.write(event); err != nil {
		log.Printf("Failed to log audit event: %v", err)
	}
}

// write stores event as <uuid>.json and returns the file name.
func (s *Service) write(event *entities.AuditEvent) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audit directory: %w", err)
	}

	data, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit event: %w", err)
	}

	name := uuid.NewString() + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}
	return name, nil
}

// LogAddBook records an add-book attempt.
func (s *Service) LogAddBook(isbn, title string, err error) {
	s.Log(newEvent(entities.AuditActionAddBook, isbn, "Add book: "+title, err))
}

// LogAddAuthor records an add-author attempt.
func (s *Service) LogAddAuthor(authorKey, name string, err error) {
	s.Log(newEvent(entities.AuditActionAddAuthor, authorKey, "Add author: "+name, err))
}

// LogExport records a markdown export.
func (s *Service) LogExport(description string, err error) {
	s.Log(newEvent(entities.AuditActionExport, "", description, err))
}

// LogSeed records a seed file import.
func (s *Service) LogSeed(description string, err error) {
	s.Log(newEvent(entities.AuditActionSeed, "", description, err))
}

func newEvent(action entities.AuditAction, key, description string, err error) *entities.AuditEvent {
	event := &entities.AuditEvent{
		Action:      action,
		Description: description,
		EntityKey:   key,
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = utils.Truncate(err.Error(), maxErrorMsgLength)
	}
	return event
}
