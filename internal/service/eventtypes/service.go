package eventtypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HRC-CalendarService/internal/domain"
	eventTypeRepo "github.com/m04kA/HRC-CalendarService/internal/infra/storage/eventtype"
)

// Service manages the event type label catalog. Both the developer and the
// HR roles may append entries; nothing is ever deleted, so historical
// bookings keep resolving their name strings.
type Service struct {
	repo   EventTypeRepository
	logger Logger
}

// NewService creates the event type service.
func NewService(repo EventTypeRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the catalog sorted by name.
func (s *Service) List(ctx context.Context) []domain.EventType {
	return s.repo.List(ctx)
}

// Create appends a new label. Names are trimmed, bounded in length and unique
// case-insensitively.
func (s *Service) Create(ctx context.Context, name string) (*domain.EventType, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	if len([]rune(trimmed)) > domain.MaxEventTypeNameLen {
		return nil, fmt.Errorf("%w: max %d characters", ErrNameTooLong, domain.MaxEventTypeNameLen)
	}

	et, err := s.repo.Create(ctx, trimmed)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeExists) {
			s.logger.Warn("Create: event type %q already exists", trimmed)
			return nil, ErrAlreadyExists
		}
		s.logger.Error("Create: repository error for %q: %v", trimmed, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Create: event type %q added id=%s", et.Name, et.ID)
	return et, nil
}

// Seed inserts the default labels, skipping any that already exist.
func (s *Service) Seed(ctx context.Context) {
	for _, name := range domain.DefaultEventTypeNames {
		if _, err := s.repo.Create(ctx, name); err != nil && !errors.Is(err, eventTypeRepo.ErrEventTypeExists) {
			s.logger.Error("Seed: failed to create %q: %v", name, err)
		}
	}
}
