package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/models"
	"github.com/dmitrijs2005/scriptoria/internal/server/repositories/repomanager"
)

// HistoryService records generations and reads them back per owner.
type HistoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewHistoryService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *HistoryService {
	return &HistoryService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "history"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Record appends a generation for ownerEmail. Content is stored as given.
func (s *HistoryService) Record(ctx context.Context, ownerEmail, title, language, content string) (*models.Generation, error) {
	if ownerEmail == "" {
		return nil, common.ErrorUnauthorized
	}

	g := &models.Generation{
		OwnerEmail: ownerEmail,
		Title:      title,
		Language:   language,
		Content:    content,
		CreatedAt:  s.now(),
	}

	out, err := s.repomanager.Outputs(s.db).Append(ctx, g)
	if err != nil {
		s.logger.Error(ctx, "append failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInfrastructure, err)
	}
	return out, nil
}

// List returns every record of ownerEmail, newest first.
func (s *HistoryService) List(ctx context.Context, ownerEmail string) ([]models.Generation, error) {
	list, err := s.repomanager.Outputs(s.db).ListByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error(ctx, "list failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInfrastructure, err)
	}
	return list, nil
}

// Get returns one of ownerEmail's records, or common.ErrorNotFound.
func (s *HistoryService) Get(ctx context.Context, ownerEmail string, id int64) (*models.Generation, error) {
	g, err := s.repomanager.Outputs(s.db).GetForOwner(ctx, ownerEmail, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "get failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInfrastructure, err)
	}
	return g, nil
}

// Latest returns at most n leading records of list. Display surfaces use it
// with common.HistoryDisplayLimit; the store itself never truncates.
func Latest(list []models.Generation, n int) []models.Generation {
	if n < 0 {
		n = 0
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
