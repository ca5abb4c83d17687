package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dmitrijs2005/scriptoria/internal/logging"
	"github.com/dmitrijs2005/scriptoria/internal/server/export"
)

// ExportedFile is a rendered download. URL is set when the file was also
// archived to object storage.
type ExportedFile struct {
	Name        string
	ContentType string
	Data        []byte
	URL         string
}

// ExportService renders a stored generation into a downloadable document.
type ExportService struct {
	history *HistoryService
	archive export.Archive
	logger  logging.Logger
}

// NewExportService wires the renderer to the history store. archive may be
// nil, in which case nothing is uploaded.
func NewExportService(h *HistoryService, archive export.Archive, logger logging.Logger) *ExportService {
	return &ExportService{history: h, archive: archive, logger: logger.With("module", "export")}
}

// Export renders record id of ownerEmail in format. Archiving is best
// effort: an upload failure is logged and the file is still returned.
func (s *ExportService) Export(ctx context.Context, ownerEmail string, id int64, format string) (*ExportedFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}

	g, err := s.history.Get(ctx, ownerEmail, id)
	if err != nil {
		return nil, err
	}

	data, err := export.Render(f, export.Lines(g.Content))
	if err != nil {
		s.logger.Error(ctx, "render failed", "id", id, "format", f, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrInfrastructure, err)
	}

	out := &ExportedFile{
		Name:        export.FileName(g.CreatedAt.Local(), f),
		ContentType: f.ContentType(),
		Data:        data,
	}

	if s.archive != nil {
		url, err := s.archive.Store(ctx, export.StorageKey(g.CreatedAt, out.Name), data, out.ContentType)
		if err != nil {
			s.logger.Warn(ctx, "archive failed", "id", id, "error", err)
		} else {
			out.URL = url
		}
	}
	return out, nil
}
