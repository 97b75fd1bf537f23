package email

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appdoc "github.com/srpos/backend/internal/application/document"
	"github.com/srpos/backend/internal/domain/document"
	"github.com/srpos/backend/internal/domain/settings"
	"github.com/srpos/backend/internal/infrastructure/rendering"
)

// AdminNewOrderEmail is the host's admin notification for a new order. It is
// the only email that can carry a packing slip instead of the invoice.
const AdminNewOrderEmail = "new_order"

// FileGenerator renders one order document to a temp file
type FileGenerator interface {
	GenerateFile(ctx context.Context, orderID uuid.UUID, typ document.Type) (*rendering.GeneratedFile, error)
}

var _ FileGenerator = (*appdoc.Service)(nil)

// AttachmentSet holds the generated files for one outgoing email. Close
// removes every file; callers must close the set on all exit paths.
type AttachmentSet struct {
	files []*rendering.GeneratedFile
}

// Paths lists the attachment file paths in generation order
func (a *AttachmentSet) Paths() []string {
	paths := make([]string, 0, len(a.files))
	for _, f := range a.files {
		paths = append(paths, f.Path)
	}
	return paths
}

// Names lists the public attachment filenames
func (a *AttachmentSet) Names() []string {
	names := make([]string, 0, len(a.files))
	for _, f := range a.files {
		names = append(names, f.Name)
	}
	return names
}

// Close deletes every generated file. Safe to call more than once.
func (a *AttachmentSet) Close() error {
	var firstErr error
	for _, f := range a.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Service decides which documents ride along on the host's transactional
// emails and generates them.
type Service struct {
	documents FileGenerator
	settings  settings.Repository
	logger    *zap.Logger
}

// NewService creates an email attachment Service
func NewService(documents FileGenerator, settingsRepo settings.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		documents: documents,
		settings:  settingsRepo,
		logger:    logger,
	}
}

// Attachments generates the PDF attachments for one outgoing email. The
// returned set is empty when attachments are disabled, the email is not a
// configured target, or no PDF engine is available; none of those are
// errors. The caller owns the set and must Close it.
func (s *Service) Attachments(ctx context.Context, emailID string, orderID uuid.UUID) (*AttachmentSet, error) {
	set := &AttachmentSet{}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return set, err
	}
	cfg = cfg.Normalized()

	if !cfg.EmailAttachEnabled || !s.isTarget(cfg, emailID) {
		return set, nil
	}

	// the admin's new-order email carries the packing slip instead of the
	// invoice when so configured
	typ := document.TypeInvoice
	if emailID == AdminNewOrderEmail && cfg.PackingForAdminEmail {
		typ = document.TypePackingSlip
	}

	file, err := s.documents.GenerateFile(ctx, orderID, typ)
	if err != nil {
		if errors.Is(err, rendering.ErrEngineUnavailable) {
			s.logger.Debug("no PDF engine, skipping email attachments",
				zap.String("email_id", emailID))
			return set, nil
		}
		return set, err
	}
	set.files = append(set.files, file)

	s.logger.Info("email attachments generated",
		zap.String("email_id", emailID),
		zap.String("order_id", orderID.String()),
		zap.Int("count", len(set.files)))

	return set, nil
}

func (s *Service) isTarget(cfg settings.Settings, emailID string) bool {
	for _, target := range cfg.EmailAttachTargets {
		if target == emailID {
			return true
		}
	}
	return false
}
