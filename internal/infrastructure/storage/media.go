package storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/srpos/backend/internal/domain/media"
	"go.uber.org/zap"
)

// watermark data URIs only embed raster formats the engines can draw
var imageMimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MediaLibrary resolves host media attachments to filesystem paths and
// public URLs. Attachments live in an uploads directory with paths stored
// relative to it.
type MediaLibrary struct {
	attachments media.Repository
	uploadDir   string
	baseURL     string
	logger      *zap.Logger
}

// NewMediaLibrary creates a media library over the attachment store
func NewMediaLibrary(attachments media.Repository, uploadDir, baseURL string, logger *zap.Logger) *MediaLibrary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaLibrary{
		attachments: attachments,
		uploadDir:   uploadDir,
		baseURL:     strings.TrimRight(baseURL, "/"),
		logger:      logger,
	}
}

// Path resolves an attachment to its absolute filesystem path
func (l *MediaLibrary) Path(ctx context.Context, id uuid.UUID) (string, error) {
	a, err := l.attachments.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.uploadDir, filepath.FromSlash(a.FilePath)), nil
}

// URL resolves an attachment to a public URL. A non-empty size selects a
// pregenerated variant named {base}-{size}{ext} when one exists on disk,
// otherwise the original is returned.
func (l *MediaLibrary) URL(ctx context.Context, id uuid.UUID, size string) (string, error) {
	a, err := l.attachments.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	relPath := a.FilePath
	if size != "" {
		if variant := l.sizeVariant(a.FilePath, size); variant != "" {
			relPath = variant
		}
	}
	return l.baseURL + "/" + relPath, nil
}

// FileURL builds the public URL for a path relative to the uploads
// directory, without an attachment lookup.
func (l *MediaLibrary) FileURL(relPath string) string {
	return l.baseURL + "/" + strings.TrimLeft(relPath, "/")
}

// sizeVariant returns the relative path of a size variant, or "" when it
// does not exist on disk.
func (l *MediaLibrary) sizeVariant(relPath, size string) string {
	ext := filepath.Ext(relPath)
	base := strings.TrimSuffix(relPath, ext)
	variant := base + "-" + size + ext
	if _, err := os.Stat(filepath.Join(l.uploadDir, filepath.FromSlash(variant))); err != nil {
		return ""
	}
	return variant
}

// DataURI loads an attachment and embeds it as a base64 data URI for inline
// use in print-mode documents. Any failure yields an empty string so a
// missing or unreadable image simply drops the visual.
func (l *MediaLibrary) DataURI(ctx context.Context, id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	a, err := l.attachments.FindByID(ctx, id)
	if err != nil {
		l.logger.Debug("attachment lookup failed, omitting image",
			zap.String("attachment_id", id.String()),
			zap.Error(err))
		return ""
	}
	mime := imageMimeByExt[strings.ToLower(filepath.Ext(a.FilePath))]
	if mime == "" {
		mime = a.MimeType
	}
	if !strings.HasPrefix(mime, "image/") {
		return ""
	}
	raw, err := os.ReadFile(filepath.Join(l.uploadDir, filepath.FromSlash(a.FilePath)))
	if err != nil {
		l.logger.Debug("attachment file unreadable, omitting image",
			zap.String("attachment_id", id.String()),
			zap.Error(err))
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw))
}
