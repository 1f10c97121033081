// Package casestore loads search relevance test cases from blob storage.
package casestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"curator/config"
	"curator/internal/domain/entity"
	domainerrors "curator/internal/domain/errors"
	"curator/internal/domain/service"
	"curator/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
)

type blobCaseStore struct {
	bucketURL string
	key       string
	logger    *slog.Logger
}

// New creates a case store reading cfg.CasesKey from the cfg.CasesURL bucket.
func New(cfg *config.Config, logger *slog.Logger) (service.CaseStore, error) {
	if cfg.Relevance == nil || strings.TrimSpace(cfg.Relevance.CasesURL) == "" {
		return nil, errors.New("relevance cases URL is required")
	}

	return &blobCaseStore{
		bucketURL: bucketURL(cfg.Relevance.CasesURL),
		key:       cfg.Relevance.CasesKey,
		logger:    logger,
	}, nil
}

// bucketURL turns a plain directory into a file:// bucket URL and leaves URLs untouched.
//   - "gs://bucket/cases" -> "gs://bucket/cases"
//   - "/srv/data" -> "file:///srv/data"
func bucketURL(source string) string {
	if strings.Contains(source, "://") {
		return source
	}

	dir, err := filepath.Abs(source)
	if err != nil {
		dir = source
	}

	return "file://" + filepath.ToSlash(dir)
}

// LoadCases reads and decodes the test cases.
func (s *blobCaseStore) LoadCases(ctx context.Context) ([]entity.SearchCase, error) {
	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return nil, domainerrors.ErrSearchCasesUnavailable.WithDetails(err.Error())
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			s.logger.Warn("Failed to close case bucket", slog.Any("error", closeErr))
		}
	}()

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, domainerrors.ErrSearchCasesUnavailable.WithDetails(err.Error())
	}

	var cases []entity.SearchCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", s.key)
	}

	s.logger.Debug("Loaded search test cases", slog.String("key", s.key), slog.Int("count", len(cases)))

	return cases, nil
}
