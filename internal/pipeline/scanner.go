package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// intakeExtension is the only file type picked up from the watch directory.
const intakeExtension = ".tsv"

type Scanner struct {
	log           *slog.Logger
	watchDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider ImportFilesProvider
	fileUpdater   ImportFileUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider ImportFilesProvider,
	fileUpdater ImportFileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		watchDir:      watchDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	known, err := s.knownFiles(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, known)

		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

// knownFiles indexes the import file records by file name.
func (s *Scanner) knownFiles(ctx context.Context) (map[string]*domain.ImportFile, error) {
	files, err := s.filesProvider.ImportFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get import files: %w", err)
	}

	known := make(map[string]*domain.ImportFile, len(files))
	for _, file := range files {
		known[file.Name] = file
	}

	return known, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, known map[string]*domain.ImportFile) error {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), intakeExtension) {
		return nil
	}

	if file, ok := known[entry.Name()]; ok && !file.Claimable() {
		return nil
	}

	err := s.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.watchDir, entry.Name()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
