// =============================================================================
// Sales Analytics System - File Manager Utility
// =============================================================================
//
// This package provides the file operations around the pipeline:
//   - Reading the sales feed with encoding fallback
//   - Directory management
//   - Input archival (moving processed feeds)
//   - Output file naming with {uuid}/{timestamp} placeholders
//
// ARCHIVAL STRATEGY:
//   - The input feed is moved to the archive directory only after a fully
//     successful run, and only when archival is enabled.
//   - Failed runs leave the feed in place.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// =============================================================================
// SALES FEED READING
// =============================================================================

// feedDecoders are tried in order for non-UTF-8 feeds. The legacy exporter
// produced Latin-1 and Windows-1252 files interchangeably.
var feedDecoders = []*charmap.Charmap{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadSalesData reads the sales feed, decoding UTF-8 first and falling back
// to Latin-1 then Windows-1252. The header line and blank lines are
// stripped; remaining lines are returned trimmed, in file order.
//
// A missing or unreadable file is a real error: the pipeline has nothing to
// do without the feed.
func ReadSalesData(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data: %w", err)
	}

	text, err := decodeFeed(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sales data: %w", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		// First line is the column header.
		lines = lines[1:]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// decodeFeed returns the file content as UTF-8 text, trying the configured
// encodings in order.
func decodeFeed(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	var decoder *encoding.Decoder
	for _, cm := range feedDecoders {
		decoder = cm.NewDecoder()
		decoded, err := decoder.Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), nil
	}

	return "", fmt.Errorf("no supported encoding could decode the feed")
}

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles output and archive directories for a run.
type FileManager struct {
	// OutputDir is where the report and enriched dataset are written.
	OutputDir string

	// InputArchiveDir is where processed feeds are moved.
	InputArchiveDir string

	// ArchiveOnSuccess enables moving the input feed after a successful
	// run.
	ArchiveOnSuccess bool
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, inputArchiveDir string, archiveOnSuccess bool) *FileManager {
	return &FileManager{
		OutputDir:        outputDir,
		InputArchiveDir:  inputArchiveDir,
		ArchiveOnSuccess: archiveOnSuccess,
	}
}

// EnsureDirectories creates the output directory, and the archive directory
// when archival is enabled.
func (fm *FileManager) EnsureDirectories() error {
	dirs := []string{fm.OutputDir}
	if fm.ArchiveOnSuccess {
		dirs = append(dirs, fm.InputArchiveDir)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchiveInputFile moves a processed feed into the archive directory and
// returns the archive path. A name collision gets a timestamp suffix rather
// than overwriting the existing archive entry.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if err := os.MkdirAll(fm.InputArchiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	target := filepath.Join(fm.InputArchiveDir, filepath.Base(filePath))
	if FileExists(target) {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(target, ext)
		target = fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	}

	if err := os.Rename(filePath, target); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}
	return target, nil
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands an output file-name format string.
//
// PLACEHOLDERS:
//   {uuid}      - a random UUID
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//
// Any additional params are substituted as {key} -> value.
func GenerateOutputFileName(format string, params map[string]string) string {
	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.NewString())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))

	for key, value := range params {
		name = strings.ReplaceAll(name, "{"+key+"}", value)
	}
	return name
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
