package reader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

type extractor func(path string) (string, error)

// SupportedExtensions lists the file types Read understands.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// Reader extracts plain text from documents on disk.
type Reader struct {
	extractors map[string]extractor
	logger     *zerolog.Logger
}

func New(logger *zerolog.Logger) *Reader {
	return &Reader{
		extractors: map[string]extractor{
			".pdf":  readPDF,
			".docx": readDOCX,
			".txt":  readText,
		},
		logger: logger,
	}
}

// Read returns ok=false for unsupported or unreadable files.
func (r *Reader) Read(path string) (text string, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error().Interface("panic", p).Str("path", path).Msg("Text extraction panicked")
			text, ok = "", false
		}
	}()

	ext := strings.ToLower(filepath.Ext(path))

	extract, found := r.extractors[ext]
	if !found {
		r.logger.Warn().Str("path", path).Str("extension", ext).Msg("Unsupported file type")
		return "", false
	}

	text, err := extract(path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("Unable to read file")
		return "", false
	}
	return text, true
}

// Supported reports whether path has an extension Read understands.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
