package jsonl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dialogen/app"
	"dialogen/domain/core"
	"dialogen/domain/dataset"
	"dialogen/internal/config"
	"dialogen/internal/errors"
)

// Writer persists conversation records and training samples to disk in json
// or jsonl form, writing a sibling .report.json next to every dataset file.
type Writer struct {
	dir    string
	format string
}

// NewWriter creates a dataset writer for the configured output directory.
func NewWriter(cfg config.OutputConfig) *Writer {
	return &Writer{dir: cfg.Dir, format: cfg.Format}
}

// SaveRecords writes records under filename, or a timestamped default when
// filename is empty, and drops the batch report alongside. Returns the
// dataset file path.
func (w *Writer) SaveRecords(records []dataset.ConversationRecord, filename string, report *app.Report) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("dataset_%s.%s", time.Now().Format("20060102_150405"), w.format)
	}
	path := filepath.Join(w.dir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.WithCode(err, errors.CodeStorage, "create output directory")
	}

	items := make([]interface{}, len(records))
	for i := range records {
		items[i] = records[i]
	}
	if err := writeItems(path, w.format, items); err != nil {
		return "", err
	}

	if report != nil {
		reportPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".report.json"
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", errors.WithCode(err, errors.CodeStorage, "marshal report")
		}
		if err := os.WriteFile(reportPath, data, 0o644); err != nil {
			return "", errors.WithCode(err, errors.CodeStorage, "write report")
		}
	}
	return path, nil
}

// SaveSamples writes published training samples under filename, or a
// timestamped default when filename is empty. Training files are always a
// single JSON array regardless of the configured dataset format; downstream
// trainers consume the whole array.
func (w *Writer) SaveSamples(samples []dataset.TrainingSample, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("train_data_%s.json", time.Now().Format("20060102_150405"))
	}
	path := filepath.Join(w.dir, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.WithCode(err, errors.CodeStorage, "create output directory")
	}

	items := make([]interface{}, len(samples))
	for i := range samples {
		items[i] = samples[i]
	}
	if err := writeItems(path, "json", items); err != nil {
		return "", err
	}
	return path, nil
}

func writeItems(path, format string, items []interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithCode(err, errors.CodeStorage, "create dataset file")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	// Keep labels like <end-of-turn> literal on disk.
	enc.SetEscapeHTML(false)

	switch format {
	case "jsonl":
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return errors.WithCode(err, errors.CodeStorage, "encode jsonl line")
			}
		}
		return nil
	case "json":
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			return errors.WithCode(err, errors.CodeStorage, "encode json array")
		}
		return nil
	default:
		return errors.WithCode(fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, format), errors.CodeConfig, "write dataset")
	}
}
