package jsonl

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dialogen/domain/conversation"
	"dialogen/domain/dataset"
	"dialogen/internal"
	"dialogen/internal/errors"
)

// MergeAndGroup loads every *.jsonl dataset in dir and buckets the
// conversations by scenario category. Files are visited in sorted name order
// so grouping is stable across runs. Lines that fail to decode are skipped
// with a warning rather than failing the whole merge.
func MergeAndGroup(dir string) (*conversation.Grouped, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return nil, errors.WithCode(err, errors.CodeStorage, "glob jsonl files")
	}
	sort.Strings(paths)

	logger := internal.DefaultLogger
	logger.Info("found %d jsonl files in %s", len(paths), dir)

	grouped := conversation.NewGrouped()
	for _, path := range paths {
		n, err := loadFile(path, grouped)
		if err != nil {
			return nil, err
		}
		logger.Info("  - %s: %d records", filepath.Base(path), n)
	}
	return grouped, nil
}

func loadFile(path string, grouped *conversation.Grouped) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.WithCode(err, errors.CodeStorage, "open dataset file")
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record dataset.ConversationRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			internal.DefaultLogger.Warn("skipping malformed line in %s: %v", filepath.Base(path), err)
			continue
		}
		grouped.Add(record.ScenarioType(), record.Conversation)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.WithCode(err, errors.CodeStorage, "read dataset file")
	}
	return count, nil
}
