package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"dialogen/app"
)

// WriteReportXLSX renders a batch report as a workbook, one summary sheet and
// one sheet per distribution. Distribution rows are sorted by count descending
// then key so the workbook is stable for identical input.
func WriteReportXLSX(path string, report *app.Report) error {
	f := excelize.NewFile()

	sheet := "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	summaryRows := [][]interface{}{
		{"total_conversations", report.Summary.TotalConversations},
		{"generated_at", report.Summary.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"model", report.Summary.Config.Model},
		{"temperature", report.Summary.Config.Temperature},
		{"avg_conversation_length", report.Statistics.ConversationLength.Average},
		{"min_conversation_length", report.Statistics.ConversationLength.Min},
		{"max_conversation_length", report.Statistics.ConversationLength.Max},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	distributions := []struct {
		name string
		data map[string]int
	}{
		{"Occupations", report.Statistics.Occupations},
		{"Scenarios", report.Statistics.Scenarios},
		{"PersonaPresets", report.Statistics.PersonaPresets},
	}
	for _, dist := range distributions {
		if err := writeDistribution(f, dist.name, dist.data); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func writeDistribution(f *excelize.File, sheet string, data map[string]int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(data))
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	header := []interface{}{"value", "count"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{e.key, e.count}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
