package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/store/sqlite"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

var (
	exportUser   string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump a user's work logs",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportUser, "user", "", "User ID (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv")
	_ = exportCmd.MarkFlagRequired("user")
}

type exportRow struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Date        string  `json:"date,omitempty"`
	StartDate   string  `json:"startDate,omitempty"`
	EndDate     string  `json:"endDate,omitempty"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Amount      float64 `json:"amount"`
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListEntries(context.Background(), exportUser)
	if err != nil {
		return err
	}

	rows := make([]exportRow, len(entries))
	for i, e := range entries {
		rows[i] = toExportRow(e)
	}

	switch exportFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "csv":
		w := csv.NewWriter(os.Stdout)
		_ = w.Write([]string{"id", "type", "date", "start_date", "end_date", "description", "duration", "amount"})
		for _, r := range rows {
			_ = w.Write([]string{
				r.ID, r.Type, r.Date, r.StartDate, r.EndDate, r.Description,
				fmt.Sprintf("%g", r.Duration), fmt.Sprintf("%.2f", r.Amount),
			})
		}
		w.Flush()
		return w.Error()
	default:
		return fmt.Errorf("unknown format %q", exportFormat)
	}
}

func toExportRow(e worklog.Entry) exportRow {
	row := exportRow{
		ID:          e.ID,
		Type:        string(e.Type),
		Description: e.Description,
		Duration:    e.Computed.Duration.Float64(),
		Amount:      e.Computed.Amount.Round2().Float64(),
	}
	if e.Particular != nil {
		row.Date = e.Particular.Date.String()
	}
	if e.Tutorial != nil {
		row.StartDate = e.Tutorial.StartDate.String()
		row.EndDate = e.Tutorial.EndDate.String()
	}
	return row
}
