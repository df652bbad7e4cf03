package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/store/sqlite"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/worklog"
)

var (
	summaryUser  string
	summaryMonth string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print earnings statistics for a user",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryUser, "user", "", "User ID (required)")
	summaryCmd.Flags().StringVar(&summaryMonth, "month", "", "Restrict to one month (YYYY-MM)")
	_ = summaryCmd.MarkFlagRequired("user")
}

func runSummary(cmd *cobra.Command, args []string) error {
	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.ListEntries(context.Background(), summaryUser)
	if err != nil {
		return err
	}

	if summaryMonth != "" {
		period, ok := worklog.MonthPeriod(summaryMonth)
		if !ok {
			return fmt.Errorf("invalid month %q, expected YYYY-MM", summaryMonth)
		}
		printStats(summaryMonth, worklog.Aggregate(entries, period))
		return nil
	}

	printStats("all time", worklog.Aggregate(entries, worklog.AllTime()))
	for _, b := range worklog.BucketByMonth(entries) {
		printStats(b.Month, b.Stats)
	}
	return nil
}

func printStats(label string, s worklog.Stats) {
	fmt.Printf("%-10s  earnings %10s  hours %7s  tutorial days %3d  days worked %3d\n",
		label,
		s.Earnings.Round2().Value.StringFixed(2),
		s.ParticularHours.Value.String(),
		s.TutorialDays,
		s.DaysWorked,
	)
}
