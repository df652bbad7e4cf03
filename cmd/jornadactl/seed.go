package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/factory"
	"github.com/hugovelez16/Vesotel-Gestor-Jornada-sub000/store/sqlite"
)

var (
	seedUser      string
	seedRatesFile string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a user's rate settings",
	Long: `Seed writes rate settings for a user. Without --rates the customary
defaults are used (coordination 10, night 30, base rates 0). The
calculator never falls back to these defaults on its own; seeding is
the one place they come from.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedUser, "user", "", "User ID (required)")
	seedCmd.Flags().StringVar(&seedRatesFile, "rates", "", "JSON file with rate values")
	_ = seedCmd.MarkFlagRequired("user")
}

func runSeed(cmd *cobra.Command, args []string) error {
	rates := factory.DefaultRates()
	if seedRatesFile != "" {
		data, err := os.ReadFile(seedRatesFile)
		if err != nil {
			return err
		}
		rates, err = factory.ParseRates(data)
		if err != nil {
			return err
		}
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveRates(context.Background(), seedUser, rates); err != nil {
		return err
	}

	fmt.Printf("seeded rates for %s: hourly %s, daily %s, coordination %s, night %s, gross %v\n",
		seedUser,
		rates.HourlyRate.String(), rates.DailyRate.String(),
		rates.CoordinationRate.String(), rates.NightRate.String(),
		rates.IsGross,
	)
	return nil
}
