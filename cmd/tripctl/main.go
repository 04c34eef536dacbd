package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "tripctl",
		Short: "CLI client for the trip planner REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Trip planner base URL")

	// generate subcommand
	var tripType, start, end string
	var destinations, interests []string
	var budget int
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a day-by-day itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(destinations) == 0 {
				return fmt.Errorf("--destinations required")
			}
			payload := map[string]interface{}{
				"tripType":     tripType,
				"destinations": destinations,
				"startDate":    start,
				"endDate":      end,
				"budget":       budget,
				"interests":    interests,
			}
			return runPost(apiFlag, "/api/itinerary/generate", payload, os.Stdout)
		},
	}
	generateCmd.Flags().StringVarP(&tripType, "type", "t", "weekend", "Trip type (weekend, multi-city)")
	generateCmd.Flags().StringSliceVarP(&destinations, "destinations", "d", nil, "Destination cities (required)")
	generateCmd.Flags().StringVarP(&start, "start", "s", "", "Start date (YYYY-MM-DD)")
	generateCmd.Flags().StringVarP(&end, "end", "e", "", "End date (YYYY-MM-DD)")
	generateCmd.Flags().IntVarP(&budget, "budget", "b", 1000, "Budget in USD")
	generateCmd.Flags().StringSliceVarP(&interests, "interests", "i", nil, "Interests")
	_ = generateCmd.MarkFlagRequired("destinations")
	rootCmd.AddCommand(generateCmd)

	// rates subcommand
	ratesCmd := &cobra.Command{
		Use:   "rates",
		Short: "Fetch the current exchange-rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(apiFlag, "/api/exchange-rates", os.Stdout)
		},
	}
	rootCmd.AddCommand(ratesCmd)

	// weather subcommand
	var wDest []string
	var wStart, wEnd string
	weatherCmd := &cobra.Command{
		Use:   "weather",
		Short: "Fetch the trip weather forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(wDest) == 0 {
				return fmt.Errorf("--destinations required")
			}
			payload := map[string]interface{}{
				"destinations": wDest,
				"startDate":    wStart,
				"endDate":      wEnd,
			}
			return runPost(apiFlag, "/api/weather-forecast", payload, os.Stdout)
		},
	}
	weatherCmd.Flags().StringSliceVarP(&wDest, "destinations", "d", nil, "Destination cities (required)")
	weatherCmd.Flags().StringVarP(&wStart, "start", "s", "", "Start date (YYYY-MM-DD)")
	weatherCmd.Flags().StringVarP(&wEnd, "end", "e", "", "End date (YYYY-MM-DD)")
	_ = weatherCmd.MarkFlagRequired("destinations")
	rootCmd.AddCommand(weatherCmd)

	// health subcommand
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(apiFlag, "/api/health", os.Stdout)
		},
	}
	rootCmd.AddCommand(healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
