package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	tripsCmd := &cobra.Command{Use: "trips", Short: "Saved trip operations"}
	tripsCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runGet(apiFlag, fmt.Sprintf("/api/users/%s/trips", userFlag), os.Stdout)
		},
	}
	tripsCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get TRIP_ID",
		Short: "Get a saved trip by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runGet(apiFlag, fmt.Sprintf("/api/users/%s/trips/%s", userFlag, args[0]), os.Stdout)
		},
	}
	tripsCmd.AddCommand(getCmd)

	// save
	var file string
	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Save a trip from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var payload map[string]interface{}
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("trip must be a JSON object: %w", err)
			}
			return runPost(apiFlag, fmt.Sprintf("/api/users/%s/trips", userFlag), payload, os.Stdout)
		},
	}
	saveCmd.Flags().StringVarP(&file, "file", "f", "", "Path to trip JSON (required)")
	_ = saveCmd.MarkFlagRequired("file")
	tripsCmd.AddCommand(saveCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete TRIP_ID",
		Short: "Delete a saved trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runDelete(apiFlag, fmt.Sprintf("/api/users/%s/trips/%s", userFlag, args[0]), os.Stdout)
		},
	}
	tripsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(tripsCmd)
}
