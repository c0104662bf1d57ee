package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel/pkg/adapters/file"
)

var workspaceCmd = &cobra.Command{
	Use:   "workspace",
	Short: "Manage persisted workspace snapshots",
	Long:  `List, inspect, and remove workspace snapshots stored in .easel/workspaces.`,
}

var workspaceLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all persisted workspaces",
	Run: func(cmd *cobra.Command, args []string) {
		store := getSnapshotStore(cmd)
		workspaces, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing workspaces: %v\n", err)
			os.Exit(1)
		}

		if len(workspaces) == 0 {
			fmt.Println("No persisted workspaces found.")
			return
		}

		fmt.Println("Persisted Workspaces:")
		for _, w := range workspaces {
			fmt.Println("- " + w)
		}
	},
}

var workspaceInspectCmd = &cobra.Command{
	Use:   "inspect <workspace-id>",
	Short: "Inspect the state of a workspace",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workspaceID := args[0]
		store := getSnapshotStore(cmd)

		state, err := store.Load(cmd.Context(), workspaceID)
		if err != nil {
			fmt.Printf("Error loading workspace '%s': %v\n", workspaceID, err)
			os.Exit(1)
		}

		// Pretty print JSON
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(data))
	},
}

var workspaceRmCmd = &cobra.Command{
	Use:   "rm <workspace-id>...",
	Short: "Remove one or more workspace snapshots",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getSnapshotStore(cmd)
		hasError := false

		for _, workspaceID := range args {
			if err := store.Delete(cmd.Context(), workspaceID); err != nil {
				fmt.Printf("Error removing '%s': %v\n", workspaceID, err)
				hasError = true
			} else {
				fmt.Printf("Removed workspace '%s'\n", workspaceID)
			}
		}

		if hasError {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceLsCmd)
	workspaceCmd.AddCommand(workspaceInspectCmd)
	workspaceCmd.AddCommand(workspaceRmCmd)
}

func getSnapshotStore(cmd *cobra.Command) *file.Store {
	storePath, _ := cmd.Flags().GetString("store-path")
	if storePath == "" {
		projectDir, _ := cmd.Flags().GetString("dir")
		if projectDir == "" {
			projectDir = "."
		}
		storePath = filepath.Join(projectDir, ".easel", "workspaces")
	}
	return file.New(storePath)
}
