package main

import (
	"fmt"
	"os"

	"github.com/aretw0/loam"
	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [workspace-id]",
	Short: "Check workspace definitions for consistency",
	Long:  `Scans the repository and reports unknown layout modes, negative sizes and duplicate document IDs. With an argument, checks a single workspace.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("dir")
		if err := runValidate(dir, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Workspace definitions are valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(dir string, args []string) error {
	repo, err := loam.Init(dir,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}

	if len(args) > 0 {
		return validator.ValidateWorkspace(repo, args[0])
	}

	return validator.ValidateRepository(repo)
}
