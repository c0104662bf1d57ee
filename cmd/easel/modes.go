package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/presentation/tui"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the supported layout modes",
	Run: func(cmd *cobra.Command, args []string) {
		runner := easel.NewRunner()
		runner.Output = os.Stdout
		runner.Renderer = tui.NewRenderer()
		if err := runner.PrintModes(); err != nil {
			fmt.Printf("Error printing modes: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
