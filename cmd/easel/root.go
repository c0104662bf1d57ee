package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "Easel is a layout engine for multi-document workspaces",
	Long:  `Easel computes document positions for stacked, grid and freeform layouts from simple workspace definitions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the workspace definitions")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().String("store", "memory", "Snapshot backend: memory, file or redis")
	rootCmd.PersistentFlags().String("store-path", "", "Override the file store location")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis host:port (for --store redis)")
}

// runOptions collects the persistent flags shared by most commands.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	dir, _ := cmd.Flags().GetString("dir")
	debug, _ := cmd.Flags().GetBool("debug")
	store, _ := cmd.Flags().GetString("store")
	storePath, _ := cmd.Flags().GetString("store-path")
	redisAddr, _ := cmd.Flags().GetString("redis-addr")

	return cli.RunOptions{
		RepoPath:  dir,
		Debug:     debug,
		Store:     store,
		StorePath: storePath,
		RedisAddr: redisAddr,
	}
}
