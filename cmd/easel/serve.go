package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/internal/presentation/tui"
	httpAdapter "github.com/aretw0/easel/pkg/adapters/http"
	"github.com/aretw0/easel/pkg/adapters/process"
	"github.com/aretw0/easel/pkg/extraction"
	"github.com/aretw0/easel/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Starts the Easel engine in server mode, exposing the layout API as JSON over HTTP with an SSE event stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		extractorsPath, _ := cmd.Flags().GetString("extractors")

		opts := runOptions(cmd)
		logger := cli.CreateLogger(opts.Debug)

		metrics := observability.NewMetrics()
		opts.EventSink = metrics.HandleEvent

		engine, err := cli.CreateEngine(opts, logger)
		if err != nil {
			fmt.Printf("Error initializing easel: %v\n", err)
			os.Exit(1)
		}

		pipeline, stopPipeline, err := createPipeline(extractorsPath, cmd.Flags().Changed("extractors"), opts.RepoPath, logger, metrics)
		if err != nil {
			fmt.Printf("Error loading extractors: %v\n", err)
			os.Exit(1)
		}
		defer stopPipeline()

		handlerOpts := []httpAdapter.ServerOption{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(metrics.Handler()),
		}
		if pipeline != nil {
			handlerOpts = append(handlerOpts, httpAdapter.WithExtractionPipeline(pipeline))
		}
		handler := httpAdapter.NewHandler(engine.Manager(), handlerOpts...)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			tui.PrintBanner(easel.Version)
			fmt.Printf("Starting Easel Server on %s\n", srv.Addr)
			fmt.Printf("Serving workspaces from: %s\n", opts.RepoPath)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Easel Server stopped gracefully")
		}
	},
}

// createPipeline builds the background extraction pipeline from an extractor
// definition file. A missing file at the default path means extraction stays
// disabled; an explicitly requested file must exist. The returned stop
// function cancels the worker and waits for it.
func createPipeline(path string, explicit bool, baseDir string, logger *slog.Logger, metrics *observability.Metrics) (*extraction.Pipeline, func(), error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	configs, err := process.LoadExtractors(path)
	if err != nil {
		return nil, func() {}, err
	}

	registry := extraction.NewRegistry()
	runner := process.NewRunner(
		process.WithRegistry(configs),
		process.WithBaseDir(baseDir),
	)
	runner.RegisterAll(registry)

	var pipeline *extraction.Pipeline
	pipeline = extraction.NewPipeline(registry,
		extraction.WithPipelineLogger(logger),
		extraction.WithStatusSink(func(extraction.StatusDTO) {
			counts := make(map[string]int)
			for status, n := range pipeline.StatusCounts() {
				counts[string(status)] = n
			}
			metrics.SetExtractionStatuses(counts)
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	pipeline.Start(ctx)

	logger.Info("Extraction pipeline started", "extractors", path, "configured", len(configs))
	return pipeline, func() {
		cancel()
		pipeline.Wait()
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("extractors", "extractors.yaml", "Extractor definition file for the preview pipeline")
}
