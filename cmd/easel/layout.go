package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/cli"
	"github.com/aretw0/easel/internal/presentation/canvas"
	"github.com/aretw0/easel/internal/presentation/tui"
	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/domain"
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout <workspace-id>",
	Short: "Compute and print the layout of a workspace",
	Long:  `Runs one layout pass for the given workspace and prints the resulting document positions. With --file, the definition is read from a YAML file instead of the repository.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workspaceID := args[0]
		active, _ := cmd.Flags().GetString("active")
		format, _ := cmd.Flags().GetString("format")
		file, _ := cmd.Flags().GetString("file")

		opts := runOptions(cmd)
		engine, err := createLayoutEngine(opts, file)
		if err != nil {
			fmt.Printf("Error initializing easel: %v\n", err)
			os.Exit(1)
		}

		ctx := cmd.Context()
		results, mode, err := engine.Layout(ctx, workspaceID, domain.DocumentCaddyID(active))
		if err != nil {
			fmt.Printf("Error computing layout: %v\n", err)
			os.Exit(1)
		}

		switch format {
		case "table":
			runner := easel.NewRunner()
			runner.Output = os.Stdout
			runner.Renderer = tui.NewRenderer()
			if err := runner.PrintLayout(mode, results); err != nil {
				fmt.Printf("Error printing layout: %v\n", err)
				os.Exit(1)
			}
		case "json":
			payload := struct {
				WorkspaceID string                        `json:"workspace_id"`
				Mode        string                        `json:"mode"`
				Results     []domain.DocumentLayoutResult `json:"results"`
			}{workspaceID, mode.String(), results}

			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				fmt.Printf("Error marshaling layout: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		case "sketch":
			ws, err := engine.Workspace(ctx, workspaceID)
			if err != nil {
				fmt.Printf("Error loading workspace: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(canvas.Sketch(results, ws.Size, 72, 20))
		default:
			fmt.Printf("Unknown format: %s. Supported: table, json, sketch\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().String("active", "", "Document ID to treat as active for this pass")
	layoutCmd.Flags().StringP("format", "f", "table", "Output format: table, json or sketch")
	layoutCmd.Flags().String("file", "", "Read the workspace definition from a YAML file")
}

// yamlWorkspace is the on-disk shape accepted by --file. The keys mirror the
// loam frontmatter schema.
type yamlWorkspace struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Mode      string  `yaml:"mode"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Documents []struct {
		ID     string  `yaml:"id"`
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
		Active bool    `yaml:"active"`
		ZIndex int     `yaml:"z_index"`
	} `yaml:"documents"`
}

// createLayoutEngine builds the engine for one layout pass. Without a file
// the repository loader is used; with one, the definition comes from YAML.
func createLayoutEngine(opts cli.RunOptions, file string) (*easel.Engine, error) {
	if file == "" {
		return cli.CreateEngine(opts, cli.CreateLogger(opts.Debug))
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var def yamlWorkspace
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse workspace file: %w", err)
	}
	if def.ID == "" {
		return nil, fmt.Errorf("workspace file is missing an id")
	}

	state := domain.NewWorkspaceState(def.ID)
	state.Name = def.Name
	if def.Mode != "" {
		state.Mode = def.Mode
	}
	if def.Width > 0 && def.Height > 0 {
		state.Size = domain.NewDimensions(def.Width, def.Height)
	}
	for _, d := range def.Documents {
		state.Documents = append(state.Documents, domain.DocumentLayoutInfo{
			ID:                domain.DocumentCaddyID(d.ID),
			CurrentPosition:   domain.NewPosition(d.X, d.Y),
			CurrentDimensions: domain.NewDimensions(d.Width, d.Height),
			IsActive:          d.Active,
			ZIndex:            d.ZIndex,
		})
	}

	loader, err := memory.NewFromWorkspaces(state)
	if err != nil {
		return nil, err
	}

	return easel.New("", easel.WithLoader(loader), easel.WithLogger(cli.CreateLogger(opts.Debug)))
}
