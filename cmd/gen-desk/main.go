package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/loam"

	loamAdapter "github.com/aretw0/easel/pkg/adapters/loam"
)

func main() {
	targetDir := "examples/sample-desk"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample desk in: %s\n", targetDir)

	// Init Loam (No Versioning = pure file generation)
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	if err != nil {
		panic(err)
	}

	typedRepo := loam.NewTypedRepository[loamAdapter.WorkspaceMetadata](repo)
	ctx := context.TODO()

	// 1. Main desk: a grid workspace with three documents
	mainMeta := loamAdapter.WorkspaceMetadata{
		ID:     "main-desk",
		Name:   "Main Desk",
		Mode:   "grid",
		Width:  1280,
		Height: 800,
		Documents: []loamAdapter.DocumentMetadata{
			{ID: "notes", Active: true},
			{ID: "draft"},
			{ID: "references"},
		},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[loamAdapter.WorkspaceMetadata]{
		ID:      "main-desk",
		Content: "The main working surface. Documents flow into a grid.",
		Data:    mainMeta,
	})
	check(err)

	// 2. Reading desk: stacked mode focuses one document at a time
	readingMeta := loamAdapter.WorkspaceMetadata{
		ID:     "reading-desk",
		Name:   "Reading Desk",
		Mode:   "stacked",
		Width:  1024,
		Height: 768,
		Documents: []loamAdapter.DocumentMetadata{
			{ID: "paper", Active: true},
			{ID: "appendix"},
		},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[loamAdapter.WorkspaceMetadata]{
		ID:      "reading-desk",
		Content: "A focused surface. The active document fills the view.",
		Data:    readingMeta,
	})
	check(err)

	// 3. Scratch desk: freeform with stored positions
	scratchMeta := loamAdapter.WorkspaceMetadata{
		ID:     "scratch-desk",
		Name:   "Scratch Desk",
		Mode:   "freeform",
		Width:  1600,
		Height: 900,
		Documents: []loamAdapter.DocumentMetadata{
			{ID: "sketch", X: 40, Y: 60, Width: 500, Height: 400, ZIndex: 2},
			{ID: "palette", X: 620, Y: 120, Width: 300, Height: 500, ZIndex: 1},
		},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[loamAdapter.WorkspaceMetadata]{
		ID:      "scratch-desk",
		Content: "A freeform surface. Documents keep their stored positions.",
		Data:    scratchMeta,
	})
	check(err)

	fmt.Println("Done. Verify contents in", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
