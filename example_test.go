package easel_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/domain"
)

// ExampleNew_memory demonstrates how to use the Engine with an in-memory
// workspace definition. This is useful for testing, embedded scenarios, or
// when you don't want to rely on the file system.
func ExampleNew_memory() {
	// 1. Define the workspace using NewFromWorkspaces for clean, type-safe construction.
	desk := domain.NewWorkspaceState("desk")
	desk.Size = domain.NewDimensions(1200, 900)
	desk.Documents = []domain.DocumentLayoutInfo{
		{ID: "notes", IsActive: true},
		{ID: "draft"},
	}

	loader, err := memory.NewFromWorkspaces(desk)
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the Engine with the custom loader.
	eng, err := easel.New("", easel.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Compute the stacked layout. The active document fills the center.
	ctx := context.Background()
	results, mode, err := eng.Layout(ctx, "desk", "")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("mode:", mode)
	for _, r := range results {
		fmt.Printf("%s visible=%t size=%gx%g\n", r.ID, r.IsVisible, r.Dimensions.Width, r.Dimensions.Height)
	}

	// Output:
	// mode: stacked
	// notes visible=true size=1000x700
	// draft visible=false size=1x1
}
