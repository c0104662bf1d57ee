/*
Package easel is a layout engine for multi-document workspaces. It computes
where each open document sits on a canvas, in one of three modes: stacked,
grid, or freeform.

The engine is pure in its core: a layout pass is a function of the document
list, the workspace size, and the mode. Persistence, transport, and locking
live in adapters, so Easel embeds cleanly in an HTTP server, a CLI, or an
agent runtime.

# Concept

Every workspace carries a list of open documents and a layout mode. Stacked
shows one active document at a time; grid tiles everything into fixed cells;
freeform honors manual positions. Dragging or resizing a document in a mode
that does not allow it switches the workspace to freeform first, so a user
gesture never silently fails.

# Usage

Initialize the engine with a Loam repository of workspace definitions, or
inject a custom loader and store.

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/easel"
		"github.com/aretw0/easel/pkg/domain"
	)

	func main() {
		eng, err := easel.New("./my-workspaces")
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Open a document and compute its placement.
		_, err = eng.Open(ctx, "notes", domain.DocumentLayoutInfo{ID: "doc-1", IsActive: true})
		if err != nil {
			log.Fatal(err)
		}

		results, mode, err := eng.Layout(ctx, "notes", "")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("mode:", mode)
		for _, r := range results {
			fmt.Printf("%s at (%g, %g) %gx%g\n",
				r.ID, r.Position.X, r.Position.Y, r.Dimensions.Width, r.Dimensions.Height)
		}
	}
*/
package easel
