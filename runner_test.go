package easel

import (
	"strings"
	"testing"

	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/layout"
)

func TestRunnerPrintLayout(t *testing.T) {
	var out strings.Builder
	r := NewRunner()
	r.Output = &out

	results := []domain.DocumentLayoutResult{
		{ID: "doc-1", Position: domain.NewPosition(100, 100), Dimensions: domain.NewDimensions(1000, 700), ZIndex: 10, IsVisible: true},
		{ID: "doc-2", IsVisible: false, Dimensions: domain.MinimumDimensions()},
	}

	if err := r.PrintLayout(layout.Stacked(), results); err != nil {
		t.Fatalf("PrintLayout failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "# Layout (stacked)") {
		t.Errorf("Expected heading, got:\n%s", got)
	}
	if !strings.Contains(got, "| doc-1 | (100, 100) | 1000 x 700 | 10 | yes |") {
		t.Errorf("Expected doc-1 row, got:\n%s", got)
	}
	if !strings.Contains(got, "| doc-2 |") {
		t.Errorf("Expected doc-2 row, got:\n%s", got)
	}
}

func TestRunnerPrintLayoutEmpty(t *testing.T) {
	var out strings.Builder
	r := NewRunner()
	r.Output = &out

	if err := r.PrintLayout(layout.Grid(), nil); err != nil {
		t.Fatalf("PrintLayout failed: %v", err)
	}
	if !strings.Contains(out.String(), "No open documents") {
		t.Errorf("Expected empty notice, got:\n%s", out.String())
	}
}

func TestRunnerRequiresOutput(t *testing.T) {
	r := NewRunner()
	if err := r.PrintLayout(layout.Stacked(), nil); err == nil {
		t.Error("Expected error when output writer is unset")
	}
	if err := r.PrintModes(); err == nil {
		t.Error("Expected error when output writer is unset")
	}
}

func TestRunnerRendererTransformsOutput(t *testing.T) {
	var out strings.Builder
	r := NewRunner()
	r.Output = &out
	r.Renderer = func(s string) (string, error) {
		return strings.ToUpper(s), nil
	}

	if err := r.PrintModes(); err != nil {
		t.Fatalf("PrintModes failed: %v", err)
	}
	if !strings.Contains(out.String(), "FREEFORM") {
		t.Errorf("Expected renderer to uppercase output, got:\n%s", out.String())
	}
}
