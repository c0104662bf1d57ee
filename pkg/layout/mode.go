package layout

import (
	"fmt"

	"github.com/aretw0/easel/pkg/domain"
)

// ModeType is the closed enumeration of layout policies.
type ModeType string

const (
	ModeStacked  ModeType = "stacked"
	ModeGrid     ModeType = "grid"
	ModeFreeform ModeType = "freeform"
)

// strategies is the static type→strategy table. It is built once at package
// initialization and never mutated afterward; strategies are stateless so a
// single instance serves all callers.
var strategies = map[ModeType]Strategy{
	ModeStacked:  StackedStrategy{},
	ModeGrid:     GridStrategy{},
	ModeFreeform: FreeformStrategy{},
}

// Mode is an immutable value wrapping exactly one layout policy.
// Two modes of the same type are equal regardless of construction path.
type Mode struct {
	t ModeType
}

// Stacked returns the single-document layout mode.
func Stacked() Mode { return Mode{t: ModeStacked} }

// Grid returns the wrapping-grid layout mode.
func Grid() Mode { return Mode{t: ModeGrid} }

// Freeform returns the user-positioned layout mode.
func Freeform() Mode { return Mode{t: ModeFreeform} }

// Modes returns every mode, in declaration order.
func Modes() []Mode {
	return []Mode{Stacked(), Grid(), Freeform()}
}

// ParseMode parses one of "stacked", "grid" or "freeform" (case-sensitive).
// Any other token fails with domain.ErrInvalidLayoutMode so callers can
// validate externally supplied or persisted strings before trusting them.
func ParseMode(text string) (Mode, error) {
	switch ModeType(text) {
	case ModeStacked, ModeGrid, ModeFreeform:
		return Mode{t: ModeType(text)}, nil
	default:
		return Mode{}, fmt.Errorf("%w: %q", domain.ErrInvalidLayoutMode, text)
	}
}

// Type returns the wrapped mode type.
func (m Mode) Type() ModeType { return m.t }

// String returns the canonical token; ParseMode(m.String()) round-trips.
func (m Mode) String() string { return string(m.t) }

// Equal reports structural equality on the wrapped type.
func (m Mode) Equal(other Mode) bool { return m.t == other.t }

// Strategy returns the strategy bound to this mode. A missing entry means a
// mode type was added without registering a strategy; that is an internal
// invariant violation, not a recoverable condition, so it panics.
func (m Mode) Strategy() Strategy {
	s, ok := strategies[m.t]
	if !ok {
		panic(fmt.Sprintf("layout: no strategy registered for mode %q", m.t))
	}
	return s
}

// CalculateLayout forwards to the bound strategy.
func (m Mode) CalculateLayout(docs []domain.DocumentLayoutInfo, workspace domain.Dimensions, activeID domain.DocumentCaddyID) []domain.DocumentLayoutResult {
	return m.Strategy().Calculate(docs, workspace, activeID)
}

// SupportsResizing forwards to the bound strategy.
func (m Mode) SupportsResizing() bool { return m.Strategy().SupportsResizing() }

// SupportsDragging forwards to the bound strategy.
func (m Mode) SupportsDragging() bool { return m.Strategy().SupportsDragging() }

// CSSClassName forwards to the bound strategy.
func (m Mode) CSSClassName() string { return m.Strategy().CSSClassName() }

// ShouldAutoSwitchToFreeform reports whether a manual gesture should cause
// the caller to commit a transition to Freeform. It is advisory only: the
// workspace store owns the committed mode and decides whether to apply it.
// A mode that is already Freeform never advises a switch.
func (m Mode) ShouldAutoSwitchToFreeform(action UserAction) bool {
	if m.t == ModeFreeform {
		return false
	}
	return action == ActionDrag || action == ActionResize
}
