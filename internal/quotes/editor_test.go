package quotes

import (
	"testing"

	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/internal/catalog"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func lineByKey(t *testing.T, e *Editor, key uuid.UUID) EditorLine {
	t.Helper()
	for _, line := range e.Lines() {
		if line.Key == key {
			return line
		}
	}
	t.Fatalf("line %s not found", key)
	return EditorLine{}
}

func TestEditorAddLineDefaults(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()

	lines := e.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	line := lineByKey(t, e, key)
	if line.Kind != enums.CatalogKindCustom {
		t.Fatalf("expected custom kind, got %s", line.Kind)
	}
	if line.Quantity != 1 || line.UnitPriceCents != 0 || line.LineTotalCents != 0 {
		t.Fatalf("unexpected defaults: %+v", line)
	}
}

func TestEditorUpdateLineRecomputesTotal(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()

	e.UpdateLine(key, LinePatch{
		Description:    strPtr("Front brake pads"),
		Quantity:       intPtr(2),
		UnitPriceCents: intPtr(4500),
	})

	if got := lineByKey(t, e, key).LineTotalCents; got != 9000 {
		t.Fatalf("expected line total 9000, got %d", got)
	}
}

func TestEditorCoercesInvalidQuantityAndPrice(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()
	e.UpdateLine(key, LinePatch{Quantity: intPtr(3), UnitPriceCents: intPtr(1000)})

	e.UpdateLine(key, LinePatch{Quantity: intPtr(0)})
	if got := lineByKey(t, e, key).Quantity; got != 3 {
		t.Fatalf("expected quantity retained at 3, got %d", got)
	}

	e.UpdateLine(key, LinePatch{Quantity: intPtr(-2)})
	if got := lineByKey(t, e, key).Quantity; got != 3 {
		t.Fatalf("expected quantity retained at 3, got %d", got)
	}

	e.UpdateLine(key, LinePatch{UnitPriceCents: intPtr(-100)})
	if got := lineByKey(t, e, key).UnitPriceCents; got != 1000 {
		t.Fatalf("expected price retained at 1000, got %d", got)
	}

	if got := lineByKey(t, e, key).LineTotalCents; got != 3000 {
		t.Fatalf("expected line total 3000, got %d", got)
	}
}

func TestEditorApplyTemplateOverwritesDescriptionAndPrice(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()
	e.UpdateLine(key, LinePatch{
		Description:    strPtr("hand-typed"),
		Quantity:       intPtr(4),
		UnitPriceCents: intPtr(999),
	})

	template := catalog.LineItemTemplate{
		ID:             uuid.New(),
		Kind:           enums.CatalogKindProduct,
		Label:          "Chain Kit",
		UnitPriceCents: 8900,
	}
	e.ApplyTemplate(key, template)

	line := lineByKey(t, e, key)
	if line.Description != "Chain Kit" {
		t.Fatalf("expected template label, got %q", line.Description)
	}
	if line.UnitPriceCents != 8900 {
		t.Fatalf("expected template price, got %d", line.UnitPriceCents)
	}
	if line.Quantity != 4 {
		t.Fatalf("expected quantity kept, got %d", line.Quantity)
	}
	if line.Kind != enums.CatalogKindProduct {
		t.Fatalf("expected product kind, got %s", line.Kind)
	}
	if line.ItemID == nil || *line.ItemID != template.ID {
		t.Fatalf("expected item id %s, got %v", template.ID, line.ItemID)
	}
	if line.LineTotalCents != 4*8900 {
		t.Fatalf("expected recomputed total, got %d", line.LineTotalCents)
	}
}

func TestEditorClearTemplateKeepsValues(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()
	e.ApplyTemplate(key, catalog.LineItemTemplate{
		ID:             uuid.New(),
		Kind:           enums.CatalogKindService,
		Label:          "Tire Change",
		UnitPriceCents: 3500,
	})

	e.ClearTemplate(key)

	line := lineByKey(t, e, key)
	if line.Kind != enums.CatalogKindCustom {
		t.Fatalf("expected custom kind, got %s", line.Kind)
	}
	if line.ItemID != nil {
		t.Fatalf("expected item id cleared, got %v", line.ItemID)
	}
	if line.Description != "Tire Change" || line.UnitPriceCents != 3500 {
		t.Fatalf("expected values retained, got %+v", line)
	}
}

func TestEditorRemoveLine(t *testing.T) {
	e := NewEditor()
	first := e.AddLine()
	e.UpdateLine(first, LinePatch{Description: strPtr("first")})
	second := e.AddLine()
	e.UpdateLine(second, LinePatch{Description: strPtr("second")})

	e.RemoveLine(first)

	lines := e.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Description != "second" || lines[0].Key != second {
		t.Fatalf("expected remaining line 'second' with its key intact, got %+v", lines[0])
	}

	// unknown keys are a no-op
	e.RemoveLine(uuid.New())
	e.RemoveLine(uuid.Nil)
	if e.Len() != 1 {
		t.Fatalf("expected unknown-key removals ignored")
	}
}

func TestEditorUpdateUnknownKeyIgnored(t *testing.T) {
	e := NewEditor()
	key := e.AddLine()
	e.UpdateLine(key, LinePatch{Quantity: intPtr(2), UnitPriceCents: intPtr(4500)})

	e.UpdateLine(uuid.New(), LinePatch{Quantity: intPtr(9)})

	if got := lineByKey(t, e, key).Quantity; got != 2 {
		t.Fatalf("expected other lines untouched, got quantity %d", got)
	}
}

func TestEditorTotals(t *testing.T) {
	e := NewEditor()
	a := e.AddLine()
	e.UpdateLine(a, LinePatch{Quantity: intPtr(2), UnitPriceCents: intPtr(4500)})
	b := e.AddLine()
	e.UpdateLine(b, LinePatch{Quantity: intPtr(1), UnitPriceCents: intPtr(105)})

	totals := e.Totals()
	if totals.SubtotalCents != 9105 {
		t.Fatalf("expected subtotal 9105, got %d", totals.SubtotalCents)
	}
	// 910.5 rounds up
	if totals.TaxCents != 911 {
		t.Fatalf("expected tax 911, got %d", totals.TaxCents)
	}
	if totals.TotalCents != 10016 {
		t.Fatalf("expected total 10016, got %d", totals.TotalCents)
	}
}

func TestEditorFromLinesRecomputesTotals(t *testing.T) {
	e := NewEditorFromLines([]EditorLine{
		{Kind: enums.CatalogKindCustom, Description: "Labor", Quantity: 2, UnitPriceCents: 5000, LineTotalCents: 1},
	})

	line := e.Lines()[0]
	if line.LineTotalCents != 10000 {
		t.Fatalf("expected stale total recomputed to 10000, got %d", line.LineTotalCents)
	}
	if line.Key == uuid.Nil {
		t.Fatal("expected a key minted for the seeded line")
	}
}
