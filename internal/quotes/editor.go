package quotes

import (
	"github.com/google/uuid"

	"github.com/motoshophq/motoshop-backend/internal/catalog"
	"github.com/motoshophq/motoshop-backend/pkg/enums"
	"github.com/motoshophq/motoshop-backend/pkg/pricing"
)

// EditorLine is one in-progress line of a quote being built. Key identifies
// the line for edits independent of its position. LineTotalCents is derived
// and refreshed on every mutation.
type EditorLine struct {
	Key            uuid.UUID         `json:"key"`
	Kind           enums.CatalogKind `json:"kind"`
	ItemID         *uuid.UUID        `json:"item_id,omitempty"`
	Description    string            `json:"description"`
	Quantity       int               `json:"quantity"`
	UnitPriceCents int               `json:"unit_price_cents"`
	LineTotalCents int               `json:"line_total_cents"`
}

// LinePatch carries the optional fields of a line edit. Out-of-range values
// are coerced back to the previous value rather than rejected, matching how
// the quote editor treats keyboard input.
type LinePatch struct {
	Description    *string `json:"description,omitempty"`
	Quantity       *int    `json:"quantity,omitempty"`
	UnitPriceCents *int    `json:"unit_price_cents,omitempty"`
}

// Editor accumulates quote lines in memory before a save persists them.
type Editor struct {
	lines []EditorLine
}

// NewEditor returns an empty editor.
func NewEditor() *Editor {
	return &Editor{}
}

// NewEditorFromLines seeds the editor from previously saved lines, minting
// keys for lines that lack one and refreshing every derived total.
func NewEditorFromLines(lines []EditorLine) *Editor {
	e := &Editor{lines: make([]EditorLine, len(lines))}
	copy(e.lines, lines)
	for i := range e.lines {
		if e.lines[i].Key == uuid.Nil {
			e.lines[i].Key = uuid.New()
		}
		e.lines[i].LineTotalCents = pricing.LineTotal(e.lines[i].Quantity, e.lines[i].UnitPriceCents)
	}
	return e
}

// Lines returns a copy of the current lines in order.
func (e *Editor) Lines() []EditorLine {
	out := make([]EditorLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Len reports the number of lines.
func (e *Editor) Len() int {
	return len(e.lines)
}

// AddLine appends a blank custom line with quantity 1 and zero price and
// returns its key.
func (e *Editor) AddLine() uuid.UUID {
	key := uuid.New()
	e.lines = append(e.lines, EditorLine{
		Key:      key,
		Kind:     enums.CatalogKindCustom,
		Quantity: 1,
	})
	return key
}

// RemoveLine deletes the line with the given key. Unknown keys are ignored;
// the remaining lines keep their keys and order.
func (e *Editor) RemoveLine(key uuid.UUID) {
	i := e.indexOf(key)
	if i < 0 {
		return
	}
	e.lines = append(e.lines[:i], e.lines[i+1:]...)
}

// UpdateLine applies the patch to the line with the given key. Quantities
// below 1 and negative prices keep the line's previous value.
func (e *Editor) UpdateLine(key uuid.UUID, patch LinePatch) {
	i := e.indexOf(key)
	if i < 0 {
		return
	}
	line := &e.lines[i]

	if patch.Description != nil {
		line.Description = *patch.Description
	}
	if patch.Quantity != nil && *patch.Quantity >= 1 {
		line.Quantity = *patch.Quantity
	}
	if patch.UnitPriceCents != nil && *patch.UnitPriceCents >= 0 {
		line.UnitPriceCents = *patch.UnitPriceCents
	}

	line.LineTotalCents = pricing.LineTotal(line.Quantity, line.UnitPriceCents)
}

// ApplyTemplate points the line at a catalog entry. The template's label and
// price overwrite the line's description and unit price; quantity is kept.
func (e *Editor) ApplyTemplate(key uuid.UUID, template catalog.LineItemTemplate) {
	i := e.indexOf(key)
	if i < 0 {
		return
	}
	line := &e.lines[i]

	id := template.ID
	line.Kind = template.Kind
	line.ItemID = &id
	line.Description = template.Label
	line.UnitPriceCents = template.UnitPriceCents
	line.LineTotalCents = pricing.LineTotal(line.Quantity, line.UnitPriceCents)
}

// ClearTemplate detaches the line from its catalog entry. The last entered
// description and price stay in place.
func (e *Editor) ClearTemplate(key uuid.UUID) {
	i := e.indexOf(key)
	if i < 0 {
		return
	}
	line := &e.lines[i]
	line.Kind = enums.CatalogKindCustom
	line.ItemID = nil
}

// Totals computes subtotal, tax, and total over the current lines.
func (e *Editor) Totals() pricing.Totals {
	lineTotals := make([]int, 0, len(e.lines))
	for i := range e.lines {
		lineTotals = append(lineTotals, e.lines[i].LineTotalCents)
	}
	return pricing.Compute(lineTotals)
}

func (e *Editor) indexOf(key uuid.UUID) int {
	for i := range e.lines {
		if e.lines[i].Key == key {
			return i
		}
	}
	return -1
}
