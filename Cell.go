package main

import (
	"errors"
	"sheetCalc/contracts"
)

// Cell holds one of three content variants and its adjacency in the
// dependency graph. Edges are keyed by position and resolved through the
// owning sheet, so no dangling references can occur.
type Cell struct {
	sheet    *Sheet
	pos      contracts.Position
	content  cellContent
	incoming map[contracts.Position]struct{}
	outgoing map[contracts.Position]struct{}
}

type cellContent interface {
	getValue(sheet *Sheet) contracts.Value
	getText() string
	referencedCells() []contracts.Position
	invalidateCache()
}

type emptyContent struct{}

func (emptyContent) getValue(*Sheet) contracts.Value { return "" }
func (emptyContent) getText() string { return "" }
func (emptyContent) referencedCells() []contracts.Position { return nil }
func (emptyContent) invalidateCache() {}

type textContent struct {
	text string
}

func (c textContent) getValue(*Sheet) contracts.Value {
	if c.text[0] == contracts.EscapeSign {
		return c.text[1:]
	}
	return c.text
}

func (c textContent) getText() string { return c.text }
func (c textContent) referencedCells() []contracts.Position { return nil }
func (c textContent) invalidateCache() {}

type formulaContent struct {
	formula contracts.Formula
	cache   contracts.Value
}

func (c *formulaContent) getValue(sheet *Sheet) contracts.Value {
	if c.cache == nil {
		value, err := c.formula.Evaluate(sheet.resolveCellValue)
		if err != nil {
			var formulaErr contracts.FormulaError
			if !errors.As(err, &formulaErr) {
				panic(err)
			}
			c.cache = formulaErr
		} else {
			c.cache = value
		}
	}
	return c.cache
}

func (c *formulaContent) getText() string {
	return string(contracts.FormulaSign) + c.formula.Expression()
}

func (c *formulaContent) referencedCells() []contracts.Position {
	return c.formula.ReferencedCells()
}

func (c *formulaContent) invalidateCache() { c.cache = nil }

func NewCell(sheet *Sheet, pos contracts.Position) *Cell {
	return &Cell{
		sheet:    sheet,
		pos:      pos,
		content:  emptyContent{},
		incoming: map[contracts.Position]struct{}{},
		outgoing: map[contracts.Position]struct{}{},
	}
}

// Set parses text into a candidate content variant and installs it. The cell
// keeps its previous content when parsing fails or when the candidate would
// close a dependency cycle.
func (c *Cell) Set(text string) error {
	candidate, err := parseCellContent(text)
	if err != nil {
		return err
	}

	references := dedupValidPositions(candidate.referencedCells())

	if c.wouldCreateCircularDependency(references) {
		return contracts.CircularDependencyError
	}

	c.rewireOutgoing(references)
	c.content = candidate
	c.invalidateDependentCaches(map[*Cell]struct{}{})

	return nil
}

func parseCellContent(text string) (cellContent, error) {
	if text == "" {
		return emptyContent{}, nil
	}

	if len(text) >= 2 && text[0] == contracts.FormulaSign {
		formula, err := ParseFormula(text[1:])
		if err != nil {
			return nil, err
		}
		return &formulaContent{formula: formula}, nil
	}

	return textContent{text: text}, nil
}

// dedupValidPositions keeps the valid references only, first occurrence wins.
func dedupValidPositions(references []contracts.Position) []contracts.Position {
	positions := make([]contracts.Position, 0, len(references))
	seen := make(map[contracts.Position]struct{}, len(references))

	for _, pos := range references {
		if !pos.IsValid() {
			continue
		}
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		positions = append(positions, pos)
	}

	return positions
}

// wouldCreateCircularDependency walks the incoming edges from this cell to
// every ancestor. Installing content that references an ancestor (or this
// cell itself) would close a cycle.
func (c *Cell) wouldCreateCircularDependency(references []contracts.Position) bool {
	if len(references) == 0 {
		return false
	}

	referenced := make(map[*Cell]struct{}, len(references))
	for _, pos := range references {
		// A missing cell is created empty by the edit itself, it cannot be an
		// ancestor yet.
		if cell := c.sheet.cellAt(pos); cell != nil {
			referenced[cell] = struct{}{}
		}
	}

	checked := map[*Cell]struct{}{}
	unchecked := []*Cell{c}

	for len(unchecked) > 0 {
		cell := unchecked[len(unchecked)-1]
		unchecked = unchecked[:len(unchecked)-1]

		if _, ok := checked[cell]; ok {
			continue
		}
		checked[cell] = struct{}{}

		if _, ok := referenced[cell]; ok {
			return true
		}

		for pos := range cell.incoming {
			incoming := c.sheet.cellAt(pos)
			if _, ok := checked[incoming]; !ok {
				unchecked = append(unchecked, incoming)
			}
		}
	}

	return false
}

func (c *Cell) rewireOutgoing(references []contracts.Position) {
	for pos := range c.outgoing {
		delete(c.sheet.cellAt(pos).incoming, c.pos)
	}
	c.outgoing = make(map[contracts.Position]struct{}, len(references))

	for _, pos := range references {
		outgoing := c.sheet.cellAt(pos)
		if outgoing == nil {
			outgoing = c.sheet.createEmptyCell(pos)
		}
		c.outgoing[pos] = struct{}{}
		outgoing.incoming[c.pos] = struct{}{}
	}
}

// invalidateDependentCaches resets this cell's cache and, transitively, the
// cache of every cell whose value depends on it.
func (c *Cell) invalidateDependentCaches(visited map[*Cell]struct{}) {
	if _, ok := visited[c]; ok {
		return
	}
	visited[c] = struct{}{}

	c.content.invalidateCache()
	for pos := range c.incoming {
		c.sheet.cellAt(pos).invalidateDependentCaches(visited)
	}
}

// Clear resets the cell to empty through the regular edit path, so dependent
// caches are invalidated and the graph edges stay consistent.
func (c *Cell) Clear() {
	_ = c.Set("")
}

func (c *Cell) GetValue() contracts.Value {
	return c.content.getValue(c.sheet)
}

func (c *Cell) GetText() string {
	return c.content.getText()
}

func (c *Cell) GetReferencedCells() []contracts.Position {
	return dedupValidPositions(c.content.referencedCells())
}

func (c *Cell) IsReferenced() bool {
	return len(c.incoming) > 0
}
