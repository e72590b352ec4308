package contracts

import "errors"

var FormulaSyntaxError = errors.New("formula syntax error")

type FormulaErrorCategory int

const (
	FormulaErrorRef FormulaErrorCategory = iota
	FormulaErrorValue
	FormulaErrorDiv0
)

// FormulaError is a typed evaluation error. It is never returned from Sheet
// operations; a formula cell surfaces it as its value instead.
type FormulaError struct {
	Category FormulaErrorCategory
}

func (e FormulaError) Error() string {
	switch e.Category {
	case FormulaErrorRef:
		return "#REF!"
	case FormulaErrorValue:
		return "#VALUE!"
	case FormulaErrorDiv0:
		return "#ARITHM!"
	}
	return ""
}

// CellValueResolver returns the numeric value of a referenced cell, or a
// FormulaError when the reference cannot be resolved to a number.
type CellValueResolver func(pos Position) (float64, error)

type Formula interface {
	// Evaluate computes the formula. A returned error is always a FormulaError.
	Evaluate(resolver CellValueResolver) (float64, error)

	// ReferencedCells lists the positions appearing in the expression in source
	// order, duplicates and unresolvable references (PositionNone) included.
	ReferencedCells() []Position

	// Expression returns the canonical text of the formula, without the
	// leading "=".
	Expression() string
}

type FormulaParser interface {
	Parse(expression string) (Formula, error)
}
