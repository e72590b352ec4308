package main

import (
	"sheetCalc/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func _failingResolver(t *testing.T) contracts.CellValueResolver {
	return func(pos contracts.Position) (float64, error) {
		t.Errorf("resolver called unexpectedly for %s", pos.String())
		return 0, nil
	}
}

func _valuesResolver(values map[contracts.Position]float64) contracts.CellValueResolver {
	return func(pos contracts.Position) (float64, error) {
		if !pos.IsValid() {
			return 0, contracts.FormulaError{Category: contracts.FormulaErrorRef}
		}
		return values[pos], nil
	}
}

func TestParseFormula(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		formula, err := ParseFormula("1+2*3")

		assert.NoError(t, err)
		assert.NotNil(t, formula)
	})

	t.Run("syntax_error", func(t *testing.T) {
		for _, expression := range []string{"", "1+", "(1", "1 2", "*3"} {
			_, err := ParseFormula(expression)
			assert.ErrorIs(t, err, contracts.FormulaSyntaxError, "expression: %q", expression)
		}
	})

	t.Run("unsupported_constructs", func(t *testing.T) {
		expressions := []string{
			`"text"`,
			"true",
			"A1 > B1",
			"A1 ? 1 : 2",
			"[1, 2]",
			"2 ** 3",
			"7 % 2",
			"FOO(A1)",
		}

		for _, expression := range expressions {
			_, err := ParseFormula(expression)
			assert.ErrorIs(t, err, contracts.FormulaSyntaxError, "expression: %q", expression)
		}
	})
}

func TestFormula_Evaluate(t *testing.T) {
	t.Run("constants", func(t *testing.T) {
		formula, err := ParseFormula("2+2*2")
		assert.NoError(t, err)

		value, err := formula.Evaluate(_failingResolver(t))
		assert.NoError(t, err)
		assert.Equal(t, 6.0, value)
	})

	t.Run("unary_and_parens", func(t *testing.T) {
		formula, err := ParseFormula("-(1+2)*+3")
		assert.NoError(t, err)

		value, err := formula.Evaluate(_failingResolver(t))
		assert.NoError(t, err)
		assert.Equal(t, -9.0, value)
	})

	t.Run("float_literals", func(t *testing.T) {
		formula, err := ParseFormula("1.5*2")
		assert.NoError(t, err)

		value, err := formula.Evaluate(_failingResolver(t))
		assert.NoError(t, err)
		assert.Equal(t, 3.0, value)
	})

	t.Run("cell_references", func(t *testing.T) {
		formula, err := ParseFormula("A1+B2")
		assert.NoError(t, err)

		value, err := formula.Evaluate(_valuesResolver(map[contracts.Position]float64{
			{Row: 0, Col: 0}: 110,
			{Row: 1, Col: 1}: 20.5,
		}))
		assert.NoError(t, err)
		assert.Equal(t, 130.5, value)
	})

	t.Run("division_by_zero", func(t *testing.T) {
		formula, err := ParseFormula("1/0")
		assert.NoError(t, err)

		_, err = formula.Evaluate(_failingResolver(t))
		assert.Equal(t, contracts.FormulaError{Category: contracts.FormulaErrorDiv0}, err)
	})

	t.Run("division_by_zero_cell", func(t *testing.T) {
		formula, err := ParseFormula("5/A1")
		assert.NoError(t, err)

		_, err = formula.Evaluate(_valuesResolver(map[contracts.Position]float64{}))
		assert.Equal(t, contracts.FormulaError{Category: contracts.FormulaErrorDiv0}, err)
	})

	t.Run("invalid_reference", func(t *testing.T) {
		formula, err := ParseFormula("AAAA1+1")
		assert.NoError(t, err)

		_, err = formula.Evaluate(_valuesResolver(nil))
		assert.Equal(t, contracts.FormulaError{Category: contracts.FormulaErrorRef}, err)
	})

	t.Run("resolver_error_passthrough", func(t *testing.T) {
		formula, err := ParseFormula("A1*2")
		assert.NoError(t, err)

		_, err = formula.Evaluate(func(pos contracts.Position) (float64, error) {
			return 0, contracts.FormulaError{Category: contracts.FormulaErrorValue}
		})
		assert.Equal(t, contracts.FormulaError{Category: contracts.FormulaErrorValue}, err)
	})

	t.Run("aggregate_functions", func(t *testing.T) {
		values := _valuesResolver(map[contracts.Position]float64{
			{Row: 0, Col: 0}: 4,
			{Row: 1, Col: 0}: 10,
		})

		expected := map[string]float64{
			"MIN(A1,A2,7)":   4,
			"MAX(A1,A2,7)":   10,
			"SUM(A1,A2,6)":   20,
			"AVG(A1,A2,4)":   6,
			"SUM(A1,A2)/2":   7,
			"MAX(-A1,A2-20)": -4,
		}

		for expression, expectedValue := range expected {
			formula, err := ParseFormula(expression)
			assert.NoError(t, err, "expression: %q", expression)

			value, err := formula.Evaluate(values)
			assert.NoError(t, err, "expression: %q", expression)
			assert.Equal(t, expectedValue, value, "expression: %q", expression)
		}
	})
}

func TestFormula_ReferencedCells(t *testing.T) {
	t.Run("source_order_with_duplicates", func(t *testing.T) {
		formula, err := ParseFormula("B1+A1+B1")
		assert.NoError(t, err)

		assert.Equal(t, []contracts.Position{
			{Row: 0, Col: 1},
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
		}, formula.ReferencedCells())
	})

	t.Run("invalid_references_kept", func(t *testing.T) {
		formula, err := ParseFormula("AAAA1+A1")
		assert.NoError(t, err)

		assert.Equal(t, []contracts.Position{
			contracts.PositionNone,
			{Row: 0, Col: 0},
		}, formula.ReferencedCells())
	})

	t.Run("function_arguments", func(t *testing.T) {
		formula, err := ParseFormula("SUM(A1,B1)")
		assert.NoError(t, err)

		assert.Equal(t, []contracts.Position{
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
		}, formula.ReferencedCells())
	})

	t.Run("no_references", func(t *testing.T) {
		formula, err := ParseFormula("1+2")
		assert.NoError(t, err)

		assert.Empty(t, formula.ReferencedCells())
	})
}

func TestFormula_Expression(t *testing.T) {
	expected := map[string]string{
		"1+2*3":         "1+2*3",
		"(1+2)*3":       "(1+2)*3",
		"1-(2-3)":       "1-(2-3)",
		"(1-2)-3":       "1-2-3",
		"1/(2*3)":       "1/(2*3)",
		"(1/2)*3":       "1/2*3",
		" A1 +  3 ":     "A1+3",
		"-(A1+1)":       "-(A1+1)",
		"-A1":           "-A1",
		"1.5+A1":        "1.5+A1",
		"SUM(A1, B1)":   "SUM(A1,B1)",
		"MAX(1, 2, 3)":  "MAX(1,2,3)",
		"((A1))":        "A1",
	}

	for input, canonical := range expected {
		formula, err := ParseFormula(input)
		assert.NoError(t, err, "expression: %q", input)
		assert.Equal(t, canonical, formula.Expression(), "expression: %q", input)
	}

	t.Run("idempotent", func(t *testing.T) {
		for input := range expected {
			formula, err := ParseFormula(input)
			assert.NoError(t, err)

			reparsed, err := ParseFormula(formula.Expression())
			assert.NoError(t, err)
			assert.Equal(t, formula.Expression(), reparsed.Expression())
		}
	})
}

func TestFormulaEngine_Parse(t *testing.T) {
	engine := NewFormulaEngine()

	formula, err := engine.Parse("A1+3")
	assert.NoError(t, err)
	assert.Equal(t, "A1+3", formula.Expression())

	_, err = engine.Parse("1+")
	assert.ErrorIs(t, err, contracts.FormulaSyntaxError)
}
