package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 0}.IsValid())
	assert.True(t, Position{Row: MaxRows - 1, Col: MaxCols - 1}.IsValid())

	assert.False(t, PositionNone.IsValid())
	assert.False(t, Position{Row: -1, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: -1}.IsValid())
	assert.False(t, Position{Row: MaxRows, Col: 0}.IsValid())
	assert.False(t, Position{Row: 0, Col: MaxCols}.IsValid())
}

func TestPosition_Less(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 5}.Less(Position{Row: 1, Col: 0}))
	assert.True(t, Position{Row: 1, Col: 0}.Less(Position{Row: 1, Col: 1}))
	assert.False(t, Position{Row: 1, Col: 1}.Less(Position{Row: 1, Col: 1}))
	assert.False(t, Position{Row: 2, Col: 0}.Less(Position{Row: 1, Col: 9}))
}

func TestPosition_String(t *testing.T) {
	t.Run("single_letter", func(t *testing.T) {
		assert.Equal(t, "A1", Position{Row: 0, Col: 0}.String())
		assert.Equal(t, "Z1", Position{Row: 0, Col: 25}.String())
		assert.Equal(t, "B3", Position{Row: 2, Col: 1}.String())
	})

	t.Run("multi_letter", func(t *testing.T) {
		assert.Equal(t, "AA1", Position{Row: 0, Col: 26}.String())
		assert.Equal(t, "AZ1", Position{Row: 0, Col: 51}.String())
		assert.Equal(t, "BA1", Position{Row: 0, Col: 52}.String())
		assert.Equal(t, "AA10", Position{Row: 9, Col: 26}.String())
	})

	t.Run("max_corner", func(t *testing.T) {
		assert.Equal(t, "XFD16384", Position{Row: 16383, Col: 16383}.String())
	})

	t.Run("invalid_renders_empty", func(t *testing.T) {
		assert.Equal(t, "", PositionNone.String())
		assert.Equal(t, "", Position{Row: MaxRows, Col: 0}.String())
	})
}

func TestPositionFromString(t *testing.T) {
	t.Run("well_formed", func(t *testing.T) {
		assert.Equal(t, Position{Row: 0, Col: 0}, PositionFromString("A1"))
		assert.Equal(t, Position{Row: 9, Col: 26}, PositionFromString("AA10"))
		assert.Equal(t, Position{Row: 16383, Col: 16383}, PositionFromString("XFD16384"))
	})

	t.Run("malformed", func(t *testing.T) {
		assert.Equal(t, PositionNone, PositionFromString(""))
		assert.Equal(t, PositionNone, PositionFromString("A"))
		assert.Equal(t, PositionNone, PositionFromString("1"))
		assert.Equal(t, PositionNone, PositionFromString("12"))
		assert.Equal(t, PositionNone, PositionFromString("A1B"))
		assert.Equal(t, PositionNone, PositionFromString("a1"))
		assert.Equal(t, PositionNone, PositionFromString("A-1"))
		assert.Equal(t, PositionNone, PositionFromString("A1.5"))
	})

	t.Run("out_of_range", func(t *testing.T) {
		assert.Equal(t, PositionNone, PositionFromString("A0"))
		assert.Equal(t, PositionNone, PositionFromString("A16385"))
		assert.Equal(t, PositionNone, PositionFromString("XFE16384"))
		assert.Equal(t, PositionNone, PositionFromString("ZZZ1"))
		assert.Equal(t, PositionNone, PositionFromString("AAAA1"))
		assert.Equal(t, PositionNone, PositionFromString("A99999999999999999999"))
	})

	t.Run("round_trip", func(t *testing.T) {
		positions := []Position{
			{Row: 0, Col: 0},
			{Row: 0, Col: 25},
			{Row: 0, Col: 26},
			{Row: 41, Col: 701},
			{Row: 41, Col: 702},
			{Row: 16383, Col: 16383},
		}

		for _, pos := range positions {
			assert.Equal(t, pos, PositionFromString(pos.String()))
		}
	})
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(""))
	assert.Equal(t, "meow", FormatValue("meow"))
	assert.Equal(t, "3", FormatValue(3.0))
	assert.Equal(t, "3.5", FormatValue(3.5))
	assert.Equal(t, "0.3333333333333333", FormatValue(1.0/3.0))
	assert.Equal(t, "#ARITHM!", FormatValue(FormulaError{Category: FormulaErrorDiv0}))
	assert.Equal(t, "#REF!", FormatValue(FormulaError{Category: FormulaErrorRef}))
	assert.Equal(t, "#VALUE!", FormatValue(FormulaError{Category: FormulaErrorValue}))
	assert.Equal(t, "", FormatValue(nil))
}
