package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightPounds(t *testing.T) {
	t.Run("Pounds Suffix", func(t *testing.T) {
		pounds := ParseWeightPounds("150 lbs")
		require.NotNil(t, pounds, "150 lbs should parse")
		assert.Equal(t, 150.0, *pounds, "pounds should be kept as typed")
	})

	t.Run("Kilograms Rounded To Whole Pound", func(t *testing.T) {
		pounds := ParseWeightPounds("68 kg")
		require.NotNil(t, pounds, "68 kg should parse")
		assert.Equal(t, 150.0, *pounds, "68 kg should round to 150 lbs")
	})

	t.Run("Unit Is Case Insensitive", func(t *testing.T) {
		pounds := ParseWeightPounds("68KG")
		require.NotNil(t, pounds)
		assert.Equal(t, 150.0, *pounds)
	})

	t.Run("Bare Number Is Pounds", func(t *testing.T) {
		pounds := ParseWeightPounds("150")
		require.NotNil(t, pounds)
		assert.Equal(t, 150.0, *pounds)
	})

	t.Run("Fractional Pounds Kept", func(t *testing.T) {
		pounds := ParseWeightPounds("150.5 lbs")
		require.NotNil(t, pounds)
		assert.Equal(t, 150.5, *pounds)
	})

	t.Run("Not A Number", func(t *testing.T) {
		assert.Nil(t, ParseWeightPounds("abc"), "abc should yield null")
		assert.Nil(t, ParseWeightPounds("kg"), "a bare unit should yield null")
		assert.Nil(t, ParseWeightPounds("lbs"), "a bare unit should yield null")
		assert.Nil(t, ParseWeightPounds(""), "empty text should yield null")
	})
}

func TestParseHeightInches(t *testing.T) {
	t.Run("Feet And Inches", func(t *testing.T) {
		inches := ParseHeightInches("5 ft 10 in")
		require.NotNil(t, inches)
		assert.Equal(t, 70, *inches)
	})

	t.Run("Feet And Inches Without Spaces", func(t *testing.T) {
		inches := ParseHeightInches("5ft 10in")
		require.NotNil(t, inches)
		assert.Equal(t, 70, *inches)
	})

	t.Run("Centimeters Rounded", func(t *testing.T) {
		inches := ParseHeightInches("178 cm")
		require.NotNil(t, inches)
		assert.Equal(t, 70, *inches, "178 cm should round to 70 inches")
	})

	t.Run("Unrecognized Height", func(t *testing.T) {
		assert.Nil(t, ParseHeightInches("tall"))
		assert.Nil(t, ParseHeightInches("5 ft"), "feet without inches should not match")
		assert.Nil(t, ParseHeightInches("cm"), "a bare unit should yield null")
	})
}
