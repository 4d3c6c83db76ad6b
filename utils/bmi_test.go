package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 72.9)
	require.NoError(t, err)
	assert.InDelta(t, 22.5, bmi, 0.01)
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 180, 0},
		{"negative height", -170, 70},
		{"height too small", 30, 70},
		{"height too large", 300, 70},
		{"weight too small", 180, 5},
		{"weight too large", 180, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateBMI(tt.heightCm, tt.weightKg)
			assert.Error(t, err)
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{16.0, "Underweight"},
		{18.4, "Underweight"},
		{18.5, "Normal"},
		{24.9, "Normal"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obese"},
		{42.0, "Obese"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi %.1f", tt.bmi)
	}
}
