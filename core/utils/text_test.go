package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Spaces", "   ", ""},
		{"Latin", "  SH-12345-A ", "sh-12345-a"},
		{"Cyrillic", "НЕДОПУЩЕН", "недопущен"},
		{"Mixed", " Штрихкод Barcode\t", "штрихкод barcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Номер КОРОБКИ", "коробк"))
	assert.True(t, ContainsFold("Box No.", "BOX"))
	assert.False(t, ContainsFold("Статус", "штрих"))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt("5"))
	assert.Equal(t, 5, ToInt(" 5 "))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 3, ToInt(3.9))
	assert.Equal(t, 12, ToInt([]byte("12")))
}

func TestToIntDefault(t *testing.T) {
	assert.Equal(t, 50, ToIntDefault("", 50))
	assert.Equal(t, 50, ToIntDefault("-3", 50))
	assert.Equal(t, 10, ToIntDefault("10", 50))
}
