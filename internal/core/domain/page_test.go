package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"asc", DirectionAsc},
		{"desc", DirectionDesc},
		{"DESC", DirectionDesc},
		{" desc ", DirectionDesc},
		{"", DirectionAsc},
		{"sideways", DirectionAsc},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDirection(tt.input))
		})
	}
}

func TestPageRequest_Normalise(t *testing.T) {
	tests := []struct {
		name     string
		input    PageRequest
		expected PageRequest
	}{
		{
			name:     "zero value gets defaults",
			input:    PageRequest{},
			expected: PageRequest{Page: 0, Size: DefaultPageSize, Direction: DirectionAsc},
		},
		{
			name:     "negative page clamps to zero",
			input:    PageRequest{Page: -3, Size: 5, Direction: DirectionDesc},
			expected: PageRequest{Page: 0, Size: 5, Direction: DirectionDesc},
		},
		{
			name:     "oversized page clamps to max",
			input:    PageRequest{Page: 2, Size: 1000},
			expected: PageRequest{Page: 2, Size: MaxPageSize, Direction: DirectionAsc},
		},
		{
			name:     "unknown direction falls back to asc",
			input:    PageRequest{Size: 10, Direction: "up"},
			expected: PageRequest{Size: 10, Direction: DirectionAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalise())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 0, Size: 12}.Offset())
	assert.Equal(t, 24, PageRequest{Page: 2, Size: 12}.Offset())
}

func TestPageRequest_Offset_Saturates(t *testing.T) {
	tests := []struct {
		name     string
		req      PageRequest
		expected int
	}{
		{"largest page that fits", PageRequest{Page: math.MaxInt / 12, Size: 12}, (math.MaxInt / 12) * 12},
		{"one page beyond", PageRequest{Page: math.MaxInt/12 + 1, Size: 12}, math.MaxInt},
		{"max page", PageRequest{Page: math.MaxInt, Size: MaxPageSize}, math.MaxInt},
		{"negative page", PageRequest{Page: -1, Size: 12}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.req.Normalise().Offset()
			assert.Equal(t, tt.expected, offset)
			assert.GreaterOrEqual(t, offset, 0)
		})
	}
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		size     int
		expected int
	}{
		{"empty", 0, 12, 0},
		{"exact fit", 24, 12, 2},
		{"partial last page", 25, 12, 3},
		{"zero size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Page[int]{Size: tt.size, TotalElements: tt.total}
			assert.Equal(t, tt.expected, page.TotalPages())
		})
	}
}

func TestPage_Navigation(t *testing.T) {
	req := PageRequest{Page: 1, Size: 2}
	page := NewPage([]string{"c", "d"}, req, 5)

	assert.False(t, page.IsEmpty())
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())

	last := NewPage([]string{"e"}, PageRequest{Page: 2, Size: 2}, 5)
	assert.False(t, last.HasNext())

	first := NewPage([]string{"a", "b"}, PageRequest{Page: 0, Size: 2}, 5)
	assert.False(t, first.HasPrevious())
}

func TestPage_IsEmpty(t *testing.T) {
	page := NewPage[string](nil, PageRequest{Size: 12}, 0)
	assert.True(t, page.IsEmpty())
}
