package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_LastPage(t *testing.T) {
	p := NewPagination(25, 3, 10)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
	assert.Equal(t, 20, p.Offset())
}

func TestNewPagination_FirstOfMany(t *testing.T) {
	p := NewPagination(25, 1, 10)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPagination_EmptyResult(t *testing.T) {
	p := NewPagination(0, 1, 12)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.False(t, p.HasPrevPage)
}

func TestNewPagination_ExactMultiple(t *testing.T) {
	p := NewPagination(24, 2, 12)

	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNextPage)
}

func TestNewPagination_ClampsInvalidInput(t *testing.T) {
	p := NewPagination(-5, 0, -1)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.Limit)
	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPagination_BeyondLastPage(t *testing.T) {
	p := NewPagination(25, 10, 12)

	assert.Equal(t, 10, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNextPage)
	assert.True(t, p.HasPrevPage)
}
