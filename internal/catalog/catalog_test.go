package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliakbar-zohour/SalonBookingService/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	c, err := New([]domain.CatalogService{
		{Name: "ماساژ", DurationMinutes: 30},
		{Name: "اصلاح", DurationMinutes: 20},
	})

	require.NoError(t, err)
	assert.True(t, c.Contains("ماساژ"))
	assert.False(t, c.Contains("لیزر"))
	assert.Len(t, c.Services(), 2)
}

func TestNew_Empty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNew_InvalidDuration(t *testing.T) {
	_, err := New([]domain.CatalogService{
		{Name: "ماساژ", DurationMinutes: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestNew_DuplicateName(t *testing.T) {
	_, err := New([]domain.CatalogService{
		{Name: "ماساژ", DurationMinutes: 30},
		{Name: "ماساژ", DurationMinutes: 45},
	})
	assert.ErrorIs(t, err, ErrDuplicateService)
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.NotEmpty(t, c.Services())
	assert.True(t, c.Contains("ماساژ"))
	assert.True(t, c.Contains("اصلاح"))
}

func TestResolveDuration(t *testing.T) {
	c := Default()

	total, unknown := c.ResolveDuration([]string{"ماساژ", "اصلاح"})
	assert.Equal(t, 60, total) // 30 + 20 + 10 буфер
	assert.Empty(t, unknown)

	total, unknown = c.ResolveDuration(nil)
	assert.Equal(t, 0, total)
	assert.Empty(t, unknown)

	_, unknown = c.ResolveDuration([]string{"لیزر"})
	assert.Equal(t, []string{"لیزر"}, unknown)
}
