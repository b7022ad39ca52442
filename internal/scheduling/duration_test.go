package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDurations = map[string]int{
	"ماساژ": 30,
	"اصلاح": 20,
	"مو":    45,
}

func TestResolveDuration_SumPlusBuffer(t *testing.T) {
	total, unknown := ResolveDuration([]string{"ماساژ", "اصلاح"}, testDurations)

	assert.Equal(t, 60, total) // 30 + 20 + 10 буфер
	assert.Empty(t, unknown)
}

func TestResolveDuration_SingleService(t *testing.T) {
	total, unknown := ResolveDuration([]string{"مو"}, testDurations)

	assert.Equal(t, 55, total) // 45 + 10 буфер
	assert.Empty(t, unknown)
}

func TestResolveDuration_EmptySelection(t *testing.T) {
	total, unknown := ResolveDuration(nil, testDurations)

	assert.Equal(t, 0, total)
	assert.Empty(t, unknown)

	total, unknown = ResolveDuration([]string{}, testDurations)

	assert.Equal(t, 0, total)
	assert.Empty(t, unknown)
}

func TestResolveDuration_UnknownServiceWorthZero(t *testing.T) {
	total, unknown := ResolveDuration([]string{"ماساژ", "لیزر"}, testDurations)

	assert.Equal(t, 40, total) // 30 + 0 + 10 буфер
	assert.Equal(t, []string{"لیزر"}, unknown)
}

func TestResolveDuration_AllUnknownStillGetsBuffer(t *testing.T) {
	total, unknown := ResolveDuration([]string{"لیزر"}, testDurations)

	// Непустой выбор - буфер добавляется, даже если услуга неизвестна
	assert.Equal(t, 10, total)
	assert.Equal(t, []string{"لیزر"}, unknown)
}
