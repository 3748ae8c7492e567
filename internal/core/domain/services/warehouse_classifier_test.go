package services_test

import (
	"io"
	"log/slog"
	"testing"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() services.WarehouseClassifier {
	return services.NewWarehouseClassifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWarehouseClassifier_Classify(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		name     string
		location string
		expected kernel.Zone
	}{
		{"low national-alphabet row", "Б-14", kernel.Zone1},
		{"first low letter А", "А-1", kernel.Zone1},
		{"last low letter П", "П-22", kernel.Zone1},
		{"high national-alphabet row", "Я-3", kernel.Zone2},
		{"first high letter Р", "Р-9", kernel.Zone2},
		{"annex storage code", "Склад 3", kernel.Zone3},
		{"annex code lowercased", "склад 3", kernel.Zone3},
		{"latin Z row", "Z-7", kernel.Zone2},
		{"lowercase latin z row", "z-2", kernel.Zone2},
		{"national З stays in first zone", "З-5", kernel.Zone1},
		{"lowercase national letter", "б-14", kernel.Zone1},
		{"leading whitespace", "  Т-4", kernel.Zone2},
		{"unrecognized latin row defaults", "A-10", kernel.Zone1},
		{"numeric code defaults", "12-3", kernel.Zone1},
		{"empty location defaults", "", kernel.Zone1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := classifier.Classify(tt.location, kernel.ZoneUnknown)
			assert.Equal(t, tt.expected, zone)
		})
	}
}

func TestWarehouseClassifier_Classify_Hint(t *testing.T) {
	classifier := newTestClassifier()

	t.Run("valid hint wins over location-derived zone", func(t *testing.T) {
		zone := classifier.Classify("Б-14", kernel.Zone3)
		assert.Equal(t, kernel.Zone3, zone)
	})

	t.Run("valid hint wins with empty location", func(t *testing.T) {
		zone := classifier.Classify("", kernel.Zone2)
		assert.Equal(t, kernel.Zone2, zone)
	})

	t.Run("invalid hint falls back to location", func(t *testing.T) {
		zone := classifier.Classify("Я-3", kernel.Zone(42))
		assert.Equal(t, kernel.Zone2, zone)
	})

	t.Run("agreeing hint keeps the same zone", func(t *testing.T) {
		zone := classifier.Classify("Склад 3", kernel.Zone3)
		assert.Equal(t, kernel.Zone3, zone)
	})
}
