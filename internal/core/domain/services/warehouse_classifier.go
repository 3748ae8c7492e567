package services

import (
	"log/slog"
	"strings"
	"unicode"

	"picking/internal/core/domain/model/kernel"
)

// zone3Sentinel is the literal storage code of the remote annex. It is
// checked before the alphabet ranges because its first letter С falls inside
// the high national-alphabet range and would otherwise classify as Zone 2.
const zone3Sentinel = "Склад 3"

// WarehouseClassifier maps a storage-location code to a warehouse zone.
//
// Classification is pure and total: it never fails, it only logs when
// confidence is low. An external zone hint, when valid, always wins; a
// mismatch between the hint and the location-derived zone is logged but
// never overrides the hint.
//
// Location-derived rules, in order:
//  1. the literal annex code "Склад 3" -> Zone 3
//  2. first letter А..П (national-alphabet low range) -> Zone 1
//  3. first letter Р..Я (national-alphabet high range) -> Zone 2
//  4. first letter Latin Z -> Zone 2; checked only after the national
//     ranges so the visually similar national letter З keeps Zone 1
//  5. anything else, including an empty location -> Zone 1
type WarehouseClassifier struct {
	logger *slog.Logger
}

// NewWarehouseClassifier creates a classifier logging low-confidence
// decisions through the given logger.
func NewWarehouseClassifier(logger *slog.Logger) WarehouseClassifier {
	return WarehouseClassifier{
		logger: logger.With("component", "warehouse_classifier"),
	}
}

// Classify resolves the zone for a storage-location code. Pass
// kernel.ZoneUnknown as hint when the external system supplied none.
func (c WarehouseClassifier) Classify(locationCode string, hint kernel.Zone) kernel.Zone {
	derived := c.classifyByLocation(locationCode)

	if hint.Validate() == nil {
		if locationCode != "" && derived != hint {
			c.logger.Warn("external zone hint disagrees with location-derived zone",
				"location", locationCode, "hint", hint.String(), "derived", derived.String())
		}
		return hint
	}

	if locationCode == "" {
		c.logger.Info("no location and no zone hint, defaulting", "zone", derived.String())
	}
	return derived
}

func (c WarehouseClassifier) classifyByLocation(locationCode string) kernel.Zone {
	trimmed := strings.TrimSpace(locationCode)
	if trimmed == "" {
		return kernel.Zone1
	}

	if strings.EqualFold(trimmed, zone3Sentinel) {
		return kernel.Zone3
	}

	first := unicode.ToUpper([]rune(trimmed)[0])
	switch {
	case first >= 'А' && first <= 'П':
		return kernel.Zone1
	case first >= 'Р' && first <= 'Я':
		return kernel.Zone2
	case first == 'Z':
		return kernel.Zone2
	}

	c.logger.Warn("unrecognized storage location, defaulting",
		"location", locationCode, "zone", kernel.Zone1.String())
	return kernel.Zone1
}
