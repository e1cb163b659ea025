package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePinCodes parses a comma-separated list of postal codes as sent by
// multipart forms ("560001, 560002"). Blank entries are skipped.
func ParsePinCodes(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	pins := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pin, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid pin code %q", part)
		}
		pins = append(pins, pin)
	}
	return pins, nil
}

// NormalizePinCodes removes duplicate postal codes while keeping the first
// occurrence order, so profile updates always union into a deduplicated set.
func NormalizePinCodes(pins []int) []int {
	seen := make(map[int]bool, len(pins))
	out := make([]int, 0, len(pins))
	for _, pin := range pins {
		if seen[pin] {
			continue
		}
		seen[pin] = true
		out = append(out, pin)
	}
	return out
}

// InvalidPinCodes returns the codes in pins that are not members of the
// supplier's serviceable set.
func InvalidPinCodes(pins, supplierPins []int) []int {
	member := make(map[int]bool, len(supplierPins))
	for _, pin := range supplierPins {
		member[pin] = true
	}
	invalid := []int{}
	for _, pin := range pins {
		if !member[pin] {
			invalid = append(invalid, pin)
		}
	}
	return invalid
}
