package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var notaPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ParseID parses a positive integer path parameter
func ParseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// ParseNota converts a nota given as a string into its numeric value.
// Accepted form: digits with up to two decimal places, between 0 and 10.
func ParseNota(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if !notaPattern.MatchString(raw) {
		return 0, fmt.Errorf("invalid nota %q", raw)
	}
	nota, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if nota < 0 || nota > 10 {
		return 0, fmt.Errorf("nota %v out of range", nota)
	}
	return nota, nil
}
