package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryFloat читает необязательный числовой query параметр; пустое значение даёт nil
func QueryFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &value, nil
}
