package events

import (
	"errors"
	"strconv"
)

func parsePositiveInt(raw string) (int, error) {
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return 0, errors.New("must be positive")
	}
	return parsed, nil
}
