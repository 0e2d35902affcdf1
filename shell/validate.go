package shell

import (
	"strconv"
	"strings"

	"github.com/grpc-boot/carcare"
)

func requireFields(values ...string) error {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return ErrMissingField
		}
	}
	return nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}

	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// parseTaskPriority accepts an unsigned decimal.
func parseTaskPriority(value string) (priority int, ok bool) {
	if !isDigits(value) {
		return 0, false
	}

	priority, err := strconv.Atoi(value)
	return priority, err == nil
}

func parseOrderPriority(value string) (priority carcare.Priority, err error) {
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, ErrInvalidPriority
	}

	priority = carcare.Priority(number)
	if !priority.Valid() {
		return 0, ErrPriorityRange
	}

	return priority, nil
}
