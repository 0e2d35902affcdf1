package shell

import (
	"testing"

	"github.com/grpc-boot/carcare"
	"github.com/stretchr/testify/require"
)

func TestParseTaskPriority(t *testing.T) {
	priority, ok := parseTaskPriority("42")
	require.True(t, ok)
	require.Equal(t, 42, priority)

	for _, value := range []string{"", "-1", "+1", "1.5", "abc", "99999999999999999999999"} {
		_, ok = parseTaskPriority(value)
		require.False(t, ok, value)
	}
}

func TestParseOrderPriority(t *testing.T) {
	priority, err := parseOrderPriority("2")
	require.NoError(t, err)
	require.Equal(t, carcare.PriorityMedium, priority)

	_, err = parseOrderPriority("high")
	require.Equal(t, ErrInvalidPriority, err)

	for _, value := range []string{"0", "4", "-1"} {
		_, err = parseOrderPriority(value)
		require.Equal(t, ErrPriorityRange, err, value)
	}
}

func TestRequireFields(t *testing.T) {
	require.NoError(t, requireFields("a", "b"))
	require.Equal(t, ErrMissingField, requireFields("a", " "))
	require.Equal(t, ErrMissingField, requireFields(""))
}
