package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Next(t *testing.T) {
	var calls []string

	chain := NewChain(func(s *Session, cmd Command) (bool, error) {
		calls = append(calls, "first")
		return cmd.Name == "help", nil
	})
	chain.Use(func(s *Session, cmd Command) (bool, error) {
		calls = append(calls, "second")
		return cmd.Name == "add", ErrMissingField
	})

	handled, err := chain.Next(nil, Command{Name: "help"})
	require.True(t, handled)
	require.NoError(t, err)
	require.Equal(t, []string{"first"}, calls)

	calls = nil
	handled, err = chain.Next(nil, Command{Name: "add"})
	require.True(t, handled)
	require.Equal(t, ErrMissingField, err)
	require.Equal(t, []string{"first", "second"}, calls)

	// an error from a handler that passes is dropped
	handled, err = chain.Next(nil, Command{Name: "fly"})
	require.False(t, handled)
	require.NoError(t, err)
}
