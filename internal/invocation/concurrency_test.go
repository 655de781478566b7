package invocation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/invocation"
)

func TestDegreeOfConcurrency(t *testing.T) {
	const processors = 16

	t.Run("accepts plain positive integers", func(t *testing.T) {
		for spec, want := range map[string]int{
			"1":  1,
			"4":  4,
			"64": 64,
		} {
			got, err := invocation.DegreeOfConcurrency(spec, processors)
			require.NoError(t, err, "spec %q", spec)
			assert.Equal(t, want, got, "spec %q", spec)
		}
	})

	t.Run("multiplies C-suffixed coefficients by the processor count", func(t *testing.T) {
		for spec, want := range map[string]int{
			"1C":    16,
			"2C":    32,
			"2.2C":  35, // truncates toward zero
			"0.5C":  8,
			".5C":   8,
			"0.25C": 4,
		} {
			got, err := invocation.DegreeOfConcurrency(spec, processors)
			require.NoError(t, err, "spec %q", spec)
			assert.Equal(t, want, got, "spec %q", spec)
		}
	})

	t.Run("clamps tiny coefficients to one thread", func(t *testing.T) {
		got, err := invocation.DegreeOfConcurrency("0.0001C", processors)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, spec := range []string{
			"0", "-1", "0x4", "1.0", "1.", "1.5", "AA", "C",
			"C2.2C", "C2.2", "2C2", "CXXX", "XXXC", "2.C", "-2.2C", "0C",
			"", " ", "1 ", " 1",
		} {
			got, err := invocation.DegreeOfConcurrency(spec, processors)
			require.Error(t, err, "spec %q", spec)
			require.ErrorContains(t, err, domain.ErrInvalidThreadCount.Error(), "spec %q", spec)
			assert.Zero(t, got, "spec %q", spec)
		}
	})
}
