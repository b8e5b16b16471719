package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	m := NewModel()
	require.NotNil(t, m)
	assert.Equal(t, DefaultOutputDirectory, m.OutputDirectory)
	assert.Empty(t, m.Enabled())
}

func TestEnabled(t *testing.T) {
	t.Run("absent flags default to false", func(t *testing.T) {
		m := NewModel()
		m.Backends[BackendJPA] = true
		assert.Equal(t, []string{BackendJPA}, m.Enabled())
	})

	t.Run("explicit false is not enabled", func(t *testing.T) {
		m := NewModel()
		m.Backends[BackendJPA] = false
		assert.Empty(t, m.Enabled())
	})

	t.Run("canonical order is preserved", func(t *testing.T) {
		m := NewModel()
		m.Backends[BackendSpringDataMongo] = true
		m.Backends[BackendHibernate] = true
		m.Backends[BackendJPA] = true

		assert.Equal(t, []string{BackendJPA, BackendHibernate, BackendSpringDataMongo}, m.Enabled())
	})

	t.Run("non-canonical keys sort after canonical ones", func(t *testing.T) {
		m := NewModel()
		m.Backends["zeta"] = true
		m.Backends["acme"] = true
		m.Backends[BackendRoo] = true

		assert.Equal(t, []string{BackendRoo, "acme", "zeta"}, m.Enabled())
	})
}
