package hclcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gengridgo/internal/config"
)

// writeConfig writes content to a temp .hcl file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "querydsl.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("full block", func(t *testing.T) {
		path := writeConfig(t, `
querydsl {
  jpa               = true
  hibernate         = true
  spring_data_mongo = true
  output_directory  = "gen/querydsl"
  library           = "com.querydsl:querydsl-core:5.0.0"
  generator         = "querydsl-apt"
  generator_args = {
    encoding = "UTF-8"
    release  = 17
  }
}
`)
		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		want := &config.Model{
			Backends: map[string]bool{
				config.BackendJPA:             true,
				config.BackendJDO:             false,
				config.BackendHibernate:       true,
				config.BackendMorphia:         false,
				config.BackendRoo:             false,
				config.BackendSpringDataMongo: true,
			},
			OutputDirectory: "gen/querydsl",
			Library:         "com.querydsl:querydsl-core:5.0.0",
			Generator:       "querydsl-apt",
			GeneratorArgs: map[string]string{
				"encoding": "UTF-8",
				"release":  "17",
			},
		}
		assert.Empty(t, cmp.Diff(want, model))
	})

	t.Run("absent flags default to false and directory defaults", func(t *testing.T) {
		path := writeConfig(t, `
querydsl {
  jdo = true
}
`)
		model, err := NewLoader().Load(ctx, path)
		require.NoError(t, err)

		assert.Equal(t, []string{config.BackendJDO}, model.Enabled())
		assert.Equal(t, config.DefaultOutputDirectory, model.OutputDirectory)
		assert.Empty(t, model.Library)
		assert.Nil(t, model.GeneratorArgs)
	})

	t.Run("missing querydsl block", func(t *testing.T) {
		path := writeConfig(t, ``)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "no querydsl block")
	})

	t.Run("unknown attribute is rejected", func(t *testing.T) {
		path := writeConfig(t, `
querydsl {
  cassandra = true
}
`)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("non-map generator_args is rejected", func(t *testing.T) {
		path := writeConfig(t, `
querydsl {
  jpa            = true
  generator_args = "UTF-8"
}
`)
		_, err := NewLoader().Load(ctx, path)
		assert.ErrorContains(t, err, "generator_args must be a map")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "dne.hcl"))
		assert.Error(t, err)
	})
}
