package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Target = t.TempDir()
		return c
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(error) bool
	}{
		{"missing target", func(c *Config) { c.Target = "" }, IsConfigError},
		{"bad package", func(c *Config) { c.Package = "pipe-i" }, IsConfigError},
		{"keyword package", func(c *Config) { c.Package = "func" }, IsConfigError},
		{"max arity above limit", func(c *Config) { c.MaxArity = ArityLimit + 1 }, IsArityError},
		{"arity above max", func(c *Config) { c.MaxArity = 4; c.Arities = []int{5} }, IsArityError},
		{"bad tag prefix", func(c *Config) { c.TagPrefix = "a-b" }, IsConfigError},
		{"same tags", func(c *Config) { c.SelectTag = c.TagPrefix }, IsConfigError},
		{"unmet requirement", func(c *Config) { c.Features = []Feature{FeatureCurried, FeatureProjection} }, IsConfigError},
		{"unknown family name", func(c *Config) { c.Names = map[string]string{"effect": "Action"} }, IsConfigError},
		{"name colliding with a family", func(c *Config) { c.Names = map[string]string{"pipe": "Tap"} }, IsConfigError},
		{"name colliding with a variant", func(c *Config) { c.Names = map[string]string{"pipe": "Thread", "tap": "ThreadMut"} }, IsConfigError},
		{"name colliding with a built-in", func(c *Config) { c.Names = map[string]string{"tap": "Comp"} }, IsConfigError},
		{"unexported name", func(c *Config) { c.Names = map[string]string{"tap": "also"} }, IsConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
}

func TestConfigArityList(t *testing.T) {
	t.Run("defaults to every arity up to max", func(t *testing.T) {
		c := &Config{MaxArity: 3}
		list, err := c.ArityList()
		require.NoError(t, err)
		assert.Equal(t, []Arity{{0}, {1}, {2}, {3}}, list)
	})

	t.Run("sorts and deduplicates", func(t *testing.T) {
		c := &Config{MaxArity: 10, Arities: []int{5, 0, 5, 2}}
		list, err := c.ArityList()
		require.NoError(t, err)
		assert.Equal(t, []Arity{{0}, {2}, {5}}, list)
		assert.Equal(t, []int{5, 0, 5, 2}, c.Arities)
	})

	t.Run("full range", func(t *testing.T) {
		list, err := DefaultConfig().ArityList()
		require.NoError(t, err)
		require.Len(t, list, ArityLimit+1)
		assert.Equal(t, 0, list[0].N)
		assert.Equal(t, ArityLimit, list[ArityLimit].N)
	})
}

func TestConfigFeatureEnabled(t *testing.T) {
	t.Run("defaults enable everything", func(t *testing.T) {
		c := &Config{}
		for _, f := range AllFeatures {
			enabled, err := c.FeatureEnabled(f.Name)
			require.NoError(t, err)
			assert.True(t, enabled, f.Name)
		}
	})

	t.Run("explicit list", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureCurried, FeaturePipe}}

		enabled, err := c.FeatureEnabled(familyPipe)
		require.NoError(t, err)
		assert.True(t, enabled)

		enabled, err = c.FeatureEnabled(familyTap)
		require.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := (&Config{}).FeatureEnabled("privacy")
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}
