package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureByName(t *testing.T) {
	for _, f := range AllFeatures {
		got, ok := FeatureByName(f.Name)
		require.True(t, ok, f.Name)
		assert.Equal(t, f.Name, got.Name)
		assert.Equal(t, f.Name, got.Emitter().Name())
	}

	got, ok := FeatureByName(" Projection ")
	require.True(t, ok)
	assert.Equal(t, familyProjection, got.Name)

	_, ok = FeatureByName("privacy")
	assert.False(t, ok)
}

func TestFeatureStageString(t *testing.T) {
	assert.Equal(t, "experimental", Experimental.String())
	assert.Equal(t, "alpha", Alpha.String())
	assert.Equal(t, "beta", Beta.String())
	assert.Equal(t, "stable", Stable.String())
	assert.Equal(t, "unknown", FeatureStage(0).String())
}

func TestDefaultFeatures(t *testing.T) {
	fs := DefaultFeatures()
	require.Len(t, fs, len(AllFeatures))
	for i, f := range fs {
		assert.Equal(t, AllFeatures[i].Name, f.Name)
	}
}

func TestResolveFeatures(t *testing.T) {
	t.Run("empty selects defaults", func(t *testing.T) {
		fs, err := resolveFeatures(nil)
		require.NoError(t, err)
		assert.Len(t, fs, len(AllFeatures))
	})

	t.Run("orders and deduplicates", func(t *testing.T) {
		fs, err := resolveFeatures([]Feature{FeatureTap, FeatureCurried, FeatureTap})
		require.NoError(t, err)
		require.Len(t, fs, 2)
		assert.Equal(t, familyCurried, fs[0].Name)
		assert.Equal(t, familyTap, fs[1].Name)
	})

	t.Run("missing requirement", func(t *testing.T) {
		_, err := resolveFeatures([]Feature{FeatureCurried, FeatureProjection})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "requires feature tap")
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := resolveFeatures([]Feature{{Name: "privacy"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown feature")
	})
}
