package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/AayushPS/taro/config"
	"github.com/AayushPS/taro/cost"
	"github.com/AayushPS/taro/overlay"
)

func TestDefaults_BudgetsAreUnbounded(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, 0, cfg.Route.MaxSettledStates)
	assert.Equal(t, 0, cfg.Matrix.MaxRequestWorkStates)
	assert.Greater(t, cfg.Matrix.MaxNativeAStarTargets, 0)
}

func TestEngineConfig_ToCostConfig_ResolvesEnums(t *testing.T) {
	cfg := config.EngineConfig{TimeUnit: "milliseconds", SamplingPolicy: "interpolated", BucketSizeSeconds: 900}
	resolved := cfg.ToCostConfig()
	assert.Equal(t, cost.Milliseconds, resolved.TimeUnit)
	assert.Equal(t, cost.Interpolated, resolved.SamplingPolicy)
	assert.Equal(t, int64(900), resolved.BucketSizeSeconds)
}

func TestEngineConfig_ToCostConfig_DefaultsToSecondsDiscrete(t *testing.T) {
	cfg := config.EngineConfig{BucketSizeSeconds: 3600}
	resolved := cfg.ToCostConfig()
	assert.Equal(t, cost.Seconds, resolved.TimeUnit)
	assert.Equal(t, cost.Discrete, resolved.SamplingPolicy)
}

func TestConfig_RoundTripsThroughYAML(t *testing.T) {
	cfg := config.Defaults()
	cfg.Overlay = overlay.Config{MaxLiveOverrides: 50, CapacityPolicy: overlay.EvictOldestExpiry, WriteCleanupBudget: 8}

	out, err := yaml.Marshal(cfg)
	assert.NoError(t, err)

	var roundTripped config.Config
	assert.NoError(t, yaml.Unmarshal(out, &roundTripped))
	assert.Equal(t, cfg.Matrix.MaxNativeAStarTargets, roundTripped.Matrix.MaxNativeAStarTargets)
	assert.Equal(t, cfg.Engine.TimeUnit, roundTripped.Engine.TimeUnit)
}
