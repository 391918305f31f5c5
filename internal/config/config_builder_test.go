package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Auth: Auth{
				TokenSignKey: "from-env",
				TokenIssuer:  "env-issuer",
			},
		},
		&StructuredConfig{
			Auth: Auth{
				TokenSignKey:  "from-json",
				TokenIssuer:   "json-issuer",
				TokenDuration: time.Hour,
			},
			Server: Server{HTTPAddress: "127.0.0.1:9000"},
		},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey, "first source keeps its value")
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration, "later sources fill unset fields")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimit.Requests, "defaults fill the remaining gaps")
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
