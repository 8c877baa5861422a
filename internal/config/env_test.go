package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luminatext/internal/app/upload"
)

func TestFromEnv(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		expectError   bool
		errorContains string
		check         func(*testing.T, *Config)
	}{
		{
			name: "defaults with valid key",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-1234567890abcdef1234567890abcdef",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8000", cfg.Port)
				assert.Equal(t, "development", cfg.Environment)
				assert.Equal(t, "mongodb://localhost:27017/luminatext", cfg.MongoURI)
				assert.Equal(t, upload.DefaultMaxFileSize, cfg.MaxFileSize)
			},
		},
		{
			name: "explicit overrides",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-1234567890abcdef1234567890abcdef",
				"PORT":           "9090",
				"ENVIRONMENT":    "production",
				"MONGODB_URI":    "mongodb://db.internal:27017/luminatext",
				"MAX_FILE_SIZE":  "1048576",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "9090", cfg.Port)
				assert.Equal(t, "production", cfg.Environment)
				assert.Equal(t, "mongodb://db.internal:27017/luminatext", cfg.MongoURI)
				assert.Equal(t, int64(1048576), cfg.MaxFileSize)
			},
		},
		{
			name:          "missing provider key",
			env:           map[string]string{},
			expectError:   true,
			errorContains: "OPENAI_API_KEY",
		},
		{
			name: "invalid provider key format",
			env: map[string]string{
				"OPENAI_API_KEY": "not-a-key",
			},
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
		{
			name: "invalid max file size",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-1234567890abcdef1234567890abcdef",
				"MAX_FILE_SIZE":  "lots",
			},
			expectError:   true,
			errorContains: "MAX_FILE_SIZE",
		},
		{
			name: "negative max file size",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-1234567890abcdef1234567890abcdef",
				"MAX_FILE_SIZE":  "-1",
			},
			expectError:   true,
			errorContains: "MAX_FILE_SIZE",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Empty values read as unset through getEnvOrDefault.
			for _, key := range []string{"OPENAI_API_KEY", "PORT", "ENVIRONMENT", "MONGODB_URI", "MAX_FILE_SIZE"} {
				t.Setenv(key, "")
			}
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := FromEnv()

			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}

			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}
