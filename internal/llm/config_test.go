package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("QUOTEDESK_AI_ENABLED", "true")
	t.Setenv("QUOTEDESK_AI_ENDPOINT", "http://ollama.local:11434")
	t.Setenv("QUOTEDESK_AI_MODEL", "qwen2.5")
	t.Setenv("QUOTEDESK_AI_TIMEOUT_MS", "5000")
	t.Setenv("QUOTEDESK_AI_MAX_RETRIES", "2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://ollama.local:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 2, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("QUOTEDESK_AI_TIMEOUT_MS", "-100")
	t.Setenv("QUOTEDESK_AI_MAX_RETRIES", "nope")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1000
	cfg.Tasks[TaskBulkEdit] = TaskConfig{TimeoutMs: 7000}
	assert.Equal(t, 7000, cfg.TaskTimeout(TaskBulkEdit))

	cfg.Tasks[TaskBulkEdit] = TaskConfig{}
	assert.Equal(t, 1000, cfg.TaskTimeout(TaskBulkEdit))
}

func TestLoadConfig_TaskTimeoutEnv(t *testing.T) {
	t.Setenv("QUOTEDESK_AI_BULK_EDIT_TIMEOUT_MS", "12000")
	cfg := LoadConfig()
	assert.Equal(t, 12000, cfg.TaskTimeout(TaskBulkEdit))
}
