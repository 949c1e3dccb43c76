package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_TEST_HOST", "db.internal")

	out := ExpandEnv([]byte("host: {{.EXPAND_TEST_HOST}}"))
	assert.Equal(t, "host: db.internal", string(out))
}

func TestExpandEnvUnsetVariableIsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("key: '{{.EXPAND_TEST_DEFINITELY_UNSET}}'"))
	assert.Equal(t, "key: ''", string(out))
}

func TestExpandEnvBadTemplateReturnsOriginal(t *testing.T) {
	in := []byte("key: {{.unterminated")
	assert.Equal(t, in, ExpandEnv(in))
}
