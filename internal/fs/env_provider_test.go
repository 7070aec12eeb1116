package fs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSEnvProvider(t *testing.T) {
	t.Setenv("KEYMAP_TOOLS_TEST_VAR", "value")

	p := NewEnvProvider()
	assert.Equal(t, "value", p.Get("KEYMAP_TOOLS_TEST_VAR"))
	assert.Empty(t, p.Get("KEYMAP_TOOLS_TEST_VAR_UNSET"))
}

func TestMapEnvProvider(t *testing.T) {
	t.Parallel()

	p := &MapEnvProvider{Values: map[string]string{"A": "1"}}
	assert.Equal(t, "1", p.Get("A"))
	assert.Empty(t, p.Get("B"))

	empty := &MapEnvProvider{}
	assert.Empty(t, empty.Get("A"))
}
