package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFmt(t *testing.T) {
	t.Parallel()

	t.Run("help", func(t *testing.T) {
		t.Parallel()
		err := RunFmt(context.Background(), []string{"keymapfmt", "--help"},
			io.Discard, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
	})

	t.Run("no file arguments", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := RunFmt(context.Background(), []string{"keymapfmt"},
			&stdout, &stderr, &mockEnvProvider{})
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Error:")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("formats a file end to end", func(t *testing.T) {
		t.Parallel()
		path := writeKeymap(t, testKeymap)

		var stdout bytes.Buffer
		err := RunFmt(context.Background(),
			[]string{"keymapfmt", "--skip-formatter", path},
			&stdout, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
		assert.Equal(t, "Formatted "+path+"\n", stdout.String())

		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		assert.Contains(t, string(data), "bindings = <\\\n")
	})

	t.Run("missing file reported per file and exits zero", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "gone.keymap")

		var stdout bytes.Buffer
		err := RunFmt(context.Background(),
			[]string{"keymapfmt", "--skip-formatter", missing},
			&stdout, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout.String(), "Error formatting "+missing+": "))
	})

	t.Run("config geometry honoured", func(t *testing.T) {
		t.Parallel()
		cfgPath := filepath.Join(t.TempDir(), "tools.yml")
		require.NoError(t, os.WriteFile(cfgPath,
			[]byte("grid: {columns: 2, fieldWidth: 6}\nformatter: {disabled: true}\n"), 0o600))
		path := writeKeymap(t, "bindings = <&kp A &mo 1 &trans>")

		err := RunFmt(context.Background(),
			[]string{"keymapfmt", "--config", cfgPath, path},
			io.Discard, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)

		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		assert.Equal(t, "bindings = <\\\n        &kp    &mo   \\\n        &trans\\\n    >", string(data))
	})

	t.Run("invalid flag geometry", func(t *testing.T) {
		t.Parallel()
		path := writeKeymap(t, testKeymap)
		err := RunFmt(context.Background(),
			[]string{"keymapfmt", "--columns=-1", path},
			io.Discard, io.Discard, &mockEnvProvider{})
		require.Error(t, err)
	})
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	t.Run("valid keymap", func(t *testing.T) {
		t.Parallel()
		path := writeKeymap(t, testKeymap)

		var stdout bytes.Buffer
		err := RunCheck(context.Background(),
			[]string{"keymapcheck", "--nocolour", path},
			&stdout, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
		assert.Equal(t, "Keymap validation passed!\n", stdout.String())
	})

	t.Run("invalid keymap still exits zero", func(t *testing.T) {
		t.Parallel()
		content := strings.ReplaceAll(testKeymap, "#include <behaviors.dtsi>\n", "")
		path := writeKeymap(t, content)

		var stdout bytes.Buffer
		err := RunCheck(context.Background(),
			[]string{"keymapcheck", "--nocolour", path},
			&stdout, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
		assert.Equal(t,
			"Errors found:\n  - Missing required include: #include <behaviors.dtsi>\n",
			stdout.String())
	})

	t.Run("unreadable file still exits zero", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "gone.keymap")

		var stdout bytes.Buffer
		err := RunCheck(context.Background(),
			[]string{"keymapcheck", "--nocolour", missing},
			&stdout, io.Discard, &mockEnvProvider{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Errors found:\n  - Error reading file:")
	})

	t.Run("no argument", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := RunCheck(context.Background(), []string{"keymapcheck"},
			&stdout, &stderr, &mockEnvProvider{})
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
	})
}
