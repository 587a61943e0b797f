package clientconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvRequiresBothValues(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvAnonKey, "")

	_, err := FromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvAPIURL)
	require.Contains(t, err.Error(), EnvAnonKey)

	t.Setenv(EnvAPIURL, "https://api.example.com")
	_, err = FromEnv()
	require.Error(t, err)

	t.Setenv(EnvAnonKey, "anon-key-123")
	in, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, Inputs{APIURL: "https://api.example.com", AnonKey: "anon-key-123"}, in)
}

func TestRenderEmitsVerbatimValues(t *testing.T) {
	got := Render(Inputs{APIURL: "https://api.example.com", AnonKey: "anon-key-123"})
	want := "// GENERATED CONFIG - DO NOT COMMIT\n" +
		"const API_URL = \"https://api.example.com\";\n" +
		"const ANON_KEY = \"anon-key-123\";\n"
	require.Equal(t, want, got)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontend", "js", "config.js")
	in := Inputs{APIURL: "https://api.example.com", AnonKey: "anon-key-123"}

	require.NoError(t, Write(path, in))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, Render(in), string(content))
}
