package clientconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// Env var names for the two public client values. Both are safe to embed
// in browser code; neither grants more than anonymous access.
const (
	EnvAPIURL  = "PUBLIC_API_URL"
	EnvAnonKey = "PUBLIC_ANON_KEY"
)

// Inputs are the public values materialized into the generated client file.
type Inputs struct {
	APIURL  string
	AnonKey string
}

// FromEnv reads the writer inputs, erroring when either is absent. There
// are no defaults: a missing value is a build misconfiguration.
func FromEnv() (Inputs, error) {
	in := Inputs{
		APIURL:  os.Getenv(EnvAPIURL),
		AnonKey: os.Getenv(EnvAnonKey),
	}
	if in.APIURL == "" || in.AnonKey == "" {
		return Inputs{}, fmt.Errorf("missing %s or %s environment variables", EnvAPIURL, EnvAnonKey)
	}
	return in, nil
}

// Render produces the generated config file content. Values are written
// verbatim.
func Render(in Inputs) string {
	return fmt.Sprintf("// GENERATED CONFIG - DO NOT COMMIT\nconst API_URL = %q;\nconst ANON_KEY = %q;\n", in.APIURL, in.AnonKey)
}

// Write renders the config and writes it to path, creating parent
// directories as needed.
func Write(path string, in Inputs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Render(in)), 0o644)
}
