package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Credentials is the stored auth.json schema. Only display-relevant fields
// are consumed here; login itself happens elsewhere.
type Credentials struct {
	APIKey   string    `json:"api_key"`
	Email    string    `json:"email"`
	PlanType string    `json:"plan_type"`
	Updated  time.Time `json:"updated"`
}

// HasAPIKey reports whether an API key is stored.
func (c Credentials) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func authPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coder", "auth.json"), nil
}

// Load reads stored credentials. The second return is false when no
// credentials file exists; that is not an error.
func Load() (Credentials, bool, error) {
	path, err := authPath()
	if err != nil {
		return Credentials{}, false, err
	}
	return LoadFrom(path)
}

// LoadFrom reads credentials from an explicit path.
func LoadFrom(path string) (Credentials, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, false, nil
		}
		return Credentials{}, false, err
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, false, err
	}
	return creds, true, nil
}

// Save persists credentials with owner-only permissions.
func Save(creds Credentials) error {
	path, err := authPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	creds.Updated = time.Now()
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear removes any stored credentials.
func Clear() error {
	path, err := authPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
