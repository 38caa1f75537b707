package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthone/clinic-api/pkg/client"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("CLINICCTL_API_URL", "http://api.internal:8080")
	t.Setenv("CLINICCTL_SESSION_FILE", filepath.Join(t.TempDir(), "s.json"))
	t.Setenv("CLINICCTL_TIMEOUT", "3s")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8080", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "s.json", filepath.Base(cfg.SessionFile))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CLINICCTL_API_URL", "")
	t.Setenv("CLINICCTL_SESSION_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, filepath.Join("healthone", "session.json"),
		filepath.Join(filepath.Base(filepath.Dir(cfg.SessionFile)), filepath.Base(cfg.SessionFile)))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "clinic/nurse", describe(&client.User{Role: "clinic", UserType: "nurse"}))
	assert.Equal(t, "admin", describe(&client.User{Role: "admin"}))
}
