package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lancelocker.dev/internal/models"
)

const cliLocker = `{
  "profile": {"name": "Ada"},
  "projects": [
    {"title": "Zeta Probe", "tags": ["CNC", "Metrology"], "facts": [["Machine", "DMU 50"]]},
    {"title": "alpha bracket", "tags": ["CNC"]},
    {"id": "weld", "title": "Weld Cell", "tags": ["Welding"]}
  ]
}`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	// keep a stray ./config.yaml out of the run
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func writeCLILocker(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locker.json")
	require.NoError(t, os.WriteFile(path, []byte(cliLocker), 0o644))
	return path
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	path := writeCLILocker(t)

	var locker models.Locker
	require.NoError(t, json.Unmarshal([]byte(runCLI(t, "normalize", "--locker", path)), &locker))

	require.Equal(t, "Ada", locker.Profile.Name)
	require.Equal(t, "Manufacturing & Mechanical Engineering Portfolio", locker.Profile.Tagline)
	require.Len(t, locker.Projects, 3)
	require.Equal(t, "zeta_probe", locker.Projects[0].ID)
	require.Equal(t, []models.Fact{{Key: "Machine", Value: "DMU 50"}}, locker.Projects[0].Facts)
	require.Equal(t, []string{}, locker.Projects[1].Images)
}

func TestNormalizeWritesFile(t *testing.T) {
	path := writeCLILocker(t)
	out := filepath.Join(t.TempDir(), "normalized.json")

	require.Empty(t, runCLI(t, "normalize", "--locker", path, "--out", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), `"id": "alpha_bracket"`)
}

func TestNormalizeMissingLockerPrintsExample(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	var locker models.Locker
	require.NoError(t, json.Unmarshal([]byte(runCLI(t, "normalize", "--locker", missing)), &locker))
	require.Equal(t, "Lance", locker.Profile.Name)
	require.Equal(t, "example_project", locker.Projects[0].ID)
}

func TestSearch(t *testing.T) {
	path := writeCLILocker(t)

	require.Equal(t,
		"zeta_probe\tZeta Probe\nalpha_bracket\talpha bracket\n",
		runCLI(t, "search", "--locker", path, "--tag", "CNC"),
	)
	require.Equal(t,
		"alpha_bracket\talpha bracket\nzeta_probe\tZeta Probe\n",
		runCLI(t, "search", "--locker", path, "--tag", "CNC", "--sort", "title"),
	)
	require.Equal(t,
		"zeta_probe\tZeta Probe\n",
		runCLI(t, "search", "--locker", path, "dmu", "50"),
	)
	require.Empty(t, runCLI(t, "search", "--locker", path, "--tag", "CNC", "--tag", "Welding"))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
