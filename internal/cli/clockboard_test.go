package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/zonebuilder/internal/wire"
)

const leedsDigest = "8558c81daf2e1efa581cb0342c9f8270843a7ba6e76a31d91548c7d1b736cb5e"

var leedsArgs = []string{
	"--lat", "53.8", "--lon", "-1.5",
	"--distances", "1000,3000",
	"--segments", "4",
	"--arc-step", "45",
	"--precision", "6",
}

func executeClockboard(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewClockboardCommand(testRootOptions(format))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestClockboardCommand_TextPayload(t *testing.T) {
	out, err := executeClockboard(t, "text", leedsArgs...)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "clockboard-leeds", []byte(out))
}

func TestClockboardCommand_JSON(t *testing.T) {
	out, err := executeClockboard(t, "json", leedsArgs...)
	require.NoError(t, err)

	var resp struct {
		Status string           `json:"status"`
		Data   ClockboardResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 8, resp.Data.Zones)
	assert.Equal(t, leedsDigest, resp.Data.Digest)
	assert.Equal(t, len(resp.Data.Payload), resp.Data.Bytes)
	assert.Equal(t, leedsDigest, wire.Digest(wire.ClockboardFormat, resp.Data.Payload))
}

func TestClockboardCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leeds.geojson")

	out, err := executeClockboard(t, "text", append(leedsArgs, "-o", path)...)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Wrote 8 zones to "+path)
	assert.Contains(t, out, leedsDigest)

	payload, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, leedsDigest, wire.Digest(wire.ClockboardFormat, payload))
}

func TestClockboardCommand_OutputFileWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "leeds.geojson")

	out, err := executeClockboard(t, "text", append(leedsArgs, "-o", path)...)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E007]")
}

func TestClockboardCommand_ParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
clockboard:
  center: {lat: 53.8, lon: -1.5}
  distances: [1000, 3000]
  segments: 4
  arc_step: 45
  precision: 6
`), 0644))

	out, err := executeClockboard(t, "json", "--params", path)
	require.NoError(t, err)
	assert.Contains(t, out, leedsDigest)
}

func TestClockboardCommand_FlagsOverrideParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.cue")
	require.NoError(t, os.WriteFile(path, []byte(`
clockboard: {
	center: {lat: 0, lon: 0}
	distances: [500]
	segments: 12
}
`), 0644))

	out, err := executeClockboard(t, "json", append([]string{"--params", path}, leedsArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, leedsDigest)
}

func TestClockboardCommand_Rings(t *testing.T) {
	out, err := executeClockboard(t, "json",
		"--lat", "0", "--lon", "0", "--rings", "3", "--scale", "100", "--segments", "6")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Zones   int `json:"zones"`
			Payload struct {
				Properties struct {
					Distances []float64 `json:"distances"`
				} `json:"properties"`
			} `json:"payload"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 18, resp.Data.Zones)
	assert.Equal(t, []float64{100, 300, 600}, resp.Data.Payload.Properties.Distances)
}

func TestClockboardCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		code     string
	}{
		{
			name:     "missing center",
			args:     []string{"--distances", "100"},
			exitCode: ExitCommandError,
			code:     ErrCodeUsage,
		},
		{
			name:     "decreasing distances",
			args:     []string{"--lat", "0", "--lon", "0", "--distances", "300,100"},
			exitCode: ExitFailure,
			code:     ErrCodeInvalidInput,
		},
		{
			name:     "latitude out of range",
			args:     []string{"--lat", "95", "--lon", "0"},
			exitCode: ExitFailure,
			code:     ErrCodeInvalidInput,
		},
		{
			name:     "zero segments",
			args:     []string{"--lat", "0", "--lon", "0", "--segments", "0"},
			exitCode: ExitFailure,
			code:     ErrCodeInvalidInput,
		},
		{
			name:     "zero rings",
			args:     []string{"--lat", "0", "--lon", "0", "--rings", "0"},
			exitCode: ExitFailure,
			code:     ErrCodeInvalidInput,
		},
		{
			name:     "missing params file",
			args:     []string{"--params", "/nonexistent/params.cue"},
			exitCode: ExitCommandError,
			code:     ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeClockboard(t, "json", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestClockboardCommand_BadParamsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clockboard:\n  radius: 3\n"), 0644))

	out, err := executeClockboard(t, "text", "--params", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E100]")
}

func TestClockboardCommand_DistancesExcludeRings(t *testing.T) {
	_, err := executeClockboard(t, "text", "--lat", "0", "--lon", "0", "--distances", "100", "--rings", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
