package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeTriangular(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewTriangularCommand(testRootOptions(format))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTriangularCommand_Text(t *testing.T) {
	out, err := executeTriangular(t, "text", "6")
	require.NoError(t, err)
	assert.Equal(t, "0 1 3 6 10 15\n", out)
}

func TestTriangularCommand_Zero(t *testing.T) {
	out, err := executeTriangular(t, "text", "0")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestTriangularCommand_JSON(t *testing.T) {
	out, err := executeTriangular(t, "json", "4")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   SequenceResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Data.N)
	assert.Equal(t, []float64{0, 1, 3, 6}, resp.Data.Sequence)
}

func TestTriangularCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		exitCode int
		code     string
	}{
		{"not a number", "five", ExitCommandError, ErrCodeUsage},
		{"fractional", "2.5", ExitFailure, ErrCodeInvalidInput},
		{"negative", "-3", ExitFailure, ErrCodeInvalidInput},
		{"infinite", "Inf", ExitFailure, ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeTriangular(t, "json", "--", tt.arg)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestTriangularCommand_MissingArg(t *testing.T) {
	_, err := executeTriangular(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}
