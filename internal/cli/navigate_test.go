package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/cli"
)

func TestNavigateCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "accepted", args: []string{"--page", "5", "--total-pages", "10", "--to", "6"}, want: "page 6\n"},
		{name: "same page", args: []string{"--page", "5", "--total-pages", "10", "--to", "5"}, want: "no-op\n"},
		{name: "past last", args: []string{"--page", "5", "--total-pages", "10", "--to", "11"}, want: "no-op\n"},
		{name: "before first", args: []string{"--page", "5", "--total-pages", "10", "--to", "0"}, want: "no-op\n"},
		{name: "next", args: []string{"--page", "5", "--total-pages", "10", "--step", "next"}, want: "page 6\n"},
		{name: "next on last", args: []string{"--page", "10", "--total-pages", "10", "--step", "next"}, want: "no-op\n"},
		{name: "previous", args: []string{"--page", "5", "--total-pages", "10", "--step", "previous"}, want: "page 4\n"},
		{name: "previous on first", args: []string{"--page", "1", "--total-pages", "10", "--step", "prev"}, want: "no-op\n"},
		{name: "first", args: []string{"--page", "5", "--total-pages", "10", "--step", "first"}, want: "page 1\n"},
		{name: "last", args: []string{"--page", "5", "--total-pages", "10", "--step", "LAST"}, want: "page 10\n"},
		{name: "last on single page", args: []string{"--page", "1", "--total-pages", "1", "--step", "last"}, want: "no-op\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			out, err := executeCmd(t, append([]string{"navigate"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNavigateCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no target", args: []string{"--page", "1", "--total-pages", "3"}, wantErr: cli.ErrNavigateTarget},
		{name: "both targets", args: []string{"--to", "2", "--step", "next", "--total-pages", "3"}, wantErr: cli.ErrNavigateTarget},
		{name: "unknown step", args: []string{"--step", "sideways", "--total-pages", "3"}, wantErr: cli.ErrUnknownStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)

			_, err := executeCmd(t, append([]string{"navigate"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNavigateCmd_JSON(t *testing.T) {
	isolateEnv(t)

	out, err := executeCmd(t, "navigate", "--page", "5", "--total-pages", "10", "--to", "11", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Accepted bool `json:"accepted"`
		NewPage  int  `json:"new_page"`
		State    struct {
			CurrentPage int `json:"current_page"`
			TotalPages  int `json:"total_pages"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Accepted)
	assert.Zero(t, got.NewPage)
	assert.Equal(t, 5, got.State.CurrentPage)
	assert.Equal(t, 10, got.State.TotalPages)
}

func TestNavigateCmd_StepSuggestion(t *testing.T) {
	isolateEnv(t)

	_, err := executeCmd(t, "navigate", "--step", "nxet", "--total-pages", "3")
	require.ErrorIs(t, err, cli.ErrUnknownStep)
	assert.Contains(t, err.Error(), `did you mean "next"?`)
}
