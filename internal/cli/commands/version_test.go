package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/lookgraph/internal/cli/output"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		info    BuildInfo
		wantOut []string
		wantErr bool
	}{
		{
			name:    "default version",
			info:    BuildInfo{Version: "0.1.0", BuildDate: "unknown", GitCommit: "unknown"},
			wantOut: []string{"lookgraph v0.1.0", "dependency graph", "commit unknown, built unknown"},
		},
		{
			name:    "release build",
			info:    BuildInfo{Version: "1.2.3", BuildDate: "2026-01-02", GitCommit: "abc1234"},
			wantOut: []string{"lookgraph v1.2.3", "commit abc1234", "built 2026-01-02"},
		},
		{
			name:    "dev version",
			info:    BuildInfo{Version: "dev"},
			wantOut: []string{"lookgraph vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.info)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			out := buf.String()
			for _, want := range tt.wantOut {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	info := BuildInfo{Version: "1.2.3", BuildDate: "2026-01-02", GitCommit: "abc1234"}
	buf := new(bytes.Buffer)
	r := output.NewRenderer(buf, buf, output.ModeJSON)
	ctx := context.WithValue(context.Background(), output.RendererKey(), r)

	cmd := NewVersionCommand(info)
	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("ExecuteContext() error = %v", err)
	}

	var got BuildInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, buf.String())
	}
	if got != info {
		t.Errorf("got %+v, want %+v", got, info)
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand(BuildInfo{Version: "test"})

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}
}
