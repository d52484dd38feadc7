// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		dir        string // relative to testdata, empty means use t.TempDir()
		configPath string
		required   bool
		environ    []string
		wantErr    error
		wantInput  string // only checked if wantErr is nil
		wantOutput string
		wantBounds bool
	}{
		{
			name:      "no config file",
			dir:       "",
			wantInput: "",
		},
		{
			name:     "required config missing",
			dir:      "",
			required: true,
			wantErr:  os.ErrNotExist,
		},
		{
			name:    "invalid config",
			dir:     "testdata/invalid-config",
			wantErr: ErrInvalidConfig,
		},
		{
			name:       "valid",
			dir:        "testdata/valid",
			wantInput:  "openapi.yaml",
			wantOutput: "gen/schemas.ts",
		},
		{
			name:       "environment over file",
			dir:        "testdata/valid",
			environ:    []string{"OPENAPI2ZOD_OUTPUT=other.ts"},
			wantInput:  "openapi.yaml",
			wantOutput: "other.ts",
		},
		{
			name:       "dotenv",
			dir:        "testdata/dotenv",
			wantInput:  "from-dotenv.yaml",
			wantBounds: true,
		},
		{
			name:       "explicit config path",
			dir:        "testdata",
			configPath: "valid/.openapi2zod.yaml",
			required:   true,
			wantInput:  "openapi.yaml",
			wantOutput: "gen/schemas.ts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.dir != "" {
				var err error
				dir, err = filepath.Abs(tt.dir)
				require.NoError(t, err)
			}

			ctx, err := Load(context.Background(), dir, tt.configPath, tt.required, tt.environ)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			sess := From(ctx)
			require.NotNil(t, sess)
			assert.Equal(t, dir, sess.Dir)
			assert.Equal(t, tt.wantInput, sess.Config.Input)
			assert.Equal(t, tt.wantOutput, sess.Config.Output)
			assert.Equal(t, tt.wantBounds, sess.Config.IntegerBounds)
			assert.Equal(t, "zod", sess.Config.Target)
		})
	}
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func TestContext_Path(t *testing.T) {
	c := &Context{Dir: "/work"}
	assert.Equal(t, filepath.Join("/work", "api.yaml"), c.Path("api.yaml"))
	assert.Equal(t, "/abs/api.yaml", c.Path("/abs/api.yaml"))
	assert.Equal(t, "", c.Path(""))
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	dir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)
	ctx, err := Load(context.Background(), dir, "", false, nil)
	require.NoError(t, err)
	cmd.SetContext(ctx)

	sess, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, "openapi.yaml", sess.Config.Input)
}

func TestPreRunLoad_WithCommandExecution(t *testing.T) {
	testDir, err := filepath.Abs("testdata/valid")
	require.NoError(t, err)

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(testDir))

	var configPath string
	var got *Context
	cmd := &cobra.Command{
		Use:     "test",
		PreRunE: PreRunLoad(&configPath, nil),
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = FromCommand(cmd)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file")
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.NotNil(t, got)
	assert.Equal(t, "gen/schemas.ts", got.Config.Output)
}
