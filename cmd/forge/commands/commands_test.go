package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/cmd/forge/commands"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
)

type mockApp struct {
	global      app.GlobalOptions
	called      string
	paths       []string
	compileOpts app.CompileOptions
	packageOpts app.PackageOptions
	cleanOpts   app.CleanOptions
	err         error
}

func (m *mockApp) Configure(opts app.GlobalOptions) {
	m.global = opts
}

func (m *mockApp) Serve(_ context.Context) error {
	m.called = "serve"
	return m.err
}

func (m *mockApp) Request(_ context.Context, paths []string) error {
	m.called = "request"
	m.paths = paths
	return m.err
}

func (m *mockApp) Compile(_ context.Context, paths []string, opts app.CompileOptions) error {
	m.called = "compile"
	m.paths = paths
	m.compileOpts = opts
	return m.err
}

func (m *mockApp) Package(_ context.Context, opts app.PackageOptions) error {
	m.called = "package"
	m.packageOpts = opts
	return m.err
}

func (m *mockApp) Maps(_ context.Context) error {
	m.called = "maps"
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.called = "clean"
	m.cleanOpts = opts
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "maps", "--config", "/srv/forge.yaml", "--verbose", "--json")
	require.NoError(t, err)

	assert.Equal(t, "maps", m.called)
	assert.Equal(t, app.GlobalOptions{ConfigPath: "/srv/forge.yaml", Verbose: true, JSON: true}, m.global)
}

func TestCommands_Serve(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "serve")
	require.NoError(t, err)
	assert.Equal(t, "serve", m.called)

	_, err = execute(t, &mockApp{}, "serve", "extra")
	require.Error(t, err)
}

func TestCommands_Request(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "request", "data://a.tex", "data://b.mat")
	require.NoError(t, err)
	assert.Equal(t, "request", m.called)
	assert.Equal(t, []string{"data://a.tex", "data://b.mat"}, m.paths)

	_, err = execute(t, &mockApp{}, "request")
	require.Error(t, err)
}

func TestCommands_Compile(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "compile", "--force", "data://a.tex")
		require.NoError(t, err)
		assert.Equal(t, "compile", m.called)
		assert.True(t, m.compileOpts.Force)
		assert.Equal(t, []string{"data://a.tex"}, m.paths)
	})

	t.Run("returns error on compile failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "compile", "data://a.tex")
		require.ErrorContains(t, err, "simulated error")
	})

	t.Run("requires a resource", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "compile")
		require.Error(t, err)
		assert.Empty(t, m.called)
	})
}

func TestCommands_Package(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "package", "--map", "data://maps/a.map", "-m", "data://maps/b.map")
	require.NoError(t, err)
	assert.Equal(t, "package", m.called)
	assert.Equal(t, []string{"data://maps/a.map", "data://maps/b.map"}, m.packageOpts.Maps)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{name: "default cleans everything", args: []string{"clean"}, want: app.CleanOptions{Ledger: true, Compiled: true}},
		{name: "ledger only", args: []string{"clean", "--ledger"}, want: app.CleanOptions{Ledger: true}},
		{name: "compiled only", args: []string{"clean", "--compiled"}, want: app.CleanOptions{Compiled: true}},
		{name: "both", args: []string{"clean", "-l", "--compiled"}, want: app.CleanOptions{Ledger: true, Compiled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.cleanOpts)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "forge version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "forge version "+build.Version)

	m := &mockApp{}
	out, err = execute(t, m, "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "forge version "+build.Version)
	assert.Empty(t, m.called)
}

func TestCommands_VerboseHasNoShorthand(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "maps", "--verbose")
	require.NoError(t, err)
	assert.True(t, m.global.Verbose)

	_, err = execute(t, &mockApp{}, "maps", "-v")
	require.Error(t, err)
}
