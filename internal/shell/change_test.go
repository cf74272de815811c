package shell

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/quantmind-br/shelly/internal/logging"
	"github.com/quantmind-br/shelly/internal/ui"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChanger(t *testing.T, shells string, runner *helpers.MockCommandRunner) (*Changer, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	fs := afero.NewMemMapFs()
	if shells != "" {
		require.NoError(t, afero.WriteFile(fs, ShellsFile, []byte(shells), 0644))
	}

	var out, errOut bytes.Buffer
	printer := ui.NewPrinter(&out, &errOut)
	return NewChanger(runner, fs, printer, logging.Nop(), "/usr/bin/fish"), &errOut
}

func TestChanger_Change(t *testing.T) {
	t.Run("runs chsh with fish path", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{}
		changer, errOut := newTestChanger(t, "/bin/bash\n/usr/bin/fish\n", runner)

		require.NoError(t, changer.Change(context.Background()))
		assert.Equal(t, [][]string{{"chsh", "-s", "/usr/bin/fish"}}, runner.Recorded())
		assert.Empty(t, errOut.String())
	})

	t.Run("warns when fish is not a listed shell", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{}
		changer, errOut := newTestChanger(t, "/bin/bash\n", runner)

		require.NoError(t, changer.Change(context.Background()))
		assert.Contains(t, errOut.String(), "/usr/bin/fish is not listed in /etc/shells")
		assert.Len(t, runner.Recorded(), 1)
	})

	t.Run("missing shells file does not block chsh", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{}
		changer, errOut := newTestChanger(t, "", runner)

		require.NoError(t, changer.Change(context.Background()))
		assert.Empty(t, errOut.String())
		assert.Len(t, runner.Recorded(), 1)
	})

	t.Run("chsh failure is returned", func(t *testing.T) {
		runner := &helpers.MockCommandRunner{
			RunCommandInteractiveFunc: func(_ context.Context, _ string, _ ...string) error {
				return errors.New("exit status 1")
			},
		}
		changer, _ := newTestChanger(t, "/usr/bin/fish\n", runner)

		err := changer.Change(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "change default shell to /usr/bin/fish")
	})
}

func TestIsListed(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ShellsFile, []byte("# comment\n/bin/sh\n/usr/bin/fish\n"), 0644))

	listed, err := IsListed(fs, "/usr/bin/fish")
	require.NoError(t, err)
	assert.True(t, listed)

	listed, err = IsListed(fs, "/usr/local/bin/fish")
	require.NoError(t, err)
	assert.False(t, listed)

	_, err = IsListed(afero.NewMemMapFs(), "/usr/bin/fish")
	assert.Error(t, err)
}
