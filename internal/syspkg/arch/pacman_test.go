package arch

import (
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/shelly/internal/helpers"
	"github.com/quantmind-br/shelly/internal/logging"
	"github.com/quantmind-br/shelly/internal/privilege"
	"github.com/quantmind-br/shelly/internal/syspkg"
	"github.com/stretchr/testify/assert"
)

func newTestProvider(runner helpers.CommandRunner, opts syspkg.InstallOptions) *PacmanProvider {
	return NewPacmanProvider(syspkg.NewBase(runner, privilege.NewElevatorWithEUID(1000), logging.Nop(), opts))
}

func TestPacmanProvider_Refresh(t *testing.T) {
	mockRunner := &helpers.MockCommandRunner{}
	provider := newTestProvider(mockRunner, syspkg.InstallOptions{})

	t.Run("successful refresh", func(t *testing.T) {
		mockRunner.RunCommandInteractiveFunc = func(_ context.Context, name string, args ...string) error {
			assert.Equal(t, "sudo", name)
			assert.Equal(t, []string{"pacman", "-Sy"}, args)
			return nil
		}

		assert.NoError(t, provider.Refresh(context.Background()))
	})

	t.Run("failed refresh", func(t *testing.T) {
		mockRunner.RunCommandInteractiveFunc = func(_ context.Context, _ string, _ ...string) error {
			return errors.New("exit status 1")
		}

		err := provider.Refresh(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pacman refresh failed")
	})
}

func TestPacmanProvider_Install(t *testing.T) {
	t.Run("successful installation", func(t *testing.T) {
		mockRunner := &helpers.MockCommandRunner{}
		provider := newTestProvider(mockRunner, syspkg.InstallOptions{})

		mockRunner.RunCommandInteractiveFunc = func(_ context.Context, name string, args ...string) error {
			assert.Equal(t, "sudo", name)
			assert.Equal(t, []string{"pacman", "-S", "fish"}, args)
			return nil
		}

		assert.NoError(t, provider.Install(context.Background(), "fish"))
	})

	t.Run("assume yes adds noconfirm", func(t *testing.T) {
		mockRunner := &helpers.MockCommandRunner{}
		provider := newTestProvider(mockRunner, syspkg.InstallOptions{AssumeYes: true})

		assert.NoError(t, provider.Install(context.Background(), "fish"))
		assert.Equal(t, [][]string{{"sudo", "pacman", "-S", "--noconfirm", "fish"}}, mockRunner.Recorded())
	})

	t.Run("failed installation", func(t *testing.T) {
		mockRunner := &helpers.MockCommandRunner{
			RunCommandInteractiveFunc: func(_ context.Context, _ string, _ ...string) error {
				return errors.New("target not found: fish")
			},
		}
		provider := newTestProvider(mockRunner, syspkg.InstallOptions{})

		err := provider.Install(context.Background(), "fish")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "pacman installation failed")
	})
}

func TestPacmanProvider_Name(t *testing.T) {
	provider := newTestProvider(&helpers.MockCommandRunner{}, syspkg.InstallOptions{})
	assert.Equal(t, "pacman", provider.Name())
}
