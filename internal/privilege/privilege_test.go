package privilege

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestElevator_Wrap(t *testing.T) {
	t.Run("non-root gets sudo", func(t *testing.T) {
		name, args := NewElevatorWithEUID(1000).Wrap("apt", "install", "fish")
		assert.Equal(t, "sudo", name)
		assert.Equal(t, []string{"apt", "install", "fish"}, args)
	})

	t.Run("root runs directly", func(t *testing.T) {
		name, args := NewElevatorWithEUID(0).Wrap("apt", "install", "fish")
		assert.Equal(t, "apt", name)
		assert.Equal(t, []string{"install", "fish"}, args)
	})
}

func TestNewElevator(t *testing.T) {
	e := NewElevator()
	assert.Equal(t, unix.Geteuid() == 0, e.IsRoot())
}
