package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillRing_PushCurrent(t *testing.T) {
	var k KillRing[rune]
	assert.Nil(t, k.Current())
	assert.False(t, k.Rotate())

	k.Push([]rune("one"))
	k.Push(nil)
	k.Push([]rune("two"))
	assert.Equal(t, 2, k.Len())
	assert.Equal(t, "two", string(k.Current()))

	assert.True(t, k.Rotate())
	assert.Equal(t, "one", string(k.Current()))
	assert.True(t, k.Rotate())
	assert.Equal(t, "two", string(k.Current()))
}

func TestKillRing_CopiesRun(t *testing.T) {
	var k KillRing[int]
	run := []int{1, 2, 3}
	k.Push(run)
	run[0] = 9
	assert.Equal(t, []int{1, 2, 3}, k.Current())
}

func TestKillRing_Bounded(t *testing.T) {
	var k KillRing[rune]
	for i := 0; i < killRingMax+5; i++ {
		k.Push([]rune(fmt.Sprint(i)))
	}
	assert.Equal(t, killRingMax, k.Len())
	assert.Equal(t, fmt.Sprint(killRingMax+4), string(k.Current()))
}
