package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCheckEmpty(t *testing.T) {
	s := newSession()
	assert.Equal(t, sat, s.Check())
}

func TestSessionAssertAndCheck(t *testing.T) {
	s := newSession()

	s.Assert(lt(1, 2))
	assert.Equal(t, sat, s.Check())

	s.Assert(eq(1, 2))
	assert.Equal(t, unsat, s.Check())
}

func TestSessionPushPopRestoresState(t *testing.T) {
	s := newSession()
	s.Assert(lt(1, 2))

	s.Push()
	s.Assert(not(lt(1, 2)))
	assert.Equal(t, unsat, s.Check())
	s.Pop()

	assert.Equal(t, sat, s.Check())
}

func TestSessionPopOnBaseFrameIsNoop(t *testing.T) {
	s := newSession()
	s.Assert(lt(1, 2))
	s.Pop()
	s.Pop()
	assert.Equal(t, sat, s.Check())
}

func TestTermConstructors(t *testing.T) {
	assert.True(t, and(lt(1, 2), lt(2, 3))())
	assert.False(t, and(lt(1, 2), lt(3, 2))())
	assert.True(t, not(eq(1, 2))())
	assert.True(t, eq(7, 7)())
}
