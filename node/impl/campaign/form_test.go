package campaign

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormLoadFile(t *testing.T) {
	f := NewForm()

	data, err := f.LoadFile("a.txt", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	name, got := f.File()
	assert.Equal(t, "a.txt", name)
	assert.Equal(t, []byte("hello"), got)

	snap := f.Snapshot()
	assert.Equal(t, StageIdle, snap.Stage)
	assert.Equal(t, 5, snap.FileSize)
}

func TestFormLoadFileFailureKeepsPrevious(t *testing.T) {
	f := NewForm()
	_, err := f.LoadFile("a.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	rerr := errors.New("disk on fire")
	_, err = f.LoadFile("b.txt", iotest.ErrReader(rerr))
	require.ErrorIs(t, err, rerr)

	var fe *FileError
	require.True(t, errors.As(err, &fe))

	name, got := f.File()
	assert.Equal(t, "a.txt", name)
	assert.Equal(t, []byte("hello"), got)

	snap := f.Snapshot()
	assert.Equal(t, StageFailed, snap.Stage)
	assert.Equal(t, "campaign creation failed: disk on fire", snap.Message)
}

func TestStageText(t *testing.T) {
	for _, s := range []Stage{StageIdle, StageFileLoading, StageSubmitting, StageSucceeded, StageFailed} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var back Stage
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	var s Stage
	require.Error(t, s.UnmarshalText([]byte("sideways")))
}
