package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/adapters/memory"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts Absent", func(t *testing.T) {
		s := memory.NewStorage("notes")
		exists, err := s.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, "notes", s.Name())
	})

	t.Run("Write Then Read", func(t *testing.T) {
		s := memory.NewStorage("notes")
		require.NoError(t, s.Write(ctx, []byte("[]")))

		exists, err := s.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, exists)

		data, err := s.Read(ctx)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
		assert.Equal(t, 1, s.Writes())
	})

	t.Run("Read Returns A Copy", func(t *testing.T) {
		s := memory.NewStorageWith("notes", []byte("[]"))
		data, err := s.Read(ctx)
		require.NoError(t, err)
		data[0] = 'x'
		assert.Equal(t, "[]", string(s.Bytes()))
	})

	t.Run("Injected Failures", func(t *testing.T) {
		boom := errors.New("boom")
		s := memory.NewStorageWith("notes", []byte("[]"))
		s.ExistsErr, s.ReadErr, s.WriteErr = boom, boom, boom

		_, err := s.Exists(ctx)
		assert.ErrorIs(t, err, boom)
		_, err = s.Read(ctx)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, s.Write(ctx, []byte("[1]")), boom)
		assert.Equal(t, 0, s.Writes())
		assert.Equal(t, "[]", string(s.Bytes()))
	})

	t.Run("State", func(t *testing.T) {
		s := memory.NewStorageWith("notes", []byte("[]"))
		state := s.State().(map[string]any)
		assert.Equal(t, "notes", state["name"])
		assert.Equal(t, true, state["exists"])
		assert.Equal(t, 2, state["bytes"])
		assert.Equal(t, "memory", s.ComponentType())
	})
}
