package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notekeeper/pkg/adapters/memory"
	"github.com/aretw0/notekeeper/pkg/core"
)

func newStore(t *testing.T) (*core.Store, *memory.Storage) {
	t.Helper()
	storage := memory.NewStorage("notes")
	return core.NewStore(storage, core.StoreConfig{}), storage
}

func TestStore_EnsureExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Empty Array", func(t *testing.T) {
		store, storage := newStore(t)

		assert.True(t, store.EnsureExists(ctx))
		assert.Equal(t, "[]", string(storage.Bytes()))
		assert.Equal(t, 1, storage.Writes())
	})

	t.Run("Leaves Existing Content Alone", func(t *testing.T) {
		storage := memory.NewStorageWith("notes", []byte(`[{"id":"1","name":"a"}]`))
		store := core.NewStore(storage, core.StoreConfig{})

		assert.True(t, store.EnsureExists(ctx))
		assert.Equal(t, 0, storage.Writes())
	})

	t.Run("Reports Creation Failure", func(t *testing.T) {
		store, storage := newStore(t)
		storage.WriteErr = errors.New("disk full")

		assert.False(t, store.EnsureExists(ctx))
	})

	t.Run("Reports Check Failure", func(t *testing.T) {
		store, storage := newStore(t)
		storage.ExistsErr = errors.New("permission denied")

		assert.False(t, store.EnsureExists(ctx))
	})
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		content string
		want    []core.Note
		wantErr error
	}{
		{name: "Empty Array", content: `[]`, want: []core.Note{}},
		{name: "Null", content: `null`, want: []core.Note{}},
		{name: "Compact", content: `[{"id":"1","name":"Groceries"}]`, want: []core.Note{{ID: "1", Name: "Groceries"}}},
		{name: "Pretty", content: "[\n  {\n    \"id\": \"1\",\n    \"name\": \"Groceries\"\n  }\n]\n", want: []core.Note{{ID: "1", Name: "Groceries"}}},
		{name: "Byte Order Mark", content: "\xEF\xBB\xBF[]", want: []core.Note{}},
		{name: "Unknown Fields Ignored", content: `[{"id":"1","name":"a","extra":true}]`, want: []core.Note{{ID: "1", Name: "a"}}},
		{name: "Empty File", content: ``, wantErr: core.ErrReadFailure},
		{name: "Invalid JSON", content: `[{"id":`, wantErr: core.ErrReadFailure},
		{name: "Object Instead of Array", content: `{"id":"1"}`, wantErr: core.ErrReadFailure},
		{name: "Numeric ID", content: `[{"id":1,"name":"a"}]`, wantErr: core.ErrReadFailure},
		{name: "Invalid UTF-8", content: "[{\"id\":\"\xff\",\"name\":\"a\"}]", wantErr: core.ErrReadFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			storage := memory.NewStorageWith("notes", []byte(tc.content))
			store := core.NewStore(storage, core.StoreConfig{})

			notes, err := store.Load(ctx)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, notes)
		})
	}

	t.Run("Unreadable Storage", func(t *testing.T) {
		store, storage := newStore(t)
		storage.ReadErr = errors.New("io error")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, core.ErrReadFailure)
	})

	t.Run("Uncreatable Storage", func(t *testing.T) {
		store, storage := newStore(t)
		storage.WriteErr = errors.New("read-only filesystem")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, core.ErrWriteFailure)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		store, _ := newStore(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store", func(t *testing.T) {
		store, _ := newStore(t)

		notes, err := store.List(ctx)
		assert.ErrorIs(t, err, core.ErrEmptyStore)
		assert.Empty(t, notes)
	})

	t.Run("Preserves Save Order", func(t *testing.T) {
		store, _ := newStore(t)

		const n = 25
		for i := 0; i < n; i++ {
			// IDs deliberately not in lexical order.
			require.NoError(t, store.Save(ctx, core.Note{ID: fmt.Sprintf("%d", n-i), Name: fmt.Sprintf("note %d", i)}))
		}

		notes, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, n)
		for i, note := range notes {
			assert.Equal(t, fmt.Sprintf("%d", n-i), note.ID)
			assert.Equal(t, fmt.Sprintf("note %d", i), note.Name)
		}
	})
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Store", func(t *testing.T) {
		store, _ := newStore(t)

		_, err := store.Get(ctx, "1")
		assert.ErrorIs(t, err, core.ErrEmptyStore)
	})

	t.Run("Not Found", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Save(ctx, core.Note{ID: "1", Name: "Groceries"}))

		_, err := store.Get(ctx, "2")
		assert.ErrorIs(t, err, core.ErrNotFound)
		assert.True(t, core.IsInformational(err))
	})

	t.Run("First Match Wins", func(t *testing.T) {
		// Hand-edited files may carry duplicates; the scan returns the first.
		storage := memory.NewStorageWith("notes", []byte(`[{"id":"1","name":"first"},{"id":"1","name":"second"}]`))
		store := core.NewStore(storage, core.StoreConfig{})

		n, err := store.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "first", n.Name)
	})
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		store, _ := newStore(t)
		in := core.Note{ID: "abc", Name: "Read the manual"}

		require.NoError(t, store.Save(ctx, in))

		out, err := store.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("Duplicate Leaves Store Unchanged", func(t *testing.T) {
		store, storage := newStore(t)
		require.NoError(t, store.Save(ctx, core.Note{ID: "1", Name: "Groceries"}))
		before := storage.Bytes()
		writes := storage.Writes()

		err := store.Save(ctx, core.Note{ID: "1", Name: "X"})
		assert.ErrorIs(t, err, core.ErrDuplicateID)
		assert.True(t, core.IsInformational(err))
		assert.Equal(t, before, storage.Bytes())
		assert.Equal(t, writes, storage.Writes())
	})

	t.Run("Write Failure", func(t *testing.T) {
		store, storage := newStore(t)
		require.True(t, store.EnsureExists(ctx))
		storage.WriteErr = errors.New("disk full")

		err := store.Save(ctx, core.Note{ID: "1", Name: "Groceries"})
		assert.ErrorIs(t, err, core.ErrWriteFailure)
		assert.False(t, core.IsInformational(err))
		assert.Equal(t, "[]", string(storage.Bytes()))
	})

	t.Run("Pretty Output", func(t *testing.T) {
		storage := memory.NewStorage("notes")
		store := core.NewStore(storage, core.StoreConfig{Pretty: true})

		require.NoError(t, store.Save(ctx, core.Note{ID: "1", Name: "Gym"}))
		assert.Equal(t, "[\n  {\n    \"id\": \"1\",\n    \"name\": \"Gym\"\n  }\n]", string(storage.Bytes()))
	})

	t.Run("Non ASCII Names", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Save(ctx, core.Note{ID: "ü", Name: "Einkäufe 🛒"}))

		n, err := store.Get(ctx, "ü")
		require.NoError(t, err)
		assert.Equal(t, "Einkäufe 🛒", n.Name)
	})
}

// TestStore_Walkthrough follows the documented Groceries/Gym scenario end to end.
func TestStore_Walkthrough(t *testing.T) {
	ctx := context.Background()
	store, storage := newStore(t)

	require.NoError(t, store.Save(ctx, core.Note{ID: "1", Name: "Groceries"}))
	require.NoError(t, store.Save(ctx, core.Note{ID: "2", Name: "Gym"}))

	notes, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.Note{{ID: "1", Name: "Groceries"}, {ID: "2", Name: "Gym"}}, notes)

	n, err := store.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, core.Note{ID: "1", Name: "Groceries"}, n)

	before := storage.Bytes()
	assert.ErrorIs(t, store.Save(ctx, core.Note{ID: "1", Name: "X"}), core.ErrDuplicateID)
	assert.Equal(t, before, storage.Bytes())

	state := store.State().(core.StoreState)
	assert.Equal(t, "notes", state.Name)
	assert.Equal(t, "notes.json", state.File)
	assert.True(t, state.Loaded)
	assert.Equal(t, 2, state.NoteCount)
}
