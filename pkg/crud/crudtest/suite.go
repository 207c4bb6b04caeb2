// Package crudtest holds a conformance suite every crud.Backend must pass.
package crudtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// NewBackend returns an empty backend for one subtest.
type NewBackend func(t *testing.T) crud.Backend[types.Office]

// RunBackendSuite checks id assignment, ordering, trimming, and the no-op
// behaviour of Update and Delete on missing ids.
func RunBackendSuite(t *testing.T, newBackend NewBackend) {
	t.Helper()

	t.Run("first create gets id 1", func(t *testing.T) {
		b := newBackend(t)
		got, err := b.Create(types.Office{Name: "HQ", Domain: "hq.example.com"})
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)
	})

	t.Run("ids follow max plus one after deletes", func(t *testing.T) {
		b := newBackend(t)
		hq := mustCreate(t, b, "HQ", "hq.example.com")
		rnd := mustCreate(t, b, "R&D", "rnd.example.com")
		assert.Equal(t, 1, hq.ID)
		assert.Equal(t, 2, rnd.ID)

		require.NoError(t, b.Delete(1))
		list := mustList(t, b)
		require.Len(t, list, 1)
		assert.Equal(t, types.Office{ID: 2, Name: "R&D", Domain: "rnd.example.com"}, list[0])

		lab := mustCreate(t, b, "Lab", "lab.example.com")
		assert.Equal(t, 3, lab.ID, "deleted id 1 must not be reissued")
	})

	t.Run("create ignores caller id and trims fields", func(t *testing.T) {
		b := newBackend(t)
		got, err := b.Create(types.Office{ID: 99, Name: "  HQ ", Domain: " hq.example.com\t"})
		require.NoError(t, err)
		assert.Equal(t, types.Office{ID: 1, Name: "HQ", Domain: "hq.example.com"}, got)
		assert.Equal(t, []types.Office{got}, mustList(t, b))
	})

	t.Run("update replaces in place", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")
		mustCreate(t, b, "B", "b.example.com")
		mustCreate(t, b, "C", "c.example.com")

		require.NoError(t, b.Update(2, types.Office{ID: 2, Name: "Bee", Domain: "bee.example.com"}))

		list := mustList(t, b)
		require.Len(t, list, 3)
		assert.Equal(t, []string{"A", "Bee", "C"}, names(list))
		assert.Equal(t, "bee.example.com", list[1].Domain)
		assert.Equal(t, 2, list[1].ID)
	})

	t.Run("update forces the target id", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")
		require.NoError(t, b.Update(1, types.Office{ID: 42, Name: "Z", Domain: "z.example.com"}))

		got, err := b.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, "Z", got.Name)
	})

	t.Run("update of missing id is a no-op", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")
		before := mustList(t, b)

		require.NoError(t, b.Update(7, types.Office{ID: 7, Name: "X", Domain: "x.example.com"}))
		assert.Equal(t, before, mustList(t, b))
	})

	t.Run("delete removes exactly one", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")
		mustCreate(t, b, "B", "b.example.com")

		require.NoError(t, b.Delete(1))
		assert.Equal(t, []string{"B"}, names(mustList(t, b)))
	})

	t.Run("delete of missing id is a no-op", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")

		require.NoError(t, b.Delete(5))
		assert.Len(t, mustList(t, b), 1)
	})

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.Get(1)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("list is a snapshot", func(t *testing.T) {
		b := newBackend(t)
		mustCreate(t, b, "A", "a.example.com")
		snap := mustList(t, b)
		snap[0].Name = "mutated"

		got, err := b.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Name)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		b := newBackend(t)
		list := mustList(t, b)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func mustCreate(t *testing.T, b crud.Backend[types.Office], name, domain string) types.Office {
	t.Helper()
	o, err := b.Create(types.Office{Name: name, Domain: domain})
	require.NoError(t, err)
	return o
}

func mustList(t *testing.T, b crud.Backend[types.Office]) []types.Office {
	t.Helper()
	list, err := b.List()
	require.NoError(t, err)
	return list
}

func names(list []types.Office) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.Name)
	}
	return out
}
