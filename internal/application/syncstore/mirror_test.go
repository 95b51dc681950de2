package syncstore

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vena/backend/internal/domain/crm"
)

func clientMirror() *Mirror[crm.Client] {
	return NewMirror(func(c crm.Client) uuid.UUID { return c.ID }, false)
}

func TestMirror_AddAndGet(t *testing.T) {
	m := clientMirror()
	c := crm.Client{ID: uuid.New(), Name: "Andi"}

	m.Add(c)

	got, ok := m.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Andi", got.Name)
	assert.Equal(t, 1, m.Len())
}

func TestMirror_GetMissing(t *testing.T) {
	m := clientMirror()

	_, ok := m.Get(uuid.New())
	assert.False(t, ok)
}

func TestMirror_SetReplacesExisting(t *testing.T) {
	m := clientMirror()
	c := crm.Client{ID: uuid.New(), Name: "Andi"}
	m.Add(c)

	c.Name = "Budi"
	ok := m.Set(c)

	require.True(t, ok)
	got, _ := m.Get(c.ID)
	assert.Equal(t, "Budi", got.Name)
	assert.Equal(t, 1, m.Len())
}

func TestMirror_SetMissingLeavesMirrorUntouched(t *testing.T) {
	m := clientMirror()
	m.Add(crm.Client{ID: uuid.New(), Name: "Andi"})

	ok := m.Set(crm.Client{ID: uuid.New(), Name: "Budi"})

	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestMirror_Remove(t *testing.T) {
	m := clientMirror()
	a := crm.Client{ID: uuid.New(), Name: "Andi"}
	b := crm.Client{ID: uuid.New(), Name: "Budi"}
	m.Add(a)
	m.Add(b)

	assert.True(t, m.Remove(a.ID))
	assert.False(t, m.Remove(a.ID))
	assert.Equal(t, 1, m.Len())

	_, ok := m.Get(a.ID)
	assert.False(t, ok)
}

func TestMirror_PrependOrdering(t *testing.T) {
	m := NewMirror(func(c crm.Client) uuid.UUID { return c.ID }, true)
	first := crm.Client{ID: uuid.New(), Name: "first"}
	second := crm.Client{ID: uuid.New(), Name: "second"}

	m.Add(first)
	m.Add(second)

	items := m.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Name)
	assert.Equal(t, "first", items[1].Name)
}

func TestMirror_AppendOrdering(t *testing.T) {
	m := clientMirror()
	first := crm.Client{ID: uuid.New(), Name: "first"}
	second := crm.Client{ID: uuid.New(), Name: "second"}

	m.Add(first)
	m.Add(second)

	items := m.Snapshot()
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
}

func TestMirror_SnapshotIsACopy(t *testing.T) {
	m := clientMirror()
	c := crm.Client{ID: uuid.New(), Name: "Andi"}
	m.Add(c)

	snap := m.Snapshot()
	snap[0].Name = "mutated"

	got, _ := m.Get(c.ID)
	assert.Equal(t, "Andi", got.Name)
}

func TestMirror_ReplaceNilYieldsEmpty(t *testing.T) {
	m := clientMirror()
	m.Add(crm.Client{ID: uuid.New()})

	m.Replace(nil)

	assert.Equal(t, 0, m.Len())
	assert.NotNil(t, m.Snapshot())
}

func TestMirror_Update(t *testing.T) {
	m := clientMirror()
	c := crm.Client{ID: uuid.New(), Name: "Andi"}
	m.Add(c)

	ok := m.Update(c.ID, func(in crm.Client) crm.Client {
		in.Name = "Citra"
		return in
	})

	require.True(t, ok)
	got, _ := m.Get(c.ID)
	assert.Equal(t, "Citra", got.Name)
}
