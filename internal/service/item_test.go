package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateForUser(t *testing.T) {
	items := newFakeItemRepo()
	svc := NewItemService(items)

	desc := "brass, art deco"
	got, err := svc.CreateForUser(context.Background(), 4, "Lamp", &desc)
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(4), got.OwnerID)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
}

func TestItemService_CreateForUser_UncheckedOwner(t *testing.T) {
	// No owner existence check happens at this layer; the insert goes
	// straight through and the FK constraint is the only guard.
	items := newFakeItemRepo()
	svc := NewItemService(items)

	got, err := svc.CreateForUser(context.Background(), 99999, "Lamp", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(99999), got.OwnerID)
}

func TestItemService_List(t *testing.T) {
	items := newFakeItemRepo()
	svc := NewItemService(items)

	for _, title := range []string{"Lamp", "Clock", "Vase"} {
		_, err := svc.CreateForUser(context.Background(), 1, title, nil)
		require.NoError(t, err)
	}

	got, err := svc.List(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Clock", got[0].Title)
}
