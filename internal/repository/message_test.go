package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSubmitAndList(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	first, err := repo.Submit(MessageInput{
		Name:    "Alex",
		Email:   "alex@example.com",
		Phone:   "555-0101",
		Subject: "Quote request",
		Message: "Looking to renovate a kitchen.",
	})
	require.NoError(t, err)
	assert.False(t, first.IsRead)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.Submit(MessageInput{Name: "Sam", Email: "sam@example.com", Message: "Hi"})
	require.NoError(t, err)

	messages, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, messages, 2)
}

func TestMessageListFilterByReadState(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	first, err := repo.Submit(MessageInput{Name: "Alex", Email: "alex@example.com", Message: "One"})
	require.NoError(t, err)
	_, err = repo.Submit(MessageInput{Name: "Sam", Email: "sam@example.com", Message: "Two"})
	require.NoError(t, err)

	_, err = repo.MarkRead(first.ID, true)
	require.NoError(t, err)

	unread, err := repo.List(boolPtr(false))
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Sam", unread[0].Name)

	read, err := repo.List(boolPtr(true))
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, "Alex", read[0].Name)

	count, err := repo.CountUnread()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMessageMarkReadToggles(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	msg, err := repo.Submit(MessageInput{Name: "Alex", Email: "alex@example.com", Message: "One"})
	require.NoError(t, err)

	updated, err := repo.MarkRead(msg.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	updated, err = repo.MarkRead(msg.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.IsRead)
}

func TestMessageMarkReadMissingRow(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	_, err := repo.MarkRead(5, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageMarkReadPropagatesStoreFailure(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	_, err := repo.Submit(MessageInput{Name: "Alex", Email: "alex@example.com", Message: "One"})
	require.NoError(t, err)

	closeStore(t, gdb)

	_, err = repo.MarkRead(1, true)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMessageSubmitPropagatesStoreFailure(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb)

	closeStore(t, gdb)

	_, err := repo.Submit(MessageInput{Name: "Alex", Email: "alex@example.com", Message: "One"})
	assert.Error(t, err)
}
