// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stackboard Contributors

package board_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackboard/stackboard/internal/board"
)

type serviceMocks struct {
	boards *mockBoardRepository
	lists  *mockListRepository
	cards  *mockCardRepository
}

func newTestService() (*board.Service, serviceMocks) {
	m := serviceMocks{
		boards: new(mockBoardRepository),
		lists:  new(mockListRepository),
		cards:  new(mockCardRepository),
	}
	svc := board.NewService(board.ServiceConfig{
		BoardRepo: m.boards,
		ListRepo:  m.lists,
		CardRepo:  m.cards,
	})
	return svc, m
}

func TestService_Boards(t *testing.T) {
	ctx := context.Background()
	owner := ulid.Make()

	t.Run("create returns persisted board", func(t *testing.T) {
		svc, m := newTestService()
		m.boards.On("Create", ctx, mock.AnythingOfType("*board.Board")).Return(nil)

		b, err := svc.CreateBoard(ctx, owner, "Roadmap", "next quarter")
		require.NoError(t, err)
		assert.Equal(t, "Roadmap", b.Title)
		assert.Equal(t, owner, b.OwnerID)
		m.boards.AssertExpectations(t)
	})

	t.Run("create rejects empty title", func(t *testing.T) {
		svc, m := newTestService()

		_, err := svc.CreateBoard(ctx, owner, "", "desc")
		require.Error(t, err)
		var verr *board.ValidationError
		assert.True(t, errors.As(err, &verr))
		m.boards.AssertNotCalled(t, "Create")
	})

	t.Run("get denies non-owner without leaking data", func(t *testing.T) {
		svc, m := newTestService()
		b := &board.Board{ID: ulid.Make(), Title: "Private", OwnerID: owner}
		m.boards.On("Get", ctx, b.ID).Return(b, nil)

		got, err := svc.GetBoard(ctx, ulid.Make(), b.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrForbidden))
		assert.Nil(t, got)
	})

	t.Run("list for another owner is forbidden before any read", func(t *testing.T) {
		svc, m := newTestService()

		_, err := svc.ListBoards(ctx, ulid.Make(), owner)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrForbidden))
		m.boards.AssertNotCalled(t, "ListByOwner")
	})

	t.Run("empty patch returns board unchanged without writing", func(t *testing.T) {
		svc, m := newTestService()
		b := &board.Board{ID: ulid.Make(), Title: "Roadmap", OwnerID: owner}
		m.boards.On("Get", ctx, b.ID).Return(b, nil)

		got, err := svc.UpdateBoard(ctx, owner, b.ID, board.BoardPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Roadmap", got.Title)
		m.boards.AssertNotCalled(t, "Update")
	})

	t.Run("patch clears description but cannot clear title", func(t *testing.T) {
		svc, m := newTestService()
		b := &board.Board{ID: ulid.Make(), Title: "Roadmap", Description: "old", OwnerID: owner}
		m.boards.On("Get", ctx, b.ID).Return(b, nil)
		m.boards.On("Update", ctx, mock.AnythingOfType("*board.Board")).Return(nil)

		empty := ""
		got, err := svc.UpdateBoard(ctx, owner, b.ID, board.BoardPatch{Description: &empty})
		require.NoError(t, err)
		assert.Equal(t, "", got.Description)

		_, err = svc.UpdateBoard(ctx, owner, b.ID, board.BoardPatch{Title: &empty})
		require.Error(t, err)
		var verr *board.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("delete returns the removed snapshot", func(t *testing.T) {
		svc, m := newTestService()
		b := &board.Board{ID: ulid.Make(), Title: "Done", OwnerID: owner}
		m.boards.On("Get", ctx, b.ID).Return(b, nil)
		m.boards.On("Delete", ctx, b.ID).Return(nil)

		got, err := svc.DeleteBoard(ctx, owner, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("missing board is not found, not forbidden", func(t *testing.T) {
		svc, m := newTestService()
		id := ulid.Make()
		m.boards.On("Get", ctx, id).Return(nil, board.ErrNotFound)

		_, err := svc.GetBoard(ctx, owner, id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrNotFound))
		assert.False(t, errors.Is(err, board.ErrForbidden))
	})
}

func TestService_Lists(t *testing.T) {
	ctx := context.Background()
	owner := ulid.Make()
	parent := &board.Board{ID: ulid.Make(), Title: "Roadmap", OwnerID: owner}

	t.Run("create under owned board", func(t *testing.T) {
		svc, m := newTestService()
		m.boards.On("Get", ctx, parent.ID).Return(parent, nil)
		m.lists.On("Create", ctx, mock.AnythingOfType("*board.List")).Return(nil)

		l, err := svc.CreateList(ctx, owner, parent.ID, "Backlog")
		require.NoError(t, err)
		assert.Equal(t, parent.ID, l.BoardID)
	})

	t.Run("create under missing board is not found", func(t *testing.T) {
		svc, m := newTestService()
		ghost := ulid.Make()
		m.boards.On("Get", ctx, ghost).Return(nil, board.ErrNotFound)

		_, err := svc.CreateList(ctx, owner, ghost, "Backlog")
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrNotFound))
		m.lists.AssertNotCalled(t, "Create")
	})

	t.Run("create under someone else's board is forbidden", func(t *testing.T) {
		svc, m := newTestService()
		m.boards.On("Get", ctx, parent.ID).Return(parent, nil)

		_, err := svc.CreateList(ctx, ulid.Make(), parent.ID, "Backlog")
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrForbidden))
		m.lists.AssertNotCalled(t, "Create")
	})

	t.Run("update title through owned chain", func(t *testing.T) {
		svc, m := newTestService()
		l := &board.List{ID: ulid.Make(), Title: "Backlog", BoardID: parent.ID}
		m.lists.On("Get", ctx, l.ID).Return(l, nil)
		m.boards.On("Get", ctx, parent.ID).Return(parent, nil)
		m.lists.On("Update", ctx, mock.AnythingOfType("*board.List")).Return(nil)

		title := "In Progress"
		got, err := svc.UpdateList(ctx, owner, l.ID, board.ListPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "In Progress", got.Title)
	})
}

func TestService_Cards(t *testing.T) {
	ctx := context.Background()
	owner := ulid.Make()
	parentBoard := &board.Board{ID: ulid.Make(), Title: "Roadmap", OwnerID: owner}
	parentList := &board.List{ID: ulid.Make(), Title: "Backlog", BoardID: parentBoard.ID}

	t.Run("create under owned list", func(t *testing.T) {
		svc, m := newTestService()
		m.lists.On("Get", ctx, parentList.ID).Return(parentList, nil)
		m.boards.On("Get", ctx, parentBoard.ID).Return(parentBoard, nil)
		m.cards.On("Create", ctx, mock.AnythingOfType("*board.Card")).Return(nil)

		due := time.Now().Add(48 * time.Hour)
		c, err := svc.CreateCard(ctx, owner, parentList.ID, "Ship it", "final review", 3, &due)
		require.NoError(t, err)
		assert.Equal(t, parentList.ID, c.ListID)
		assert.Equal(t, 3, c.Position)
		require.NotNil(t, c.DueDate)
	})

	t.Run("create under missing list is not found", func(t *testing.T) {
		svc, m := newTestService()
		ghost := ulid.Make()
		m.lists.On("Get", ctx, ghost).Return(nil, board.ErrNotFound)

		_, err := svc.CreateCard(ctx, owner, ghost, "Ship it", "", 0, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrNotFound))
		m.cards.AssertNotCalled(t, "Create")
	})

	t.Run("negative position rejected", func(t *testing.T) {
		svc, m := newTestService()
		m.lists.On("Get", ctx, parentList.ID).Return(parentList, nil)
		m.boards.On("Get", ctx, parentBoard.ID).Return(parentBoard, nil)

		_, err := svc.CreateCard(ctx, owner, parentList.ID, "Ship it", "", -1, nil)
		require.Error(t, err)
		var verr *board.ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("non-owner cannot read a card", func(t *testing.T) {
		svc, m := newTestService()
		c := &board.Card{ID: ulid.Make(), Title: "Secret", ListID: parentList.ID}
		m.cards.On("Get", ctx, c.ID).Return(c, nil)
		m.lists.On("Get", ctx, parentList.ID).Return(parentList, nil)
		m.boards.On("Get", ctx, parentBoard.ID).Return(parentBoard, nil)

		got, err := svc.GetCard(ctx, ulid.Make(), c.ID)
		require.Error(t, err)
		assert.True(t, errors.Is(err, board.ErrForbidden))
		assert.Nil(t, got)
	})

	t.Run("delete returns the removed snapshot", func(t *testing.T) {
		svc, m := newTestService()
		c := &board.Card{ID: ulid.Make(), Title: "Old", ListID: parentList.ID}
		m.cards.On("Get", ctx, c.ID).Return(c, nil)
		m.lists.On("Get", ctx, parentList.ID).Return(parentList, nil)
		m.boards.On("Get", ctx, parentBoard.ID).Return(parentBoard, nil)
		m.cards.On("Delete", ctx, c.ID).Return(nil)

		got, err := svc.DeleteCard(ctx, owner, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
	})
}
