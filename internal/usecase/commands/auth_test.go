//go:build unit

package commands_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"ferias-api/internal/pkg/clock"
	"ferias-api/internal/pkg/errs"
	"ferias-api/internal/pkg/password"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"
	"ferias-api/tests/common/builder"
	queriesmock "ferias-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newSUT := func(t *testing.T) (commands.AuthCommands, *queriesmock.MockUserReadStore) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockUserReadStore(ctrl)
		return commands.NewAuthCommands(store, clock.NewMockClock(now)), store
	}

	storedUser := func(t *testing.T, username, pass string) (*queries.UserView, string) {
		t.Helper()
		hash, err := password.HashPassword(pass)
		require.NoError(t, err)
		return &queries.UserView{ID: uuid.New(), Username: username, CreatedAt: now}, hash
	}

	t.Run("success: issues an opaque token bound to username and login time", func(t *testing.T) {
		sut, store := newSUT(t)
		req := builder.NewAuthBuilder().BuildDTO()
		view, hash := storedUser(t, req.Username, req.Password)
		store.EXPECT().FindByUsername(gomock.Any(), req.Username).Return(view, hash, nil)

		result, err := sut.Login(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, req.Username, result.Username)
		decoded, err := base64.StdEncoding.DecodeString(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "maria.silva:1717243200000", string(decoded))
	})

	t.Run("unknown user fails as invalid user", func(t *testing.T) {
		sut, store := newSUT(t)
		req := builder.NewAuthBuilder().BuildDTO()
		store.EXPECT().FindByUsername(gomock.Any(), req.Username).Return(nil, "", errs.New("not found"))

		_, err := sut.Login(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrUsuarioInvalido)
	})

	t.Run("wrong password fails as wrong password", func(t *testing.T) {
		sut, store := newSUT(t)
		req := builder.NewAuthBuilder().WithPassword("wrong").BuildDTO()
		view, hash := storedUser(t, req.Username, "senha123")
		store.EXPECT().FindByUsername(gomock.Any(), req.Username).Return(view, hash, nil)

		_, err := sut.Login(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrSenhaIncorreta)
	})

	t.Run("empty username fails before the lookup", func(t *testing.T) {
		sut, _ := newSUT(t)
		req := builder.NewAuthBuilder().WithUsername("").BuildDTO()

		_, err := sut.Login(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrUsuarioInvalido)
	})

	t.Run("empty password against an unknown user still reads as invalid user", func(t *testing.T) {
		sut, store := newSUT(t)
		req := builder.NewAuthBuilder().WithPassword("").BuildDTO()
		store.EXPECT().FindByUsername(gomock.Any(), req.Username).Return(nil, "", errs.New("not found"))

		_, err := sut.Login(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrUsuarioInvalido)
	})

	t.Run("empty password against a known user reads as wrong password", func(t *testing.T) {
		sut, store := newSUT(t)
		req := builder.NewAuthBuilder().WithPassword("").BuildDTO()
		view, hash := storedUser(t, req.Username, "senha123")
		store.EXPECT().FindByUsername(gomock.Any(), req.Username).Return(view, hash, nil)

		_, err := sut.Login(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrSenhaIncorreta)
	})
}
