//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ferias-api/internal/domain/ferias"
	reqdto "ferias-api/internal/handler/dto/request"
	"ferias-api/internal/pkg/clock"
	"ferias-api/internal/pkg/errs"
	"ferias-api/internal/usecase/commands"
	"ferias-api/internal/usecase/queries"
	"ferias-api/tests/common/builder"
	commandsmock "ferias-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFeriasCommands_Create(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newSUT := func(t *testing.T) (commands.FeriasCommands, *commandsmock.MockFeriasRepository) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockFeriasRepository(ctrl)
		return commands.NewFeriasCommands(repo, clock.NewMockClock(now)), repo
	}

	t.Run("success: computed total reaches the repository", func(t *testing.T) {
		sut, repo := newSUT(t)
		req := builder.NewFeriasBuilder().BuildDTO()
		expected := builder.NewFeriasBuilder().BuildView()

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *ferias.Request) (*queries.FeriasView, error) {
				assert.Equal(t, 10, r.TotalDias())
				assert.Equal(t, now, r.CreatedAt())
				return expected, nil
			})

		view, err := sut.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, expected, view)
	})

	t.Run("missing nome short-circuits before the repository", func(t *testing.T) {
		sut, _ := newSUT(t)
		req := builder.NewFeriasBuilder().WithNome("").BuildDTO()

		_, err := sut.Create(context.Background(), req)
		assert.ErrorIs(t, err, ferias.ErrCamposObrigatorios)
	})

	t.Run("over-cap periods are rejected", func(t *testing.T) {
		sut, _ := newSUT(t)
		req := builder.NewFeriasBuilder().
			WithPeriodos(builder.Periodo("2024-07-01", "2024-08-15")).
			BuildDTO()

		_, err := sut.Create(context.Background(), req)
		assert.ErrorIs(t, err, ferias.ErrLimiteDias)
	})

	t.Run("malformed date is rejected before validation", func(t *testing.T) {
		sut, _ := newSUT(t)
		req := builder.NewFeriasBuilder().
			WithPeriodos(builder.Periodo("07/01/2024", "2024-07-10")).
			BuildDTO()

		_, err := sut.Create(context.Background(), req)
		assert.ErrorIs(t, err, reqdto.ErrDataInvalida)
	})

	t.Run("repository failures are marked as creation failures", func(t *testing.T) {
		sut, repo := newSUT(t)
		req := builder.NewFeriasBuilder().BuildDTO()
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errs.New("db down"))

		_, err := sut.Create(context.Background(), req)
		assert.ErrorIs(t, err, commands.ErrFeriasCreationFailed)
	})
}
