package commands

import (
	"context"

	"ferias-api/internal/domain/user"
	reqdto "ferias-api/internal/handler/dto/request"
	"ferias-api/internal/pkg/clock"
	"ferias-api/internal/pkg/errs"
	"ferias-api/internal/pkg/password"
	"ferias-api/internal/pkg/token"
	"ferias-api/internal/usecase/queries"
)

var (
	ErrUsuarioInvalido = errs.New("unknown user")
	ErrSenhaIncorreta  = errs.New("wrong password")
)

type LoginResult struct {
	Username string
	Token    string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore queries.UserReadStore
	clock     clock.Clock
}

func NewAuthCommands(readStore queries.UserReadStore, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// An empty username can never match a stored user.
		return nil, errs.Mark(err, ErrUsuarioInvalido)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Username: view.Username,
		Token:    token.Issue(view.Username, a.clock.Now()),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByUsername(ctx, credentials.Username())
	if err != nil {
		return nil, errs.Mark(err, ErrUsuarioInvalido)
	}

	if view == nil {
		return nil, ErrUsuarioInvalido
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password()); err != nil {
		return nil, errs.Mark(err, ErrSenhaIncorreta)
	}

	return view, nil
}
