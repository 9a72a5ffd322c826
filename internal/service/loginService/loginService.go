package loginService

import (
	"bookstore_tgbot/internal/externalApi/storeApi"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service"
	"bookstore_tgbot/utils"
	"context"
	"errors"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=loginService.go -destination=mocks/mock_api.go -package=mocks

type Api interface {
	Login(ctx context.Context, username, password string) (model.ActiveUser, error)
}

const invalidCredentialsMsg = "Invalid credentials"

// LoginService owns the login state machine for one shopper:
// Idle -> Success | Failure via Login, Failure -> Success | Failure on
// retry, Success -> Idle only via Logout.
type LoginService struct {
	api Api

	mu    sync.Mutex
	state model.LoginState
}

func New(api Api) *LoginService {
	return &LoginService{api: api}
}

func (s *LoginService) Login(ctx context.Context, username, password string) error {
	op := "LoginService.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	user, err := s.api.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, storeApi.ErrInvalidCredentials) {
			slog.Warn("login failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("username", username))
			s.setState(model.LoginState{Status: model.LoginFailure, ErrMsg: invalidCredentialsMsg})
			return service.ErrInvalidCredentials
		}

		slog.Error("got error from api.Login", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		s.setState(model.LoginState{Status: model.LoginFailure, ErrMsg: err.Error()})
		return err
	}

	slog.Info(
		"login succeeded",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("userID", user.Id),
		slog.String("usertype", user.Usertype),
	)

	s.setState(model.LoginState{Status: model.LoginSuccess, User: user})

	return nil
}

// Logout resets the state machine to Idle and discards the active user.
func (s *LoginService) Logout() {
	s.setState(model.LoginState{Status: model.LoginIdle})
}

func (s *LoginService) State() model.LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *LoginService) setState(state model.LoginState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}
