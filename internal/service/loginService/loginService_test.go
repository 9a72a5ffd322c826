package loginService

import (
	"context"
	"errors"
	"testing"

	"bookstore_tgbot/internal/externalApi/storeApi"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service"
	"bookstore_tgbot/internal/service/loginService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type loginServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	api      *mocks.MockApi
	service  *LoginService
}

func TestLoginServiceSuite(t *testing.T) {
	suite.Run(t, new(loginServiceSuite))
}

func (s *loginServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *loginServiceSuite) SetupTest() {
	s.api = mocks.NewMockApi(s.mockCtrl)
	s.service = New(s.api)
}

func (s *loginServiceSuite) Test_InitialState_Idle() {
	assert.Equal(s.T(), model.LoginIdle, s.service.State().Status)
}

func (s *loginServiceSuite) Test_Login_Success() {
	ctx := context.Background()
	user := model.ActiveUser{Id: 7, Username: "alice", Usertype: "student"}

	s.api.EXPECT().
		Login(ctx, "alice", "secret").
		Return(user, nil)

	err := s.service.Login(ctx, "alice", "secret")

	assert.Nil(s.T(), err)
	state := s.service.State()
	assert.Equal(s.T(), model.LoginSuccess, state.Status)
	assert.Equal(s.T(), user, state.User)
}

func (s *loginServiceSuite) Test_Login_InvalidCredentials() {
	ctx := context.Background()

	s.api.EXPECT().
		Login(ctx, "alice", "wrong").
		Return(model.ActiveUser{}, storeApi.ErrInvalidCredentials)

	err := s.service.Login(ctx, "alice", "wrong")

	assert.Equal(s.T(), service.ErrInvalidCredentials, err)
	state := s.service.State()
	assert.Equal(s.T(), model.LoginFailure, state.Status)
	assert.Equal(s.T(), "Invalid credentials", state.ErrMsg)
}

func (s *loginServiceSuite) Test_Login_TransportFault() {
	ctx := context.Background()
	apiErr := errors.New("connection refused")

	s.api.EXPECT().
		Login(ctx, "alice", "secret").
		Return(model.ActiveUser{}, apiErr)

	err := s.service.Login(ctx, "alice", "secret")

	assert.Equal(s.T(), apiErr, err)
	state := s.service.State()
	assert.Equal(s.T(), model.LoginFailure, state.Status)
	assert.Equal(s.T(), "connection refused", state.ErrMsg)
}

func (s *loginServiceSuite) Test_Login_RetryAfterFailure() {
	ctx := context.Background()
	user := model.ActiveUser{Id: 7, Username: "alice", Usertype: "student"}

	s.api.EXPECT().
		Login(ctx, "alice", "wrong").
		Return(model.ActiveUser{}, storeApi.ErrInvalidCredentials)
	s.api.EXPECT().
		Login(ctx, "alice", "secret").
		Return(user, nil)

	_ = s.service.Login(ctx, "alice", "wrong")
	err := s.service.Login(ctx, "alice", "secret")

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.LoginSuccess, s.service.State().Status)
}

func (s *loginServiceSuite) Test_Logout_ResetsToIdle() {
	ctx := context.Background()

	s.api.EXPECT().
		Login(ctx, "alice", "secret").
		Return(model.ActiveUser{Id: 7, Username: "alice", Usertype: "student"}, nil)

	_ = s.service.Login(ctx, "alice", "secret")
	s.service.Logout()

	state := s.service.State()
	assert.Equal(s.T(), model.LoginIdle, state.Status)
	assert.Equal(s.T(), model.ActiveUser{}, state.User)
}
