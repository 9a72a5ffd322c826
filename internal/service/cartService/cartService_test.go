package cartService

import (
	"context"
	"errors"
	"testing"

	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service/cartService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type cartServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	api      *mocks.MockApi
	service  *CartService
}

func TestCartServiceSuite(t *testing.T) {
	suite.Run(t, new(cartServiceSuite))
}

func (s *cartServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *cartServiceSuite) SetupTest() {
	s.api = mocks.NewMockApi(s.mockCtrl)
	s.service = New(s.api)
}

func (s *cartServiceSuite) Test_LoadTable_Success() {
	ctx := context.Background()

	s.api.EXPECT().
		GetCart(ctx, 7).
		Return([]map[string]any{
			{"isbn": "111", "title": "Algebra", "price": 49.99, "copies_selected": float64(2), "cart_dbkey": float64(5)},
			{"isbn": "222", "title": "Geometry", "price": 29.99, "copies_selected": float64(1), "cart_dbkey": float64(6)},
		}, nil)

	err := s.service.LoadTable(ctx, 7)

	assert.Nil(s.T(), err)
	assert.True(s.T(), s.service.FetchCompleted())

	table := s.service.Rows()
	assert.Equal(s.T(), model.Table{
		{"isbn", "title", "price", "copies_selected"},
		{"111", "Algebra", "49.99", "2"},
		{"222", "Geometry", "29.99", "1"},
	}, table)
}

func (s *cartServiceSuite) Test_LoadTable_EmptyData() {
	ctx := context.Background()

	s.api.EXPECT().
		GetCart(ctx, 7).
		Return([]map[string]any{}, nil)

	err := s.service.LoadTable(ctx, 7)

	assert.Nil(s.T(), err)
	assert.True(s.T(), s.service.FetchCompleted())
	assert.Len(s.T(), s.service.Rows(), 0)
}

func (s *cartServiceSuite) Test_LoadTable_ErrorNotCompleted() {
	ctx := context.Background()

	s.api.EXPECT().
		GetCart(ctx, 7).
		Return(nil, errors.New("connection refused"))

	err := s.service.LoadTable(ctx, 7)

	assert.NotNil(s.T(), err)
	assert.False(s.T(), s.service.FetchCompleted())
	assert.Len(s.T(), s.service.Rows(), 0)
}

func (s *cartServiceSuite) Test_EmptyDistinguishableFromNotLoaded() {
	ctx := context.Background()

	// not loaded yet: zero rows, not completed
	assert.False(s.T(), s.service.FetchCompleted())
	assert.Len(s.T(), s.service.Rows(), 0)

	s.api.EXPECT().
		GetCart(ctx, 7).
		Return([]map[string]any{}, nil)
	_ = s.service.LoadTable(ctx, 7)

	// genuinely empty: zero rows, completed
	assert.True(s.T(), s.service.FetchCompleted())
	assert.Len(s.T(), s.service.Rows(), 0)
}

func (s *cartServiceSuite) Test_Purchase_Success() {
	ctx := context.Background()

	s.api.EXPECT().
		PurchaseCart(ctx, 7).
		Return(nil)

	err := s.service.Purchase(ctx, 7)

	assert.Nil(s.T(), err)
}

func (s *cartServiceSuite) Test_Purchase_SurfacesError() {
	ctx := context.Background()
	apiErr := errors.New("timeout")

	s.api.EXPECT().
		PurchaseCart(ctx, 7).
		Return(apiErr)

	err := s.service.Purchase(ctx, 7)

	assert.Equal(s.T(), apiErr, err)
}

func (s *cartServiceSuite) Test_Clear_LocalOnly() {
	ctx := context.Background()

	s.api.EXPECT().
		GetCart(ctx, 7).
		Return([]map[string]any{{"isbn": "111", "title": "Algebra", "price": 49.99, "copies_selected": float64(2)}}, nil)
	_ = s.service.LoadTable(ctx, 7)

	// no api expectation: Clear must not contact the store
	s.service.Clear()

	assert.Len(s.T(), s.service.Rows(), 0)
	assert.False(s.T(), s.service.FetchCompleted())
}
