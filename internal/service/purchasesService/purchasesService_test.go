package purchasesService

import (
	"context"
	"errors"
	"testing"

	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service/purchasesService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type purchasesServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	api      *mocks.MockApi
	service  *PurchasesService
}

func TestPurchasesServiceSuite(t *testing.T) {
	suite.Run(t, new(purchasesServiceSuite))
}

func (s *purchasesServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *purchasesServiceSuite) SetupTest() {
	s.api = mocks.NewMockApi(s.mockCtrl)
	s.service = New(s.api)
}

func (s *purchasesServiceSuite) Test_LoadTable_Success() {
	ctx := context.Background()

	s.api.EXPECT().
		GetPurchases(ctx, 7).
		Return([]map[string]any{
			{"isbn": "111", "title": "Algebra", "price": 49.99, "times_purchased": float64(3), "purchase_date": "2024-05-01"},
		}, nil)

	err := s.service.LoadTable(ctx, 7)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), model.Table{
		{"isbn", "title", "price", "times_purchased"},
		{"111", "Algebra", "49.99", "3"},
	}, s.service.Rows())
}

func (s *purchasesServiceSuite) Test_LoadTable_Error() {
	ctx := context.Background()
	apiErr := errors.New("connection refused")

	s.api.EXPECT().
		GetPurchases(ctx, 7).
		Return(nil, apiErr)

	err := s.service.LoadTable(ctx, 7)

	assert.Equal(s.T(), apiErr, err)
	assert.Len(s.T(), s.service.Rows(), 0)
}

func (s *purchasesServiceSuite) Test_LoadTable_ReplacesPriorTable() {
	ctx := context.Background()

	gomock.InOrder(
		s.api.EXPECT().
			GetPurchases(ctx, 7).
			Return([]map[string]any{{"isbn": "111", "title": "Algebra", "price": 49.99, "times_purchased": float64(1)}}, nil),
		s.api.EXPECT().
			GetPurchases(ctx, 7).
			Return([]map[string]any{}, nil),
	)

	_ = s.service.LoadTable(ctx, 7)
	_ = s.service.LoadTable(ctx, 7)

	assert.Len(s.T(), s.service.Rows(), 0)
}
