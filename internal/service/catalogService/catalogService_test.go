package catalogService

import (
	"context"
	"errors"
	"testing"

	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service/catalogService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type catalogServiceSuite struct {
	suite.Suite

	mockCtrl *gomock.Controller
	api      *mocks.MockApi
	service  *CatalogService
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(catalogServiceSuite))
}

func (s *catalogServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *catalogServiceSuite) SetupTest() {
	s.api = mocks.NewMockApi(s.mockCtrl)
	s.service = New(s.api)
}

func (s *catalogServiceSuite) loadRows(rows []model.BookRow) {
	ctx := context.Background()
	s.api.EXPECT().GetBooks(ctx).Return(rows, nil)
	err := s.service.LoadCatalog(ctx)
	assert.Nil(s.T(), err)
}

func (s *catalogServiceSuite) Test_LoadCatalog_Success() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
	})

	rows := s.service.Rows()
	assert.Len(s.T(), rows, 1)
	assert.Equal(s.T(), model.BookRow{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99}, rows[0])
	assert.False(s.T(), rows[0].IsChecked)
	assert.Equal(s.T(), 0, rows[0].Quantity)
}

func (s *catalogServiceSuite) Test_LoadCatalog_ReplacesWholeRowSet() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "222", Title: "Geometry", Price: 29.99},
	})
	s.service.SetChecked("111", true)
	s.service.SetQuantity("111", 3)

	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
	})

	rows := s.service.Rows()
	assert.Len(s.T(), rows, 1)
	assert.False(s.T(), rows[0].IsChecked)
	assert.Equal(s.T(), 0, rows[0].Quantity)
}

func (s *catalogServiceSuite) Test_LoadCatalog_ErrorLeavesRowsUntouched() {
	ctx := context.Background()
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
	})

	s.api.EXPECT().GetBooks(ctx).Return(nil, errors.New("connection refused"))

	err := s.service.LoadCatalog(ctx)

	assert.NotNil(s.T(), err)
	assert.Len(s.T(), s.service.Rows(), 1)
}

func (s *catalogServiceSuite) Test_LoadCatalog_StaleResponseDiscarded() {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})

	gomock.InOrder(
		s.api.EXPECT().GetBooks(ctx).DoAndReturn(func(context.Context) ([]model.BookRow, error) {
			close(started)
			<-release
			return []model.BookRow{{Dbkey: 1, Isbn: "111", Title: "Stale", Price: 1}}, nil
		}),
		s.api.EXPECT().GetBooks(ctx).Return([]model.BookRow{{Dbkey: 2, Isbn: "222", Title: "Fresh", Price: 2}}, nil),
	)

	go func() {
		_ = s.service.LoadCatalog(ctx)
		close(firstDone)
	}()

	// second request is issued after the first, but completes before it
	<-started
	err := s.service.LoadCatalog(ctx)
	assert.Nil(s.T(), err)

	close(release)
	<-firstDone

	rows := s.service.Rows()
	assert.Len(s.T(), rows, 1)
	assert.Equal(s.T(), "Fresh", rows[0].Title)
}

func (s *catalogServiceSuite) Test_SetChecked_UnknownIsbnIsNoop() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
	})

	s.service.SetChecked("999", true)

	assert.False(s.T(), s.service.Rows()[0].IsChecked)
}

func (s *catalogServiceSuite) Test_SetChecked_AffectsExactlyOneRow() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "222", Title: "Geometry", Price: 29.99},
	})

	s.service.SetChecked("222", true)

	rows := s.service.Rows()
	assert.False(s.T(), rows[0].IsChecked)
	assert.True(s.T(), rows[1].IsChecked)
}

func (s *catalogServiceSuite) Test_SetChecked_DuplicateIsbnFirstMatchWins() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "111", Title: "Algebra reprint", Price: 39.99},
	})

	s.service.SetChecked("111", true)

	rows := s.service.Rows()
	assert.True(s.T(), rows[0].IsChecked)
	assert.False(s.T(), rows[1].IsChecked)
}

func (s *catalogServiceSuite) Test_SetQuantity_NoValidation() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
	})

	s.service.SetQuantity("111", -5)

	assert.Equal(s.T(), -5, s.service.Rows()[0].Quantity)
}

func (s *catalogServiceSuite) Test_SelectedBooks_OnlyCheckedRows() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "222", Title: "Geometry", Price: 29.99},
		{Dbkey: 3, Isbn: "333", Title: "Calculus", Price: 59.99},
	})
	s.service.SetChecked("111", true)
	s.service.SetQuantity("111", 2)
	s.service.SetChecked("333", true)
	s.service.SetQuantity("333", 1)

	selected := s.service.SelectedBooks()

	assert.Equal(s.T(), map[int]int{1: 2, 3: 1}, selected)
}

func (s *catalogServiceSuite) Test_SubmitToCart_SendsCheckedRows() {
	ctx := context.Background()
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "222", Title: "Geometry", Price: 29.99},
	})
	s.service.SetChecked("222", true)
	s.service.SetQuantity("222", 4)

	s.api.EXPECT().
		MoveToCart(ctx, 7, []model.SelectedBook{{BookDbkey: 2, CopiesSelected: 4}}).
		Return(nil)

	err := s.service.SubmitToCart(ctx, 7)

	assert.Nil(s.T(), err)
}

func (s *catalogServiceSuite) Test_SubmitToCart_SurfacesError() {
	ctx := context.Background()
	apiErr := errors.New("timeout")

	s.api.EXPECT().
		MoveToCart(ctx, 7, gomock.Any()).
		Return(apiErr)

	err := s.service.SubmitToCart(ctx, 7)

	assert.Equal(s.T(), apiErr, err)
}

func (s *catalogServiceSuite) Test_ClearChecked_ResetsEveryRow() {
	s.loadRows([]model.BookRow{
		{Dbkey: 1, Isbn: "111", Title: "Algebra", Price: 49.99},
		{Dbkey: 2, Isbn: "222", Title: "Geometry", Price: 29.99},
	})
	s.service.SetChecked("111", true)
	s.service.SetQuantity("222", 9)

	s.service.ClearChecked()
	s.service.ClearChecked() // idempotent

	for _, row := range s.service.Rows() {
		assert.False(s.T(), row.IsChecked)
		assert.Equal(s.T(), 0, row.Quantity)
	}
}
