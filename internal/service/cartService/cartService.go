package cartService

import (
	"bookstore_tgbot/internal/converter/tabularConverter"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/utils"
	"context"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=cartService.go -destination=mocks/mock_api.go -package=mocks

type Api interface {
	GetCart(ctx context.Context, userID int) ([]map[string]any, error)
	PurchaseCart(ctx context.Context, userID int) error
}

// columns allowed into the cart table, in output order
var cartColumns = []string{"isbn", "title", "price", "copies_selected"}

// CartService owns the cart table. fetchCompleted distinguishes "loaded and
// genuinely empty" from "not loaded yet", which emptiness alone cannot.
type CartService struct {
	api Api

	mu             sync.Mutex
	table          model.Table
	fetchCompleted bool
	reqToken       uint64
}

func New(api Api) *CartService {
	return &CartService{api: api}
}

func (s *CartService) LoadTable(ctx context.Context, userID int) error {
	op := "CartService.LoadTable"
	rqID := utils.GetRequestIDFromCtx(ctx)

	s.mu.Lock()
	s.reqToken++
	token := s.reqToken
	s.fetchCompleted = false
	s.mu.Unlock()

	data, err := s.api.GetCart(ctx, userID)
	if err != nil {
		slog.Error("got error from api.GetCart", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.reqToken {
		slog.Debug("stale cart response discarded", slog.String("op", op), slog.String("rqID", rqID))
		return nil
	}

	s.table = tabularConverter.Project(data, cartColumns)
	s.fetchCompleted = true

	slog.Info("cart loaded", slog.String("op", op), slog.String("rqID", rqID), slog.Int("rowsCnt", len(data)))

	return nil
}

func (s *CartService) Purchase(ctx context.Context, userID int) error {
	op := "CartService.Purchase"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.api.PurchaseCart(ctx, userID); err != nil {
		slog.Error("got error from api.PurchaseCart", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	return nil
}

// Clear empties the local table without contacting the store. Callers are
// expected to follow up with a reload.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = nil
	s.fetchCompleted = false
}

func (s *CartService) Rows() model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make(model.Table, len(s.table))
	copy(table, s.table)

	return table
}

func (s *CartService) FetchCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchCompleted
}
