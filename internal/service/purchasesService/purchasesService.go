package purchasesService

import (
	"bookstore_tgbot/internal/converter/tabularConverter"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/utils"
	"context"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=purchasesService.go -destination=mocks/mock_api.go -package=mocks

type Api interface {
	GetPurchases(ctx context.Context, userID int) ([]map[string]any, error)
}

var purchasesColumns = []string{"isbn", "title", "price", "times_purchased"}

// PurchasesService owns the read-only purchase history table.
type PurchasesService struct {
	api Api

	mu       sync.Mutex
	table    model.Table
	reqToken uint64
}

func New(api Api) *PurchasesService {
	return &PurchasesService{api: api}
}

func (s *PurchasesService) LoadTable(ctx context.Context, userID int) error {
	op := "PurchasesService.LoadTable"
	rqID := utils.GetRequestIDFromCtx(ctx)

	s.mu.Lock()
	s.reqToken++
	token := s.reqToken
	s.mu.Unlock()

	data, err := s.api.GetPurchases(ctx, userID)
	if err != nil {
		slog.Error("got error from api.GetPurchases", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.reqToken {
		slog.Debug("stale purchases response discarded", slog.String("op", op), slog.String("rqID", rqID))
		return nil
	}

	s.table = tabularConverter.Project(data, purchasesColumns)

	slog.Info("purchases loaded", slog.String("op", op), slog.String("rqID", rqID), slog.Int("rowsCnt", len(data)))

	return nil
}

func (s *PurchasesService) Rows() model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := make(model.Table, len(s.table))
	copy(table, s.table)

	return table
}
