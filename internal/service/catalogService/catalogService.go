package catalogService

import (
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/utils"
	"context"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=catalogService.go -destination=mocks/mock_api.go -package=mocks

type Api interface {
	GetBooks(ctx context.Context) ([]model.BookRow, error)
	MoveToCart(ctx context.Context, userID int, selected []model.SelectedBook) error
}

// CatalogService exclusively owns the in-memory catalog rows. Callers only
// ever see copies; all mutation goes through the narrow API below.
type CatalogService struct {
	api Api

	mu       sync.Mutex
	rows     []model.BookRow
	reqToken uint64
}

func New(api Api) *CatalogService {
	return &CatalogService{api: api}
}

// LoadCatalog replaces the whole row set with freshly fetched rows. Every
// fresh row starts unchecked with quantity 0. A response that lost the race
// to a later LoadCatalog call is discarded.
func (s *CatalogService) LoadCatalog(ctx context.Context) error {
	op := "CatalogService.LoadCatalog"
	rqID := utils.GetRequestIDFromCtx(ctx)

	s.mu.Lock()
	s.reqToken++
	token := s.reqToken
	s.mu.Unlock()

	rows, err := s.api.GetBooks(ctx)
	if err != nil {
		slog.Error("got error from api.GetBooks", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.reqToken {
		slog.Debug("stale catalog response discarded", slog.String("op", op), slog.String("rqID", rqID))
		return nil
	}

	s.rows = rows

	slog.Info("catalog loaded", slog.String("op", op), slog.String("rqID", rqID), slog.Int("rowsCnt", len(rows)))

	return nil
}

// SetChecked flips the selection flag on the first row matching isbn.
// Unknown isbn is a no-op.
func (s *CatalogService) SetChecked(isbn string, checked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].Isbn == isbn {
			s.rows[i].IsChecked = checked
			return
		}
	}
}

// SetQuantity stores the requested quantity as-is on the first row matching
// isbn, without validation. Unknown isbn is a no-op.
func (s *CatalogService) SetQuantity(isbn string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].Isbn == isbn {
			s.rows[i].Quantity = quantity
			return
		}
	}
}

// SelectedBooks derives dbkey -> requested quantity for checked rows only.
func (s *CatalogService) SelectedBooks() map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make(map[int]int)
	for _, row := range s.rows {
		if row.IsChecked {
			selected[row.Dbkey] = row.Quantity
		}
	}

	return selected
}

// SubmitToCart posts the current selection. Clearing the checked state
// afterwards is the caller's responsibility.
func (s *CatalogService) SubmitToCart(ctx context.Context, userID int) error {
	op := "CatalogService.SubmitToCart"
	rqID := utils.GetRequestIDFromCtx(ctx)

	s.mu.Lock()
	selected := make([]model.SelectedBook, 0)
	for _, row := range s.rows {
		if row.IsChecked {
			selected = append(selected, model.SelectedBook{BookDbkey: row.Dbkey, CopiesSelected: row.Quantity})
		}
	}
	s.mu.Unlock()

	if err := s.api.MoveToCart(ctx, userID, selected); err != nil {
		slog.Error("got error from api.MoveToCart", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	return nil
}

// ClearChecked resets selection state on every row, checked or not.
func (s *CatalogService) ClearChecked() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		s.rows[i].IsChecked = false
		s.rows[i].Quantity = 0
	}
}

// Rows returns a snapshot copy of the catalog rows.
func (s *CatalogService) Rows() []model.BookRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]model.BookRow, len(s.rows))
	copy(rows, s.rows)

	return rows
}
