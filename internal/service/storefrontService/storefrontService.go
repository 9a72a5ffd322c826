package storefrontService

import (
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/service"
	"bookstore_tgbot/internal/service/cartService"
	"bookstore_tgbot/internal/service/catalogService"
	"bookstore_tgbot/internal/service/loginService"
	"bookstore_tgbot/internal/service/purchasesService"
	"bookstore_tgbot/utils"
	"context"
	"errors"
	"log/slog"
	"sync"
)

//go:generate mockgen -source=storefrontService.go -destination=mocks/mock_api.go -package=mocks

type Api interface {
	Login(ctx context.Context, username, password string) (model.ActiveUser, error)
	GetBooks(ctx context.Context) ([]model.BookRow, error)
	MoveToCart(ctx context.Context, userID int, selected []model.SelectedBook) error
	GetCart(ctx context.Context, userID int) ([]map[string]any, error)
	PurchaseCart(ctx context.Context, userID int) error
	GetPurchases(ctx context.Context, userID int) ([]map[string]any, error)
}

// Shopper bundles the per-session loaders. All three loaders are keyed by
// the user id carried in Login's state and are independent of each other.
type Shopper struct {
	Login     *loginService.LoginService
	Catalog   *catalogService.CatalogService
	Cart      *cartService.CartService
	Purchases *purchasesService.PurchasesService
}

// StorefrontService keeps one Shopper per chat. A Shopper is dropped on
// logout, so the next login starts from fresh loaders with no state carried
// over from the previous session.
type StorefrontService struct {
	api Api

	mu       sync.Mutex
	shoppers map[int64]*Shopper
}

func New(api Api) *StorefrontService {
	return &StorefrontService{
		api:      api,
		shoppers: make(map[int64]*Shopper),
	}
}

func (s *StorefrontService) Shopper(chatID int64) *Shopper {
	s.mu.Lock()
	defer s.mu.Unlock()

	shopper, ok := s.shoppers[chatID]
	if !ok {
		shopper = &Shopper{
			Login:     loginService.New(s.api),
			Catalog:   catalogService.New(s.api),
			Cart:      cartService.New(s.api),
			Purchases: purchasesService.New(s.api),
		}
		s.shoppers[chatID] = shopper
	}

	return shopper
}

func (s *StorefrontService) Logout(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shopper, ok := s.shoppers[chatID]; ok {
		shopper.Login.Logout()
		delete(s.shoppers, chatID)
	}
}

// UserID resolves the chat's authenticated user id.
func (s *StorefrontService) UserID(chatID int64) (int, error) {
	state := s.Shopper(chatID).Login.State()
	if state.Status != model.LoginSuccess {
		return 0, service.ErrNotLoggedIn
	}
	return state.User.Id, nil
}

// ReloadAll refetches catalog, cart and purchase history. It is the reload
// signal fired after every cart mutation (add-to-cart or checkout).
func (s *StorefrontService) ReloadAll(ctx context.Context, chatID int64) error {
	op := "StorefrontService.ReloadAll"
	rqID := utils.GetRequestIDFromCtx(ctx)

	userID, err := s.UserID(chatID)
	if err != nil {
		return err
	}

	shopper := s.Shopper(chatID)

	err = errors.Join(
		shopper.Catalog.LoadCatalog(ctx),
		shopper.Cart.LoadTable(ctx, userID),
		shopper.Purchases.LoadTable(ctx, userID),
	)
	if err != nil {
		slog.Error("reload after cart mutation failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return err
	}

	slog.Info("all loaders reloaded", slog.String("op", op), slog.String("rqID", rqID), slog.Int("userID", userID))

	return nil
}
