package storeApi

import (
	"bookstore_tgbot/config"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/utils"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// StoreApi talks to the single bookstore endpoint. Every request is a
// form-encoded POST disambiguated by an "action" parameter.
type StoreApi struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *StoreApi {
	return &StoreApi{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Store.Timeout},
	}
}

const (
	actionLogin        = "login"
	actionGetBooks     = "get_books"
	actionMoveToCart   = "move_to_cart"
	actionGetCart      = "get_cart"
	actionPurchaseCart = "purchase_cart"
	actionGetPurchases = "get_purchases"
)

type loginResponse struct {
	Error bool             `json:"error"`
	User  model.ActiveUser `json:"user"`
}

type booksResponse struct {
	Data []struct {
		Dbkey          int     `json:"dbkey"`
		Isbn           string  `json:"isbn"`
		Title          string  `json:"title"`
		Price          float64 `json:"price"`
		TimesPurchased int     `json:"times_purchased"`
		TimesSold      int     `json:"times_sold"`
	} `json:"data"`
}

type tableResponse struct {
	Data []map[string]any `json:"data"`
}

func (s *StoreApi) postAction(ctx context.Context, params url.Values) ([]byte, error) {
	op := "StoreApi.postAction"
	rqID := utils.GetRequestIDFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Store.Url, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error(
			"request to store endpoint failed",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("action", params.Get("action")),
			slog.String("err", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error(
			"store endpoint returned bad status",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("action", params.Get("action")),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body err: %w", err)
	}

	slog.Debug(
		"store endpoint response",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("action", params.Get("action")),
		slog.String("body", string(body)),
	)

	return body, nil
}

func (s *StoreApi) Login(ctx context.Context, username, password string) (model.ActiveUser, error) {
	op := "StoreApi.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("action", actionLogin)
	params.Set("username", username)
	params.Set("password", password)

	body, err := s.postAction(ctx, params)
	if err != nil {
		return model.ActiveUser{}, err
	}

	var resp loginResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		slog.Error("can't unmarshall login response", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return model.ActiveUser{}, fmt.Errorf("unmarshall login response: %w", err)
	}

	if resp.Error {
		slog.Warn("login rejected by store", slog.String("op", op), slog.String("rqID", rqID), slog.String("username", username))
		return model.ActiveUser{}, ErrInvalidCredentials
	}

	return resp.User, nil
}

func (s *StoreApi) GetBooks(ctx context.Context) ([]model.BookRow, error) {
	op := "StoreApi.GetBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("action", actionGetBooks)

	body, err := s.postAction(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp booksResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		slog.Error("can't unmarshall books response", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
		return nil, fmt.Errorf("unmarshall books response: %w", err)
	}

	rows := make([]model.BookRow, 0, len(resp.Data))
	for _, item := range resp.Data {
		rows = append(rows, model.BookRow{
			Dbkey:          item.Dbkey,
			Isbn:           item.Isbn,
			Title:          item.Title,
			Price:          item.Price,
			TimesPurchased: item.TimesPurchased,
			TimesSold:      item.TimesSold,
		})
	}

	return rows, nil
}

func (s *StoreApi) MoveToCart(ctx context.Context, userID int, selected []model.SelectedBook) error {
	op := "StoreApi.MoveToCart"
	rqID := utils.GetRequestIDFromCtx(ctx)

	selectedJson, err := json.Marshal(selected)
	if err != nil {
		return fmt.Errorf("marshall selected books: %w", err)
	}

	params := url.Values{}
	params.Set("action", actionMoveToCart)
	params.Set("user_id", strconv.Itoa(userID))
	params.Set("selected_books", string(selectedJson))

	// response payload is opaque, postAction logs it on debug level
	if _, err = s.postAction(ctx, params); err != nil {
		return err
	}

	slog.Info(
		"books moved to cart",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("userID", userID),
		slog.Int("selectedCnt", len(selected)),
	)

	return nil
}

func (s *StoreApi) GetCart(ctx context.Context, userID int) ([]map[string]any, error) {
	return s.getTable(ctx, actionGetCart, userID)
}

func (s *StoreApi) GetPurchases(ctx context.Context, userID int) ([]map[string]any, error) {
	return s.getTable(ctx, actionGetPurchases, userID)
}

func (s *StoreApi) getTable(ctx context.Context, action string, userID int) ([]map[string]any, error) {
	op := "StoreApi.getTable"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("action", action)
	params.Set("user_id", strconv.Itoa(userID))

	body, err := s.postAction(ctx, params)
	if err != nil {
		return nil, err
	}

	var resp tableResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		slog.Error(
			"can't unmarshall table response",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("action", action),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("unmarshall %s response: %w", action, err)
	}

	return resp.Data, nil
}

func (s *StoreApi) PurchaseCart(ctx context.Context, userID int) error {
	op := "StoreApi.PurchaseCart"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("action", actionPurchaseCart)
	params.Set("user_id", strconv.Itoa(userID))

	if _, err := s.postAction(ctx, params); err != nil {
		return err
	}

	slog.Info("cart purchased", slog.String("op", op), slog.String("rqID", rqID), slog.Int("userID", userID))

	return nil
}
