package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bookstore_tgbot/config"
	"bookstore_tgbot/data/session"
	"bookstore_tgbot/internal/converter/telebotConverter"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/model/tg/tgCallback"
	"bookstore_tgbot/internal/service"
	"bookstore_tgbot/internal/service/storefrontService"
	"bookstore_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type Storefront interface {
	Shopper(chatID int64) *storefrontService.Shopper
	Logout(chatID int64)
	UserID(chatID int64) (int, error)
	ReloadAll(ctx context.Context, chatID int64) error
}

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
	DeleteSession(ctx context.Context, chatID int64) error
}

type Mailer interface {
	SendReceipt(ctx context.Context, to string, cart model.Table) error
}

type Controller struct {
	cfg        *config.Config
	storefront Storefront
	session    Session
	mailer     Mailer
}

func NewController(cfg *config.Config, storefront Storefront, session Session, mailer Mailer) *Controller {
	return &Controller{
		cfg:        cfg,
		storefront: storefront,
		session:    session,
		mailer:     mailer,
	}
}

func (ctrl *Controller) getSessionFromTeleCtxOrStorage(ctx context.Context, c tele.Context) (model.Session, error) {
	op := "Controller.getSessionFromTeleCtxOrStorage"
	chatSession, ok := c.Get("session").(model.Session)
	if ok {
		return chatSession, nil
	}

	rqID := utils.GetRequestIDFromCtx(ctx)
	chatSession, err := ctrl.session.GetSession(ctx, c.Chat().ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return model.Session{}, nil
		}
		slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, err
	}
	return chatSession, nil
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

func (ctrl *Controller) Start(c tele.Context) error {
	return c.Reply(welcomeMsg)
}

func (ctrl *Controller) Help(c tele.Context) error {
	return c.Reply(helpMsg)
}

// InitLogin starts the username/password dialogue.
func (ctrl *Controller) InitLogin(c tele.Context) error {
	op := "Controller.InitLogin"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingUsername
	chatSession.Username = ""
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(usernamePromptMsg)
}

func (ctrl *Controller) ProcessEnterUsername(c tele.Context) error {
	op := "Controller.ProcessEnterUsername"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Username = strings.TrimSpace(c.Message().Text)
	chatSession.Action = model.ExpectingPassword
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(passwordPromptMsg)
}

func (ctrl *Controller) ProcessEnterPassword(c tele.Context) error {
	op := "Controller.ProcessEnterPassword"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	username := chatSession.Username
	password := c.Message().Text

	// the password should not stay readable in the chat
	if err = c.Delete(); err != nil {
		slog.Warn("can't delete password message", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	chatSession.Username = ""
	chatSession.Action = model.DefaultAction
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	if err = shopper.Login.Login(ctx, username, password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Send(invalidCredentialsMsg)
		}
		slog.Error("got error from loginService.Login", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	state := shopper.Login.State()
	if err = c.Send(fmt.Sprintf("Hello, %s!", state.User.Username)); err != nil {
		return err
	}

	return ctrl.sendCatalog(ctx, c, false)
}

func (ctrl *Controller) ShowCatalog(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)
	return ctrl.sendCatalog(ctx, c, true)
}

func (ctrl *Controller) sendCatalog(ctx context.Context, c tele.Context, edit bool) error {
	op := "Controller.sendCatalog"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if _, err := ctrl.storefront.UserID(c.Chat().ID); err != nil {
		return ctrl.sendAutoDeleteMsg(c, notLoggedInMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	if err := shopper.Catalog.LoadCatalog(ctx); err != nil {
		slog.Error("got error from catalogService.LoadCatalog", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	text, markup := telebotConverter.CatalogPage(shopper.Catalog.Rows())
	if edit {
		return c.Edit(text, markup)
	}
	return c.Send(text, markup)
}

func (ctrl *Controller) ToggleBook(c tele.Context) error {
	isbn := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.ToggleBook))

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	for _, row := range shopper.Catalog.Rows() {
		if row.Isbn == isbn {
			shopper.Catalog.SetChecked(isbn, !row.IsChecked)
			break
		}
	}

	text, markup := telebotConverter.CatalogPage(shopper.Catalog.Rows())
	return c.Edit(text, markup)
}

func (ctrl *Controller) InitEnterQuantity(c tele.Context) error {
	op := "Controller.InitEnterQuantity"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	isbn := strings.TrimPrefix(c.Callback().Data, fmt.Sprintf("\f%s", tgCallback.EnterQuantity))

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.PendingIsbn = isbn
	chatSession.Action = model.ExpectingQuantity
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(quantityPromptMsg)
}

func (ctrl *Controller) ProcessEnterQuantity(c tele.Context) error {
	op := "Controller.ProcessEnterQuantity"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(c.Message().Text))
	if err != nil {
		// non-numeric input stays a no-op on the row, the dialogue re-prompts
		return c.Send(quantityNotANumber)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	shopper.Catalog.SetQuantity(chatSession.PendingIsbn, quantity)
	shopper.Catalog.SetChecked(chatSession.PendingIsbn, true)

	chatSession.PendingIsbn = ""
	chatSession.Action = model.DefaultAction
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	text, markup := telebotConverter.CatalogPage(shopper.Catalog.Rows())
	return c.Send(text, markup)
}

func (ctrl *Controller) AddToCart(c tele.Context) error {
	op := "Controller.AddToCart"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	userID, err := ctrl.storefront.UserID(c.Chat().ID)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, notLoggedInMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	if err = shopper.Catalog.SubmitToCart(ctx, userID); err != nil {
		slog.Error("got error from catalogService.SubmitToCart", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, addToCartFailedMsg)
	}

	shopper.Catalog.ClearChecked()

	if err = ctrl.storefront.ReloadAll(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from storefront.ReloadAll", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	text, markup := telebotConverter.CartPage(shopper.Cart.Rows(), shopper.Cart.FetchCompleted())
	return c.Edit(text, markup)
}

func (ctrl *Controller) ShowCart(c tele.Context) error {
	op := "Controller.ShowCart"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	userID, err := ctrl.storefront.UserID(c.Chat().ID)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, notLoggedInMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	if err = shopper.Cart.LoadTable(ctx, userID); err != nil {
		slog.Error("got error from cartService.LoadTable", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	text, markup := telebotConverter.CartPage(shopper.Cart.Rows(), shopper.Cart.FetchCompleted())
	return c.Edit(text, markup)
}

func (ctrl *Controller) Checkout(c tele.Context) error {
	op := "Controller.Checkout"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	userID, err := ctrl.storefront.UserID(c.Chat().ID)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, notLoggedInMsg)
	}

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)

	// snapshot before the purchase empties the cart server-side
	receipt := shopper.Cart.Rows()

	if err = shopper.Cart.Purchase(ctx, userID); err != nil {
		slog.Error("got error from cartService.Purchase", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, checkoutFailedMsg)
	}

	if ctrl.cfg.Mail.Enabled && chatSession.Email != "" {
		go ctrl.mailer.SendReceipt(context.WithoutCancel(ctx), chatSession.Email, receipt)
	}

	shopper.Cart.Clear()

	if err = ctrl.storefront.ReloadAll(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from storefront.ReloadAll", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	if err = c.Send(checkoutOkMsg); err != nil {
		return err
	}

	text, markup := telebotConverter.CatalogPage(shopper.Catalog.Rows())
	return c.Send(text, markup)
}

func (ctrl *Controller) ShowPurchases(c tele.Context) error {
	op := "Controller.ShowPurchases"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	userID, err := ctrl.storefront.UserID(c.Chat().ID)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, notLoggedInMsg)
	}

	shopper := ctrl.storefront.Shopper(c.Chat().ID)
	if err = shopper.Purchases.LoadTable(ctx, userID); err != nil {
		slog.Error("got error from purchasesService.LoadTable", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	text, markup := telebotConverter.PurchasesPage(shopper.Purchases.Rows())
	return c.Edit(text, markup)
}

func (ctrl *Controller) Logout(c tele.Context) error {
	op := "Controller.Logout"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	ctrl.storefront.Logout(c.Chat().ID)

	if err := ctrl.session.DeleteSession(ctx, c.Chat().ID); err != nil {
		slog.Error("got error from session.DeleteSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return c.Send(loggedOutMsg)
}

func (ctrl *Controller) Email(c tele.Context) error {
	ctx := utils.CreateCtxWithRqID(c)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(telebotConverter.EmailMenu(chatSession.Email))
}

func (ctrl *Controller) InitLinkEmail(c tele.Context) error {
	op := "Controller.InitLinkEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Action = model.ExpectingEmail
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Edit(emailPromptMsg)
}

func (ctrl *Controller) ProcessLinkEmail(c tele.Context) error {
	op := "Controller.ProcessLinkEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Email = strings.TrimSpace(c.Message().Text)
	chatSession.Action = model.DefaultAction
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(emailLinkedMsg)
}

func (ctrl *Controller) DeleteEmail(c tele.Context) error {
	op := "Controller.DeleteEmail"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	chatSession, err := ctrl.getSessionFromTeleCtxOrStorage(ctx, c)
	if err != nil {
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	chatSession.Email = ""
	if err = ctrl.session.SetSession(ctx, c.Chat().ID, chatSession); err != nil {
		slog.Error("got error from session.SetSession", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.sendAutoDeleteMsg(c, internalErrMsg)
	}

	return c.Send(emailDeletedMsg)
}
