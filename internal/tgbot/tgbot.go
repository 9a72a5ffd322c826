package tgbot

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bookstore_tgbot/config"
	"bookstore_tgbot/data/session"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/model/tg/tgCallback"
	"bookstore_tgbot/internal/transport/telegram"
	customMW "bookstore_tgbot/internal/transport/telegram/middleware"
	"bookstore_tgbot/utils"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type Session interface {
	GetSession(ctx context.Context, chatID int64) (model.Session, error)
	SetSession(ctx context.Context, chatID int64, session model.Session) error
}

type TGBot struct {
	bot     *tele.Bot
	ctrl    *telegram.Controller
	session Session
}

func New(cfg *config.Config, ctrl *telegram.Controller, session Session) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: time.Duration(cfg.Telegram.UpdTimeout) * time.Second},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, ctrl: ctrl, session: session}
}

func (b *TGBot) Start() {
	b.bot.Use(middleware.Recover(), customMW.Logger())

	b.setupRoutes()

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands
	b.bot.Handle("/start", b.ctrl.Start)
	b.bot.Handle("/help", b.ctrl.Help)
	b.bot.Handle("/login", b.ctrl.InitLogin)
	b.bot.Handle("/logout", b.ctrl.Logout)
	b.bot.Handle("/email", b.ctrl.Email)

	// text: the session's step decides which controller method gets the input
	b.bot.Handle(tele.OnText, func(c tele.Context) error {
		ctx := utils.CreateCtxWithRqID(c)
		rqID := utils.GetRequestIDFromCtx(ctx)
		chatSession, err := b.session.GetSession(ctx, c.Chat().ID)
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			slog.Error("got error from session.GetSession", slog.String("rqID", rqID), slog.String("err", err.Error()))
			return c.Send("something went wrong...")
		}

		c.Set("session", chatSession)

		switch chatSession.Action {
		case model.ExpectingUsername:
			return b.ctrl.ProcessEnterUsername(c)
		case model.ExpectingPassword:
			return b.ctrl.ProcessEnterPassword(c)
		case model.ExpectingQuantity:
			return b.ctrl.ProcessEnterQuantity(c)
		case model.ExpectingEmail:
			return b.ctrl.ProcessLinkEmail(c)
		default:
			return b.ctrl.Help(c)
		}
	})

	// callbacks
	b.bot.Handle(tele.OnCallback, func(c tele.Context) error {
		callbackBtnText := strings.TrimPrefix(c.Callback().Data, "\f")

		switch {
		case callbackBtnText == tgCallback.ShowCatalog:
			return b.ctrl.ShowCatalog(c)
		case callbackBtnText == tgCallback.ShowCart:
			return b.ctrl.ShowCart(c)
		case callbackBtnText == tgCallback.RefreshCart:
			return b.ctrl.ShowCart(c)
		case callbackBtnText == tgCallback.ShowPurchases:
			return b.ctrl.ShowPurchases(c)
		case callbackBtnText == tgCallback.AddToCart:
			return b.ctrl.AddToCart(c)
		case callbackBtnText == tgCallback.Checkout:
			return b.ctrl.Checkout(c)
		case callbackBtnText == tgCallback.Logout:
			return b.ctrl.Logout(c)
		case callbackBtnText == tgCallback.LinkEmail:
			return b.ctrl.InitLinkEmail(c)
		case callbackBtnText == tgCallback.DeleteEmail:
			return b.ctrl.DeleteEmail(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.ToggleBook):
			return b.ctrl.ToggleBook(c)
		case strings.HasPrefix(callbackBtnText, tgCallback.EnterQuantity):
			return b.ctrl.InitEnterQuantity(c)
		default:
			return c.Send("unknown callback")
		}
	})
}
