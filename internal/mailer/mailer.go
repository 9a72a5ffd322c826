package mailer

import (
	"bookstore_tgbot/config"
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/utils"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendReceipt emails a plain-text rendering of the purchased cart table.
func (m *Mailer) SendReceipt(ctx context.Context, to string, cart model.Table) error {
	op := "Mailer.SendReceipt"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("SendReceipt start", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to))

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Mail.Address); err != nil {
		slog.Error("failed to set From address", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}
	if err := msg.To(to); err != nil {
		slog.Error("failed to set To address", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}
	msg.Subject("Your bookstore receipt")
	msg.SetBodyString(mail.TypeTextPlain, receiptBody(cart))

	c, err := mail.NewClient(
		m.cfg.Mail.Host,
		mail.WithPort(m.cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.Mail.Address),
		mail.WithPassword(m.cfg.Mail.Password),
		mail.WithTimeout(120*time.Second),
	)
	if err != nil {
		slog.Error("failed to create mail client", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	if err = c.DialAndSend(msg); err != nil {
		slog.Error("failed to send mail", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to), slog.String("err", err.Error()))
		return fmt.Errorf("error while dialing smtp: %w", err)
	}

	slog.Info("SendReceipt finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("to", to))

	return nil
}

func receiptBody(cart model.Table) string {
	sb := strings.Builder{}
	sb.WriteString("Thank you for your purchase!\n\n")
	for _, row := range cart {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
