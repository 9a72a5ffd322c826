package telebotConverter

import (
	"bookstore_tgbot/internal/model"
	"bookstore_tgbot/internal/model/tg/tgCallback"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"
)

func CatalogPage(rows []model.BookRow) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString("Catalog:\n\n")

	menuRows := make([]tele.Row, 0, len(rows)+2)

	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d) %s — %.2f (isbn %s)\n", i+1, row.Title, row.Price, row.Isbn))

		check := "☐"
		if row.IsChecked {
			check = "☑"
		}
		toggleBtn := markup.Data(fmt.Sprintf("%s %d", check, i+1), tgCallback.ToggleBook+row.Isbn)
		qtyBtn := markup.Data(fmt.Sprintf("qty %d", row.Quantity), tgCallback.EnterQuantity+row.Isbn)
		menuRows = append(menuRows, markup.Row(toggleBtn, qtyBtn))
	}

	if len(rows) == 0 {
		sb.WriteString("no books available\n")
	}

	menuRows = append(menuRows,
		markup.Row(
			markup.Data("add to cart", tgCallback.AddToCart),
			markup.Data("cart", tgCallback.ShowCart),
			markup.Data("purchases", tgCallback.ShowPurchases),
		),
		markup.Row(markup.Data("logout", tgCallback.Logout)),
	)

	markup.Inline(menuRows...)

	return sb.String(), markup
}

func CartPage(table model.Table, fetchCompleted bool) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString("Your cart:\n\n")
	switch {
	case !fetchCompleted:
		sb.WriteString("still loading...")
	case len(table) == 0:
		sb.WriteString("cart is empty")
	default:
		sb.WriteString(TableText(table))
	}

	markup.Inline(
		markup.Row(
			markup.Data("checkout", tgCallback.Checkout),
			markup.Data("refresh", tgCallback.RefreshCart),
		),
		markup.Row(markup.Data("back to catalog", tgCallback.ShowCatalog)),
	)

	return sb.String(), markup
}

func PurchasesPage(table model.Table) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}
	sb := strings.Builder{}

	sb.WriteString("Your purchases:\n\n")
	if len(table) == 0 {
		sb.WriteString("no purchases yet")
	} else {
		sb.WriteString(TableText(table))
	}

	markup.Inline(
		markup.Row(markup.Data("back to catalog", tgCallback.ShowCatalog)),
	)

	return sb.String(), markup
}

func EmailMenu(linkedEmail string) (text string, markup *tele.ReplyMarkup) {
	markup = &tele.ReplyMarkup{}

	if linkedEmail == "" {
		text = "No receipt email linked."
		markup.Inline(markup.Row(markup.Data("link email", tgCallback.LinkEmail)))
		return text, markup
	}

	text = fmt.Sprintf("Receipts are sent to %s.", linkedEmail)
	markup.Inline(
		markup.Row(markup.Data("link another email", tgCallback.LinkEmail)),
		markup.Row(markup.Data("delete email", tgCallback.DeleteEmail)),
	)

	return text, markup
}

// TableText renders a table row per line. Row 0 is the header.
func TableText(table model.Table) string {
	sb := strings.Builder{}
	for i, row := range table {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
		if i == 0 {
			sb.WriteString(strings.Repeat("—", 20))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
