package tgCallback

const (
	ShowCatalog   = "show_catalog"
	ShowCart      = "show_cart"
	ShowPurchases = "show_purchases"
	ToggleBook    = "toggle_book:"    // + isbn
	EnterQuantity = "enter_quantity:" // + isbn
	AddToCart     = "add_to_cart"
	Checkout      = "checkout"
	RefreshCart   = "refresh_cart"
	Logout        = "logout"
	LinkEmail     = "link_email"
	DeleteEmail   = "delete_email"
)
