package model

// BookRow is one catalog entry. IsChecked and Quantity are client-side
// selection state, reset whenever the catalog is refetched.
type BookRow struct {
	Dbkey          int
	Isbn           string
	Title          string
	Price          float64
	TimesPurchased int
	TimesSold      int
	IsChecked      bool
	Quantity       int
}

type SelectedBook struct {
	BookDbkey      int `json:"book_dbkey"`
	CopiesSelected int `json:"copies_selected"`
}
