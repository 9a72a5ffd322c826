package model

// Table is a tabular fetch result. Row 0 is the header row whenever the
// table is non-empty.
type Table [][]string
