package entity

// Printout is the printable layout of a receipt or bill statement.
// It is not persisted.
type Printout struct {
	Header  PrintoutHeader  `json:"header"`
	Title   string          `json:"title"`
	Number  string          `json:"number"`
	Date    string          `json:"date"`
	Party   string          `json:"party"`
	Details []PrintoutField `json:"details,omitempty"`
	Lines   []PrintoutLine  `json:"lines"`
	Totals  []PrintoutField `json:"totals"`
	Footer  string          `json:"footer,omitempty"`
}

// PrintoutHeader is the store banner printed at the top
type PrintoutHeader struct {
	StoreName string `json:"storeName"`
}

// PrintoutLine is one itemized row, e.g. a size or a payment
type PrintoutLine struct {
	Label    string `json:"label"`
	Quantity int64  `json:"quantity,omitempty"`
	Amount   int64  `json:"amount"`
}

// PrintoutField is a labelled value such as a total or a site name
type PrintoutField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
