package input

// Button is one key of the on-screen keypad.
type Button struct {
	Label   string
	Row     int
	Col     int
	ColSpan int
	RowSpan int
	Kind    string // "digit", "operator", "equals" or "clear"
}

// Grid dimensions of Layout.
const (
	LayoutCols = 4
	LayoutRows = 5
)

// Layout is the keypad, top to bottom:
//
//	C C ÷ ×
//	7 8 9 -
//	4 5 6 +
//	1 2 3 =
//	0 0 . =
var Layout = []Button{
	{Label: "C", Row: 0, Col: 0, ColSpan: 2, RowSpan: 1, Kind: "clear"},
	{Label: "÷", Row: 0, Col: 2, ColSpan: 1, RowSpan: 1, Kind: "operator"},
	{Label: "×", Row: 0, Col: 3, ColSpan: 1, RowSpan: 1, Kind: "operator"},

	{Label: "7", Row: 1, Col: 0, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "8", Row: 1, Col: 1, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "9", Row: 1, Col: 2, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "-", Row: 1, Col: 3, ColSpan: 1, RowSpan: 1, Kind: "operator"},

	{Label: "4", Row: 2, Col: 0, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "5", Row: 2, Col: 1, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "6", Row: 2, Col: 2, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "+", Row: 2, Col: 3, ColSpan: 1, RowSpan: 1, Kind: "operator"},

	{Label: "1", Row: 3, Col: 0, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "2", Row: 3, Col: 1, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "3", Row: 3, Col: 2, ColSpan: 1, RowSpan: 1, Kind: "digit"},
	{Label: "=", Row: 3, Col: 3, ColSpan: 1, RowSpan: 2, Kind: "equals"},

	{Label: "0", Row: 4, Col: 0, ColSpan: 2, RowSpan: 1, Kind: "digit"},
	{Label: ".", Row: 4, Col: 2, ColSpan: 1, RowSpan: 1, Kind: "digit"},
}

// ButtonAt returns the button covering grid cell (row, col).
func ButtonAt(row, col int) (Button, bool) {
	for _, b := range Layout {
		if row >= b.Row && row < b.Row+b.RowSpan && col >= b.Col && col < b.Col+b.ColSpan {
			return b, true
		}
	}
	return Button{}, false
}
