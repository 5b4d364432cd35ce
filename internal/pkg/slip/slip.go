package slip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/polkiloo/receipts/internal/domain/model"
)

// ErrInvalidWidth signals a non-positive slip width.
var ErrInvalidWidth = errors.New("invalid slip width")

// DefaultWidth is the slip width used when a caller does not specify one.
const DefaultWidth = 40

const dateLayout = "02.01.2006 15:04"

// Template holds localized labels printed on a slip.
type Template struct {
	Merchant    string
	TotalLabel  string
	ChangeLabel string
	ThankYou    string
}

// DefaultTemplate returns labels matching the reference cash register output.
func DefaultTemplate() Template {
	return Template{
		Merchant:    "ФОП Джонсонюк Борис",
		TotalLabel:  "СУМА",
		ChangeLabel: "Решта",
		ThankYou:    "Дякуємо за покупку!",
	}
}

// Renderer formats receipts into fixed-width printable text.
type Renderer struct {
	tpl Template
}

// NewRenderer builds Renderer; empty template fields fall back to defaults.
func NewRenderer(tpl Template) *Renderer {
	def := DefaultTemplate()
	if tpl.Merchant == "" {
		tpl.Merchant = def.Merchant
	}
	if tpl.TotalLabel == "" {
		tpl.TotalLabel = def.TotalLabel
	}
	if tpl.ChangeLabel == "" {
		tpl.ChangeLabel = def.ChangeLabel
	}
	if tpl.ThankYou == "" {
		tpl.ThankYou = def.ThankYou
	}
	return &Renderer{tpl: tpl}
}

// Render produces the printable slip for a receipt. Output is deterministic:
// the same receipt and width always yield byte-identical text.
func (r *Renderer) Render(receipt *model.Receipt, width int) (string, error) {
	if width <= 0 {
		return "", ErrInvalidWidth
	}

	half := width / 2
	separator := strings.Repeat("=", width)

	lines := []string{center(r.tpl.Merchant, width), separator}

	for _, item := range receipt.Items {
		lines = append(lines,
			formatQuantity(item.Quantity)+" x "+formatMoney(item.Price),
			leftJustify(item.Name, half)+rightJustify(formatMoney(item.Total), half),
			strings.Repeat("-", width),
		)
	}

	lines = append(lines,
		rightJustify(r.tpl.TotalLabel+" "+formatMoney(receipt.Total), width),
		rightJustify(capitalize(receipt.PaymentType)+" "+formatMoney(receipt.PaymentAmount), width),
		rightJustify(r.tpl.ChangeLabel+" "+formatMoney(receipt.Change), width),
		separator,
		center(receipt.CreatedAt.Format(dateLayout), width),
		center(r.tpl.ThankYou, width),
	)

	return strings.Join(lines, "\n"), nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// formatQuantity drops insignificant digits: 2 prints as "2", half as "0.5".
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// capitalize upper-cases the first rune and lower-cases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Padding counts runes, not bytes, so Cyrillic labels align the same way
// the reference implementation aligned them.
func center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func leftJustify(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func rightJustify(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
