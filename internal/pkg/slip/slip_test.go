package slip

import (
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/receipts/internal/domain/model"
)

func sampleReceipt() *model.Receipt {
	return &model.Receipt{
		ID:            1,
		UserID:        1,
		PaymentType:   "cash",
		PaymentAmount: 60.00,
		Total:         55.50,
		Change:        4.50,
		CreatedAt:     time.Date(2024, 3, 1, 14, 5, 0, 0, time.UTC),
		Items: []model.LineItem{
			{Name: "Cola", Price: 15.00, Quantity: 2, Total: 30.00},
			{Name: "Chips", Price: 25.50, Quantity: 1, Total: 25.50},
		},
	}
}

func TestRenderDefaultTemplateWidth40(t *testing.T) {
	renderer := NewRenderer(Template{})

	got, err := renderer.Render(sampleReceipt(), 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := strings.Join([]string{
		strings.Repeat(" ", 10) + "ФОП Джонсонюк Борис" + strings.Repeat(" ", 11),
		strings.Repeat("=", 40),
		"2 x 15.00",
		"Cola" + strings.Repeat(" ", 16) + strings.Repeat(" ", 15) + "30.00",
		strings.Repeat("-", 40),
		"1 x 25.50",
		"Chips" + strings.Repeat(" ", 15) + strings.Repeat(" ", 15) + "25.50",
		strings.Repeat("-", 40),
		strings.Repeat(" ", 30) + "СУМА 55.50",
		strings.Repeat(" ", 30) + "Cash 60.00",
		strings.Repeat(" ", 30) + "Решта 4.50",
		strings.Repeat("=", 40),
		strings.Repeat(" ", 12) + "01.03.2024 14:05" + strings.Repeat(" ", 12),
		strings.Repeat(" ", 10) + "Дякуємо за покупку!" + strings.Repeat(" ", 11),
	}, "\n")

	if got != want {
		t.Fatalf("unexpected slip output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewRenderer(DefaultTemplate())
	receipt := sampleReceipt()

	first, err := renderer.Render(receipt, 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := renderer.Render(receipt, 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Fatal("re-rendering the same receipt produced different output")
	}
}

func TestRenderInvalidWidth(t *testing.T) {
	renderer := NewRenderer(Template{})
	for _, width := range []int{0, -1, -40} {
		if _, err := renderer.Render(sampleReceipt(), width); err != ErrInvalidWidth {
			t.Fatalf("expected ErrInvalidWidth for width %d, got %v", width, err)
		}
	}
}

func TestRenderLongNameOverflows(t *testing.T) {
	renderer := NewRenderer(Template{})
	receipt := sampleReceipt()
	receipt.Items = []model.LineItem{
		{Name: "A very long product name exceeding half width", Price: 1, Quantity: 1, Total: 1},
	}

	got, err := renderer.Render(receipt, 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Split(got, "\n")
	itemLine := lines[3]
	if !strings.HasPrefix(itemLine, "A very long product name exceeding half width") {
		t.Fatalf("expected untruncated name, got %q", itemLine)
	}
	if !strings.HasSuffix(itemLine, "1.00") {
		t.Fatalf("expected total appended after name, got %q", itemLine)
	}
}

func TestRenderFractionalQuantity(t *testing.T) {
	renderer := NewRenderer(Template{})
	receipt := sampleReceipt()
	receipt.Items = []model.LineItem{{Name: "Cheese", Price: 100, Quantity: 0.5, Total: 50}}

	got, err := renderer.Render(receipt, 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(got, "0.5 x 100.00") {
		t.Fatalf("expected fractional quantity line, got:\n%s", got)
	}
}

func TestRenderCustomTemplate(t *testing.T) {
	renderer := NewRenderer(Template{
		Merchant:    "Corner Shop",
		TotalLabel:  "TOTAL",
		ChangeLabel: "Change",
		ThankYou:    "Thank you!",
	})

	got, err := renderer.Render(sampleReceipt(), 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, fragment := range []string{"Corner Shop", "TOTAL 55.50", "Change 4.50", "Thank you!"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in slip:\n%s", fragment, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := map[string]string{
		"cash":   "Cash",
		"CARD":   "Card",
		"готівка": "Готівка",
		"":       "",
	}
	for in, want := range cases {
		if got := capitalize(in); got != want {
			t.Fatalf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
