package http

import (
	"errors"
	"testing"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/beautix-tech/admin-panel/pkg/e"
)

func TestProductFormToEntity_EmptyDiscountMeansAbsent(t *testing.T) {
	form := ProductForm{
		Name:        "Crème",
		Description: "d",
		CategoryID:  "c1",
		PriceBefore: "50",
		PriceAfter:  "  ",
		Stock:       "5",
		Status:      "visible",
		Images:      []domain.ImageRef{{StorageID: "s1", URL: "u1"}},
	}

	p, err := form.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PriceAfterDiscount != nil {
		t.Errorf("blank discount must normalize to nil, got %v", p.PriceAfterDiscount)
	}
	if p.HasDiscount() {
		t.Error("product without discount input must not report a discount")
	}
}

func TestProductFormToEntity_Prices(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr error
	}{
		{"integer", "600", nil},
		{"two decimals", "599.99", nil},
		{"zero", "0", nil},
		{"negative", "-1", e.ErrInvalidPrice},
		{"three decimals", "12.999", e.ErrPricePrecision},
		{"not a number", "abc", e.ErrInvalidPrice},
		{"empty", "", e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := ProductForm{
				Name: "n", Description: "d", CategoryID: "c1",
				PriceBefore: tt.price, Stock: "1", Status: "visible",
				Images: []domain.ImageRef{{StorageID: "s1"}},
			}

			_, err := form.ToEntity()
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestProductFormToEntity_Stock(t *testing.T) {
	form := ProductForm{
		Name: "n", Description: "d", CategoryID: "c1",
		PriceBefore: "1", Status: "visible",
		Images: []domain.ImageRef{{StorageID: "s1"}},
	}

	form.Stock = "-1"
	if _, err := form.ToEntity(); !errors.Is(err, e.ErrInvalidStock) {
		t.Errorf("negative stock must be rejected, got %v", err)
	}

	form.Stock = "abc"
	if _, err := form.ToEntity(); !errors.Is(err, e.ErrInvalidStock) {
		t.Errorf("non-numeric stock must be rejected, got %v", err)
	}

	form.Stock = ""
	p, err := form.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stock != 0 {
		t.Errorf("empty stock must default to 0, got %d", p.Stock)
	}
}

func TestProductFormToEntity_UnknownStatusFailsClosed(t *testing.T) {
	form := ProductForm{
		Name: "n", Description: "d", CategoryID: "c1",
		PriceBefore: "1", Stock: "1", Status: "archived",
		Images: []domain.ImageRef{{StorageID: "s1"}},
	}

	p, err := form.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != domain.StatusHidden {
		t.Errorf("unknown status must map to hidden, got %q", p.Status)
	}
}

func TestParseImageAction(t *testing.T) {
	images := []domain.ImageRef{{StorageID: "a"}, {StorageID: "b"}, {StorageID: "c"}}

	tests := []struct {
		action string
		want   []string
	}{
		{"left:2", []string{"a", "c", "b"}},
		{"right:0", []string{"b", "a", "c"}},
		{"remove:0", []string{"b", "c"}},
		{"move:2:0", []string{"c", "a", "b"}},
		{"left:0", []string{"a", "b", "c"}},
		{"right:2", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			apply, ok := parseImageAction(tt.action)
			if !ok {
				t.Fatalf("action %q not recognized", tt.action)
			}

			got := apply(images)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d images, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].StorageID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].StorageID)
				}
			}
		})
	}
}

func TestParseImageAction_Unrecognized(t *testing.T) {
	for _, action := range []string{"save", "refresh", "", "left", "left:x", "move:1", "drop:0"} {
		if _, ok := parseImageAction(action); ok {
			t.Errorf("action %q must not be treated as an image action", action)
		}
	}
}
