package converter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/beautix-tech/admin-panel/internal/domain"
	"github.com/shopspring/decimal"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestProductModel_DecodeEmbeddedCategory(t *testing.T) {
	payload := `{
		"_id": "prod-1",
		"name": "Crème visage",
		"description": "Crème hydratante",
		"category": {"_id": "cat-1", "title": "Soins", "image": {"storageId": "s1", "url": "https://cdn/cat.jpg"}},
		"prixAvantRemise": 49.9,
		"prixApresRemise": 39.9,
		"fraisLivraison": 5,
		"stock": 12,
		"status": "visible",
		"featured": true,
		"images": [
			{"storageId": "img-1", "url": "https://cdn/1.jpg"},
			{"storageId": "img-2", "url": "https://cdn/2.jpg"}
		]
	}`

	var m ProductModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	p := ProductToEntity(&m)

	if p.CategoryID != "cat-1" {
		t.Errorf("expected bare category id %q, got %q", "cat-1", p.CategoryID)
	}
	if p.Category == nil || p.Category.Title != "Soins" {
		t.Errorf("embedded category not preserved: %+v", p.Category)
	}
	if p.PriceAfterDiscount == nil || !p.PriceAfterDiscount.Equal(decimalFromString(t, "39.9")) {
		t.Errorf("unexpected discounted price: %v", p.PriceAfterDiscount)
	}
	if p.Status != domain.StatusVisible {
		t.Errorf("expected visible status, got %q", p.Status)
	}
	if len(p.Images) != 2 || p.Images[0].StorageID != "img-1" {
		t.Errorf("image order not preserved: %+v", p.Images)
	}
}

func TestProductModel_DecodeBareCategoryID(t *testing.T) {
	payload := `{"_id": "prod-2", "name": "Sérum", "description": "d", "category": "cat-7", "prixAvantRemise": 10, "stock": 3, "status": "hidden", "images": []}`

	var m ProductModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	p := ProductToEntity(&m)

	if p.CategoryID != "cat-7" {
		t.Errorf("expected category id %q, got %q", "cat-7", p.CategoryID)
	}
	if p.Category != nil {
		t.Errorf("bare id should not produce an embedded category: %+v", p.Category)
	}
	if p.PriceAfterDiscount != nil {
		t.Errorf("absent prixApresRemise should decode as nil, got %v", p.PriceAfterDiscount)
	}
}

func TestProductModel_DecodeNullCategory(t *testing.T) {
	payload := `{"_id": "prod-3", "name": "n", "description": "d", "category": null, "prixAvantRemise": 1, "prixApresRemise": null, "stock": 0, "status": "visible", "images": []}`

	var m ProductModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if m.Category.ID != "" || m.Category.Embedded != nil {
		t.Errorf("null category should decode empty, got %+v", m.Category)
	}
	if m.PriceAfter != nil {
		t.Errorf("null prixApresRemise should decode as nil, got %v", m.PriceAfter)
	}
}

func TestProductModel_MarshalSendsBareCategoryAndNumbers(t *testing.T) {
	p := &domain.Product{
		ID:                  "prod-1",
		Name:                "Crème visage",
		Description:         "d",
		CategoryID:          "cat-1",
		Category:            &domain.Category{ID: "cat-1", Title: "Soins"},
		PriceBeforeDiscount: decimalFromString(t, "49.9"),
		Stock:               12,
		Status:              domain.StatusVisible,
		Images:              []domain.ImageRef{{StorageID: "img-1", URL: "https://cdn/1.jpg"}},
	}

	data, err := json.Marshal(ProductToModel(p))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	body := string(data)
	if !strings.Contains(body, `"category":"cat-1"`) {
		t.Errorf("category must be sent as a bare id, got %s", body)
	}
	if !strings.Contains(body, `"prixAvantRemise":49.9`) {
		t.Errorf("price must be a JSON number, got %s", body)
	}
	if !strings.Contains(body, `"prixApresRemise":null`) {
		t.Errorf("absent discount must marshal as null, got %s", body)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	payload := `{"_id": "cat-1", "title": "Maquillage", "image": {"storageId": "s1", "url": "https://cdn/c.jpg"}}`

	var m CategoryModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	c := CategoryToEntity(&m)
	if c.Title != "Maquillage" || c.Image.StorageID != "s1" {
		t.Errorf("unexpected category: %+v", c)
	}

	back := CategoryToModel(c)
	if back.ID != "cat-1" || back.Image.URL != "https://cdn/c.jpg" {
		t.Errorf("unexpected model: %+v", back)
	}
}
