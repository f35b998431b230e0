package e

import (
	"errors"
	"testing"
)

func TestWrapPreservesChain(t *testing.T) {
	err := Wrap("CatalogUseCase.ListProducts", Wrap("ProductClient.List", ErrMalformedResponse))

	if !errors.Is(err, ErrMalformedResponse) {
		t.Error("wrapped sentinel must survive errors.Is")
	}
}

func TestNewRequestError_FallbackMessage(t *testing.T) {
	err := NewRequestError(502, "")

	if err.Message == "" {
		t.Error("empty backend message must fall back to a generic text")
	}
	if err.Error() != err.Message {
		t.Errorf("Error() must return the message, got %q", err.Error())
	}
}

func TestBackendMessage(t *testing.T) {
	inner := NewRequestError(404, "Produit non trouvé")
	wrapped := Wrap("CatalogUseCase.GetProduct", inner)

	if got := BackendMessage(wrapped); got != "Produit non trouvé" {
		t.Errorf("expected backend message through the chain, got %q", got)
	}
	if got := BackendMessage(errors.New("plain")); got != "" {
		t.Errorf("expected empty string for non-request errors, got %q", got)
	}
}
