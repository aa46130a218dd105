package services

import (
	"strings"
	"testing"
)

func TestGenerateSKU(t *testing.T) {
	t.Run("slug from name plus suffix", func(t *testing.T) {
		sku := generateSKU("Gold Monthly")
		if !strings.HasPrefix(sku, "GOLD-MONTHLY-") {
			t.Fatalf("unexpected sku %q", sku)
		}
		suffix := strings.TrimPrefix(sku, "GOLD-MONTHLY-")
		if len(suffix) != 6 {
			t.Fatalf("expected 6-char suffix, got %q", suffix)
		}
	})

	t.Run("strips special characters", func(t *testing.T) {
		sku := generateSKU("Premium+ (12 mo.)")
		if strings.ContainsAny(sku, "+(). ") {
			t.Fatalf("sku %q contains special characters", sku)
		}
	})

	t.Run("empty name falls back", func(t *testing.T) {
		sku := generateSKU("!!!")
		if !strings.HasPrefix(sku, "PRODUCT-") {
			t.Fatalf("unexpected fallback sku %q", sku)
		}
	})

	t.Run("suffix makes skus unique", func(t *testing.T) {
		if generateSKU("Gold") == generateSKU("Gold") {
			t.Fatal("two generated skus collided")
		}
	})
}
