package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocaleFromHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		header string
		value  string
		want   string
	}{
		{"X-Locale", "zh-TW", LocaleZH},
		{"Accept-Language", "fr-FR,en;q=0.8", LocaleEN},
		{"Accept-Language", "de-DE", DefaultLocale},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Request.Header.Set(tc.header, tc.value)
		if got := ResolveLocale(c); got != tc.want {
			t.Fatalf("%s=%s: want %s got %s", tc.header, tc.value, tc.want, got)
		}
	}
}

func TestTFallsBack(t *testing.T) {
	if got := T("fr-FR", "error.cart_empty"); got != "Your cart is empty" {
		t.Fatalf("expected english fallback, got %s", got)
	}
	if got := T(LocaleZH, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("expected key fallback, got %s", got)
	}
	if got := Sprintf(LocaleEN, "error.password_too_short", 8); got != "Password must be at least 8 characters" {
		t.Fatalf("unexpected sprintf result: %s", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	for key := range messages[LocaleEN] {
		if _, ok := messages[LocaleZH][key]; !ok {
			t.Fatalf("missing zh-CN translation for %s", key)
		}
	}
}
