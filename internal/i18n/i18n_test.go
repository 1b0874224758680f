package i18n

import (
	"testing"

	"github.com/dingcan-next/internal/constants"
)

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", constants.LocaleZhCN},
		{"zh-CN", constants.LocaleZhCN},
		{"ZH-cn", constants.LocaleZhCN},
		{"zh", constants.LocaleZhCN},
		{"en-US", constants.LocaleEnUS},
		{"en-GB", constants.LocaleEnUS},
		{"fr-FR", constants.LocaleZhCN},
	}
	for _, c := range cases {
		if got := Resolve(c.input); got != c.want {
			t.Fatalf("Resolve(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestTranslateWithFallback(t *testing.T) {
	if got := T(constants.LocaleEnUS, "wallet.insufficient_balance"); got != "insufficient balance" {
		t.Fatalf("unexpected en message: %q", got)
	}
	if got := T(constants.LocaleZhCN, "wallet.insufficient_balance"); got == "" || got == "wallet.insufficient_balance" {
		t.Fatalf("expected zh message, got %q", got)
	}
	if got := T("fr-FR", "common.success"); got == "" {
		t.Fatal("unknown locale must fall back, got empty string")
	}
	if got := T(constants.LocaleZhCN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key must return the key, got %q", got)
	}
}
