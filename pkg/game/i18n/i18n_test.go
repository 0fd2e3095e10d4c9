package i18n

import (
	"path/filepath"
	"testing"
)

var localesDir = filepath.Join("..", "..", "..", "locales")

func TestHumanize(t *testing.T) {
	c := New("", "")
	cases := map[string]string{
		"hardwareZone":   "Hardware Zone",
		"internetPoint":  "Internet Point",
		"snake_case_id":  "Snake Case Id",
		"already Spaced": "Already Spaced",
		"x":              "X",
	}
	for in, want := range cases {
		if got := c.Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegionLabel_Translated(t *testing.T) {
	c := New(localesDir, "es")
	if got := c.RegionLabel("hardwareZone", "Hardware Zone"); got != "Zona de Hardware" {
		t.Errorf("RegionLabel = %q, want Zona de Hardware", got)
	}
	if got := c.Getf("TRAVELLING_TO", "Isla Consola"); got != "Viajando a Isla Consola" {
		t.Errorf("Get(TRAVELLING_TO) = %q", got)
	}
}

func TestRegionLabel_Fallbacks(t *testing.T) {
	c := New(localesDir, "en_GB")
	if got := c.RegionLabel("secretLagoon", "The Lagoon"); got != "The Lagoon" {
		t.Errorf("untranslated with label = %q, want The Lagoon", got)
	}
	if got := c.RegionLabel("secretLagoon", ""); got != "Secret Lagoon" {
		t.Errorf("untranslated without label = %q, want Secret Lagoon", got)
	}
	none := New("", "")
	if got := none.RegionLabel("mobileBay", ""); got != "Mobile Bay" {
		t.Errorf("no catalog = %q, want Mobile Bay", got)
	}
}

func TestGetf_NoCatalogUsesEnglish(t *testing.T) {
	c := New("", "")
	if got := c.Getf("TRAVELLING_TO", "Mobile Bay"); got != "Travelling to Mobile Bay" {
		t.Errorf("Getf(TRAVELLING_TO) = %q, want Travelling to Mobile Bay", got)
	}
	if got := c.Getf("SEED", int64(42)); got != "Seed 42" {
		t.Errorf("Getf(SEED) = %q, want Seed 42", got)
	}
	if got := c.Get("HELP"); got == "HELP" {
		t.Errorf("Get(HELP) returned the bare key")
	}
	if got := c.Get("unknownKey"); got != "unknownKey" {
		t.Errorf("Get(unknownKey) = %q, want unknownKey", got)
	}
}

func TestGetf_MissingTranslationFallsBackToEnglish(t *testing.T) {
	c := New(t.TempDir(), "fr")
	if got := c.Getf("NO_ROUTE", "Arcade Cove"); got != "No route to Arcade Cove" {
		t.Errorf("Getf(NO_ROUTE) = %q, want No route to Arcade Cove", got)
	}
}
