package composer

import (
	"strings"
	"testing"

	"github.com/larklabs/gastutor/internal/catalog"
	"github.com/larklabs/gastutor/internal/resolver"
)

func TestComposeExactVerbatim(t *testing.T) {
	c := New("")
	res := resolver.Resolution{Kind: resolver.KindExact, Exact: catalog.PPEAnswer}
	doc := c.Compose(res, "what ppe is required", catalog.LevelG2)

	if !strings.HasPrefix(doc, catalog.PPEAnswer) {
		t.Error("exact body not emitted verbatim at the top of the document")
	}
	if !strings.Contains(doc, "Upgrade to Pro - $9.99/month") {
		t.Error("upsell footer missing")
	}
}

func TestComposeUnitsCapsAtThree(t *testing.T) {
	c := New("")
	units := catalog.UnitsForLevel(catalog.LevelG2)[:5]
	res := resolver.Resolution{Kind: resolver.KindUnits, Units: units}
	doc := c.Compose(res, "everything", catalog.LevelG2)

	if !strings.Contains(doc, "Found **5** relevant training units:") {
		t.Error("match count not acknowledged")
	}
	if n := strings.Count(doc, "### Unit "); n != 3 {
		t.Errorf("expected 3 expanded units, got %d", n)
	}
	if strings.Contains(doc, "### Unit 4") || strings.Contains(doc, "### Unit 5") {
		t.Error("units beyond the cap were expanded")
	}
}

func TestComposeSingleUnitSingular(t *testing.T) {
	c := New("")
	u, _ := catalog.UnitByNumber(22)
	res := resolver.Resolution{Kind: resolver.KindUnits, Units: []catalog.Unit{u}}
	doc := c.Compose(res, "venting", catalog.LevelG2)

	if !strings.Contains(doc, "Found **1** relevant training unit:") {
		t.Error("singular form not used for one unit")
	}
}

func TestComposeNoMatchListsUnits(t *testing.T) {
	c := New("")
	res := resolver.Resolution{Kind: resolver.KindNoMatch}
	doc := c.Compose(res, "", catalog.LevelG2)

	if !strings.Contains(doc, "General G2 Training Information") {
		t.Error("level description missing")
	}
	if n := strings.Count(doc, "• **Unit "); n != 6 {
		t.Errorf("expected 6 listed units, got %d", n)
	}
	if !strings.Contains(doc, "... and 18 more units") {
		t.Error("overflow suffix missing")
	}
}

func TestComposeNoMatchG3(t *testing.T) {
	c := New("")
	doc := c.Compose(resolver.Resolution{Kind: resolver.KindNoMatch}, "", catalog.LevelG3)

	if !strings.Contains(doc, "400,000 BTU/hr") {
		t.Error("G3 level description missing")
	}
	if !strings.Contains(doc, "... and 3 more units") {
		t.Error("expected 9 units to truncate to 6 with +3 suffix")
	}
}

func TestComposeUsesConfiguredCheckoutURL(t *testing.T) {
	c := New("https://example.com/checkout")
	doc := c.Compose(resolver.Resolution{Kind: resolver.KindNoMatch}, "", catalog.LevelG3)
	if !strings.Contains(doc, "https://example.com/checkout") {
		t.Error("configured checkout URL not used")
	}
	if strings.Contains(doc, DefaultCheckoutURL) {
		t.Error("default checkout URL leaked into configured composer")
	}
}

func TestUnitContentPipingBranch(t *testing.T) {
	u, _ := catalog.UnitByNumber(8)

	sizing := UnitContent(u, "pipe sizing for a range")
	if !strings.Contains(sizing, "Pipe sizing calculations") {
		t.Error("sizing query did not select the design template")
	}

	general := UnitContent(u, "how to install piping")
	if !strings.Contains(general, "Material types and specifications") {
		t.Error("general query did not select the installation template")
	}
	if sizing == general {
		t.Error("unit 8 templates should differ by query")
	}
}

func TestUnitContentGenericFallback(t *testing.T) {
	u, _ := catalog.UnitByNumber(24)
	body := UnitContent(u, "anything")
	if !strings.Contains(body, "Air Handling Overview") {
		t.Error("generic template should reference the unit title")
	}
}

func TestWelcomePerLevel(t *testing.T) {
	c := New("")
	g3 := c.Welcome(catalog.LevelG3)
	g2 := c.Welcome(catalog.LevelG2)
	if !strings.Contains(g3, "G3 Gas Technician Tutor") || !strings.Contains(g2, "G2 Gas Technician Tutor") {
		t.Error("welcome copy not level specific")
	}
	if !strings.Contains(g3, "Units 1-9") {
		t.Error("G3 welcome should name its unit range")
	}
}
