// Package composer renders resolution results into markdown documents.
package composer

import (
	"fmt"
	"strings"

	"github.com/larklabs/gastutor/internal/catalog"
	"github.com/larklabs/gastutor/internal/resolver"
)

// maxExpandedUnits caps how many matched units get a full section;
// further matches are acknowledged by count only.
const maxExpandedUnits = 3

// maxListedUnits caps the unit listing in the no-match document.
const maxListedUnits = 6

// DefaultCheckoutURL is the Pro subscription checkout link.
const DefaultCheckoutURL = "https://buy.stripe.com/5kQeVefxX2VmbCS0tO7ok05"

// Composer formats answers. The zero value is not usable; use New.
type Composer struct {
	checkoutURL string
}

// New returns a Composer using the given checkout URL for upsell copy.
// An empty URL falls back to DefaultCheckoutURL.
func New(checkoutURL string) *Composer {
	if checkoutURL == "" {
		checkoutURL = DefaultCheckoutURL
	}
	return &Composer{checkoutURL: checkoutURL}
}

// Compose renders a resolution into the final answer document. It is a
// pure formatting function with no failure path.
func (c *Composer) Compose(res resolver.Resolution, query string, level catalog.Level) string {
	var b strings.Builder

	switch res.Kind {
	case resolver.KindExact:
		b.WriteString(res.Exact)
	case resolver.KindUnits:
		b.WriteString("## CSA Training Content Related to Your Query\n\n")
		plural := ""
		if len(res.Units) > 1 {
			plural = "s"
		}
		fmt.Fprintf(&b, "Found **%d** relevant training unit%s:\n\n", len(res.Units), plural)
		for i, u := range res.Units {
			if i == maxExpandedUnits {
				break
			}
			fmt.Fprintf(&b, "### Unit %d: %s\n\n", u.Number, u.Title)
			b.WriteString(UnitContent(u, query))
			b.WriteString("\n\n")
		}
	case resolver.KindNoMatch:
		b.WriteString("## CSA Training Content Related to Your Query\n\n")
		fmt.Fprintf(&b, "**General %s Training Information:**\n\n", level)
		b.WriteString(levelDescription(level))
		all := catalog.UnitsForLevel(level)
		if len(all) > 0 {
			b.WriteString("\n\n**Available Study Units:**\n")
			for i, u := range all {
				if i == maxListedUnits {
					break
				}
				fmt.Fprintf(&b, "\u2022 **Unit %d**: %s\n", u.Number, u.Title)
			}
			if len(all) > maxListedUnits {
				fmt.Fprintf(&b, "\u2022 ... and %d more units\n", len(all)-maxListedUnits)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(c.footer())
	return b.String()
}

func levelDescription(level catalog.Level) string {
	if level == catalog.LevelG3 {
		return "The G3 certification covers natural gas appliances up to 400,000 BTU/hr and includes Units 1-9 of CSA B149.1-25 training materials."
	}
	return "The G2 certification covers all gas appliances and advanced installations, including Units 1-24 of CSA B149.1-25 and B149.2-25 training materials."
}

func (c *Composer) footer() string {
	var b strings.Builder
	b.WriteString("---\n\n")
	b.WriteString("**This is free CSA training content.** For detailed explanations, interactive Q&A, and personalized tutoring, upgrade to AI Tutor Pro.\n\n")
	fmt.Fprintf(&b, "[**Upgrade to Pro - $9.99/month**](%s) for:\n", c.checkoutURL)
	b.WriteString("\u2022 AI-powered explanations of complex topics\n")
	b.WriteString("\u2022 Interactive problem-solving guidance\n")
	b.WriteString("\u2022 Personalized study recommendations\n")
	b.WriteString("\u2022 Code compliance assistance")
	return b.String()
}

// Welcome returns the session opening message for a level.
func (c *Composer) Welcome(level catalog.Level) string {
	var b strings.Builder
	if level == catalog.LevelG3 {
		b.WriteString("Welcome to your G3 Gas Technician Tutor! This free version provides access to complete CSA B149.1-25 training content, code references, and study materials for G3 certification preparation covering natural gas appliances up to 400,000 BTU/hr, safety protocols, and code requirements from Units 1-9.")
	} else {
		b.WriteString("Welcome to your G2 Gas Technician Tutor! This free version provides access to complete CSA B149.1-25 and B149.2-25 training content, code references, and study materials for G2 certification preparation covering all gas appliances, advanced installations, commercial systems, and complex scenarios from Units 10-24.")
	}
	b.WriteString("\n\n**Free Version Features:**\n")
	b.WriteString("\u2022 Complete CSA training content access\n")
	b.WriteString("\u2022 Code references and examples\n")
	b.WriteString("\u2022 Study materials and guides\n\n")
	b.WriteString("**Upgrade to AI Tutor Pro for:**\n")
	b.WriteString("\u2022 Unlimited AI explanations and tutoring\n")
	b.WriteString("\u2022 Interactive Q&A sessions\n")
	b.WriteString("\u2022 Personalized learning paths\n\n")
	fmt.Fprintf(&b, "[**Upgrade to Pro - $9.99/month**](%s)", c.checkoutURL)
	return b.String()
}
