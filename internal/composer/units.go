package composer

import (
	"fmt"
	"strings"

	"github.com/larklabs/gastutor/internal/catalog"
)

// UnitContent returns the study-content body for a unit. Known units
// carry fixed bullet templates; unit 8 branches on whether the query
// asks about sizing or pressure. Unknown units get a generic body built
// from the unit title.
func UnitContent(u catalog.Unit, query string) string {
	q := strings.ToLower(query)

	switch u.Number {
	case 1:
		return "**Key Safety Topics:**\n• Personal protective equipment (PPE)\n• Hazard identification and risk assessment\n• Safe work practices for gas installations\n• Emergency procedures and leak response\n• CSA B149.1 safety requirements"
	case 2:
		return "**Tools and Testing Equipment:**\n• Manometers for pressure testing\n• Electronic gas detectors\n• Pipe threading and cutting tools\n• Testing procedures and documentation\n• Calibration requirements"
	case 3:
		return "**Natural Gas Properties:**\n• Specific gravity and heating value\n• Combustion characteristics\n• Gas composition and quality standards\n• Safe handling and storage procedures\n• Detection and leak response"
	case 4:
		return "**CSA B149.1-25 Code References:**\n• Installation requirements\n• Clearance specifications\n• Pressure testing procedures\n• Documentation and permits\n• Compliance verification"
	case 8:
		if strings.Contains(q, "sizing") || strings.Contains(q, "pressure") {
			return "**Piping System Design:**\n• Pipe sizing calculations\n• Pressure drop considerations\n• Material specifications (black iron, CSST, PE)\n• Installation methods and supports\n• Testing and commissioning"
		}
		return "**Piping and Tubing Systems:**\n• Material types and specifications\n• Installation methods and techniques\n• Support and protection requirements\n• Testing and inspection procedures\n• Code compliance requirements"
	case 9:
		return "**Gas Appliance Basics:**\n• Appliance categories and classifications\n• Installation requirements\n• Venting and combustion air\n• Controls and safety devices\n• Maintenance and troubleshooting"
	case 11:
		return "**Pressure Regulation:**\n• Regulator types and applications\n• Installation and adjustment procedures\n• Testing and maintenance requirements\n• Troubleshooting common issues\n• Code compliance standards"
	case 18:
		return "**Gas Water Heaters:**\n• Installation requirements\n• Venting specifications\n• Temperature and pressure relief\n• Controls and safety devices\n• Maintenance procedures"
	case 22:
		return "**Venting Systems:**\n• Vent categories and classifications\n• Sizing and installation requirements\n• Clearance specifications\n• Inspection and testing procedures\n• Troubleshooting vent problems"
	default:
		return fmt.Sprintf("**%s Overview:**\n• CSA B149.1-25 compliance requirements\n• Installation and safety procedures\n• Code references and specifications\n• Best practices and common applications\n• Testing and documentation requirements", u.Title)
	}
}
