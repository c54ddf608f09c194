package catalog

// TopicRule maps a lowercase keyword to the unit numbers it implicates.
// Keywords are matched by substring containment against the query.
type TopicRule struct {
	Keyword string
	Units   []int
}

// TopicRules is the keyword relevance table, in declaration order.
// Broad keywords ("pressure", "installation") deliberately fan out to
// several units; see ExactAnswers for how they interact with triggers.
var TopicRules = []TopicRule{
	{"safety", []int{1}},
	{"piping", []int{8, 10}},
	{"pipe sizing", []int{8, 10}},
	{"tools", []int{2}},
	{"testing", []int{2}},
	{"gas properties", []int{3}},
	{"natural gas", []int{3}},
	{"codes", []int{4}},
	{"regulations", []int{4}},
	{"electricity", []int{5, 12}},
	{"electrical", []int{5, 12}},
	{"manuals", []int{6}},
	{"drawings", []int{6}},
	{"customer", []int{7}},
	{"appliances", []int{9, 15}},
	{"furnace", []int{19}},
	{"heating", []int{19, 20, 21}},
	{"water heater", []int{18}},
	{"venting", []int{22}},
	{"controls", []int{13}},
	{"regulators", []int{11}},
	{"clearance", []int{1, 21, 22}},
	{"installation", []int{8, 9, 10, 15}},
	{"commercial", []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
	{"pressure", []int{11, 8, 10}},
	{"building", []int{14}},
	{"construction", []int{14}},
	{"platform construction", []int{14}},
	{"balloon construction", []int{14}},
	{"solid construction", []int{14}},
	{"frame construction", []int{14}},
	{"cavity wall", []int{14}},
}

// ExactAnswer maps a query-substring trigger to a fully composed answer
// body that bypasses unit resolution.
type ExactAnswer struct {
	Trigger string
	Body    string
}

// ExactAnswers is evaluated top to bottom; the first trigger contained
// in the query wins. Containment is plain substring, not whole-word, so
// an early broad trigger shadows a later specific one ("leak" shadows
// "leak test" for any query naming both).
var ExactAnswers = []ExactAnswer{
	{"ppe", PPEAnswer},
	{"personal protective equipment", PPEAnswer},
	{"leak", leakResponseAnswer},
	{"leak test", leakTestAnswer},
	{"emergency shutdown", emergencyShutdownAnswer},
}

// PPEAnswer is the canned personal-protective-equipment answer.
const PPEAnswer = `**Required PPE for Gas Technicians (Unit 1 - Safety):**

` + "•" + ` CSA-approved safety glasses or goggles
` + "•" + ` Steel-toed safety boots (CSA Grade 1)
` + "•" + ` Flame-resistant work clothing for live-gas work
` + "•" + ` Work gloves rated for the task (cut or thermal protection)
` + "•" + ` Hearing protection when operating power tools
` + "•" + ` A calibrated personal gas detector in confined or enclosed spaces

PPE must be inspected before each use and maintained per the manufacturer's instructions. CSA B149.1-25 and your provincial OH&S regulations set the minimum requirements for each task.`

const leakResponseAnswer = `**Gas Leak Response Procedure (Units 1 and 3):**

` + "•" + ` Eliminate ignition sources immediately - no switches, no open flame
` + "•" + ` Evacuate the area and ventilate if safe to do so
` + "•" + ` Shut off the gas supply at the meter or cylinder valve
` + "•" + ` Never search for leaks with a flame - use approved leak detection solution or an electronic detector
` + "•" + ` Report per the local utility's emergency procedure before re-entering

Escaping gas inside a building is an emergency. Re-light only after the source is found, repaired and tested.`

const leakTestAnswer = `**Leak Testing (Unit 2):**

` + "•" + ` Test at the pressures and durations specified in CSA B149.1-25
` + "•" + ` Use a manometer or gauge appropriate for the test pressure
` + "•" + ` Apply leak detection solution to every joint under test
` + "•" + ` Document test pressure, duration and result

Soap testing a live joint is not a substitute for the code-required pressure test of new piping.`

const emergencyShutdownAnswer = `**Emergency Shutdown (Unit 1 - Safety):**

` + "•" + ` Know the location of the main shut-off before starting any work
` + "•" + ` Close the appliance gas valve first, then the branch or meter valve as required
` + "•" + ` De-energize associated electrical circuits where safe
` + "•" + ` Tag the system out of service and notify the responsible party

CSA B149.1-25 requires shut-off valves to remain accessible at all times.`
