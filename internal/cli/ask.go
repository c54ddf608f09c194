package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/composer"
	"github.com/larklabs/gastutor/internal/entitlement"
	"github.com/larklabs/gastutor/internal/tutor"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about the curriculum",
		Long:  "Ask a free-text question. The answer is built from CSA training content matched to the question and your certification level.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	cmd.Flags().StringP("level", "l", "G3", "Certification level: G3 or G2")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	levelStr, _ := cmd.Flags().GetString("level")
	level, err := parseLevel(levelStr)
	if err != nil {
		exitErr("ask", err)
	}
	question := strings.Join(args, " ")

	cfg := loadConfig()
	ent, db := openEntitlement(cfg)
	if db != nil {
		defer db.Close()
	}

	comp := composer.New(cfg.CheckoutURL)
	var transcript tutor.Transcript
	firstAsk := false
	if db != nil {
		transcript = db
		if n, err := db.MessageCount(cmd.Context()); err == nil && n == 0 {
			firstAsk = true
		}
	}
	session := tutor.New(level, ent, comp, transcript)

	if ent.ConsumePurchaseSignal() {
		fmt.Println(styleGood.Render("Welcome to AI Tutor Pro! Your subscription is active."))
		fmt.Println()
	}

	answer := session.Ask(cmd.Context(), question)
	status := session.Status()

	if formatFlag == "json" {
		out := map[string]interface{}{
			"level":    level,
			"question": question,
			"answer":   answer,
			"status":   status,
		}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(b))
		return
	}

	if firstAsk {
		fmt.Println(renderDoc(session.Welcome()))
		fmt.Println()
	}
	fmt.Println(renderDoc(answer))
	printQuotaHint(status)
}

// printQuotaHint warns free sessions nearing or past their allowance and
// paid sessions nearing expiry.
func printQuotaHint(status entitlement.Status) {
	switch {
	case status.Tier == entitlement.TierFree && !status.HasAccess:
		fmt.Println()
		fmt.Println(styleWarn.Render(fmt.Sprintf("Free message limit reached (%d/%d).", status.MessagesUsed, status.MessageLimit)))
	case status.Tier == entitlement.TierFree && status.MessageLimit > 0:
		fmt.Println()
		fmt.Println(styleDim.Render(fmt.Sprintf("Messages used: %d/%d", status.MessagesUsed, status.MessageLimit)))
	case status.ExpiringSoon:
		fmt.Println()
		fmt.Println(styleWarn.Render(fmt.Sprintf("Your %s access expires in %d day(s).", status.Tier, status.DaysRemaining)))
	}
}
