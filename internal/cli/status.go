package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/entitlement"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show access tier and quota",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	ent, db := openEntitlement(cfg)
	if db != nil {
		defer db.Close()
	}

	status := ent.Status()

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(status, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Println(styleBold.Render("Access: ") + tierLabel(status))
	switch status.Tier {
	case entitlement.TierFree:
		if status.MessageLimit == 0 {
			fmt.Println(styleDim.Render("AI access requires an upgrade in this edition."))
		} else {
			fmt.Printf("Messages used: %d/%d\n", status.MessagesUsed, status.MessageLimit)
		}
		fmt.Println(styleDim.Render("Upgrade: " + cfg.CheckoutURL))
	default:
		fmt.Printf("Days remaining: %d\n", status.DaysRemaining)
		if status.ExpiringSoon {
			fmt.Println(styleWarn.Render("Access expires soon."))
		}
	}
}

func tierLabel(status entitlement.Status) string {
	switch status.Tier {
	case entitlement.TierActivated:
		return styleGood.Render("Activated (student code)")
	case entitlement.TierPaid:
		return styleGood.Render("AI Tutor Pro")
	default:
		return "Free"
	}
}
