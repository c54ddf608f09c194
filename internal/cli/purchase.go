package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Show the Pro checkout link, or record a completed purchase",
		Long:  "Prints the AI Tutor Pro checkout link. After completing checkout, run with --confirm to record the purchase (30 days of Pro access).",
		Run:   runPurchase,
	}

	cmd.Flags().Bool("confirm", false, "Record a completed purchase")

	RootCmd.AddCommand(cmd)
}

func runPurchase(cmd *cobra.Command, args []string) {
	confirm, _ := cmd.Flags().GetBool("confirm")
	cfg := loadConfig()

	if !confirm {
		fmt.Println(styleBold.Render("Upgrade to AI Tutor Pro - $9.99/month"))
		fmt.Println(cfg.CheckoutURL)
		fmt.Println(styleDim.Render("After checkout, run: gastutor purchase --confirm"))
		return
	}

	ent, db := openEntitlement(cfg)
	if db != nil {
		defer db.Close()
	}

	if err := ent.ConfirmPurchase(); err != nil {
		exitErr("purchase", err)
	}
	status := ent.Status()
	fmt.Println(styleGood.Render("Purchase recorded. Welcome to AI Tutor Pro!"))
	fmt.Printf("Access: %s, %d days remaining\n", status.Tier, status.DaysRemaining)
}
