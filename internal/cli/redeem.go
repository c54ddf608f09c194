package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/entitlement"
)

func init() {
	cmd := &cobra.Command{
		Use:   "redeem [code]",
		Short: "Redeem a student activation code",
		Long:  "Redeem a LARK student activation code for 365 days of access.",
		Args:  cobra.ExactArgs(1),
		Run:   runRedeem,
	}

	RootCmd.AddCommand(cmd)
}

func runRedeem(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	ent, db := openEntitlement(cfg)
	if db != nil {
		defer db.Close()
	}

	err := ent.RedeemCode(args[0])
	switch {
	case errors.Is(err, entitlement.ErrInvalidCode):
		fmt.Fprintln(os.Stderr, styleWarn.Render("Invalid activation code."))
		os.Exit(1)
	case errors.Is(err, entitlement.ErrTierDisabled):
		fmt.Fprintln(os.Stderr, styleWarn.Render("Activation codes are not available in this edition."))
		os.Exit(1)
	case err != nil:
		exitErr("redeem", err)
	}

	status := ent.Status()
	fmt.Println(styleGood.Render("Activation code accepted."))
	fmt.Printf("Access: %s, %d days remaining\n", status.Tier, status.DaysRemaining)
}
