package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the free message allowance",
		Long:  "Zeroes the free-tier message counter. With --transcript, also clears the chat transcript.",
		Run:   runReset,
	}

	cmd.Flags().Bool("transcript", false, "Also clear the chat transcript")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	clearTranscript, _ := cmd.Flags().GetBool("transcript")
	cfg := loadConfig()
	ent, db := openEntitlement(cfg)
	if db != nil {
		defer db.Close()
	}

	ent.ResetMessageCount()
	fmt.Println("Message count reset.")

	if clearTranscript && db != nil {
		if err := db.ClearMessages(cmd.Context()); err != nil {
			exitErr("clear transcript", err)
		}
		fmt.Println("Transcript cleared.")
	}
}
