package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the chat transcript",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "Max entries")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	cfg := loadConfig()

	db, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer db.Close()

	msgs, err := db.Messages(cmd.Context(), limit)
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == "json" {
		if len(msgs) == 0 {
			fmt.Println("[]")
			return
		}
		b, _ := json.MarshalIndent(msgs, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(msgs) == 0 {
		fmt.Println(styleDim.Render("No transcript yet. Ask something with: gastutor ask"))
		return
	}
	for _, m := range msgs {
		ts := styleDim.Render(m.CreatedAt.Local().Format("2006-01-02 15:04"))
		if m.Role == store.RoleUser {
			fmt.Printf("%s %s %s\n", ts, styleBold.Render("you:"), m.Content)
			continue
		}
		fmt.Printf("%s %s\n%s\n", ts, styleBold.Render("tutor:"), renderDoc(m.Content))
	}
}
