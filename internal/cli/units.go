package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larklabs/gastutor/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the study units for a level",
		Run:   runUnits,
	}

	cmd.Flags().StringP("level", "l", "G3", "Certification level: G3 or G2")

	RootCmd.AddCommand(cmd)
}

func runUnits(cmd *cobra.Command, args []string) {
	levelStr, _ := cmd.Flags().GetString("level")
	level, err := parseLevel(levelStr)
	if err != nil {
		exitErr("units", err)
	}

	units := catalog.UnitsForLevel(level)

	if formatFlag == "json" {
		b, _ := json.MarshalIndent(units, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Println(styleHeader.Render(fmt.Sprintf("%s Study Units", level)))
	for _, u := range units {
		fmt.Printf("%s Unit %2d: %s\n", styleBullet.Render("•"), u.Number, u.Title)
	}
}
