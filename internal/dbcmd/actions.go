// Package dbcmd surfaces the recorded sessions, runs, and settings.
package dbcmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/grephuman/grephuman/pkg/db"
)

func SessionsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sessions, err := database.ListSessions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	fmt.Printf("%-30s %-20s %-8s %-30s\n", "Session", "Created", "Inputs", "Output Dir")
	fmt.Println(strings.Repeat("-", 90))
	for _, s := range sessions {
		fmt.Printf("%-30s %-20s %-8d %-30s\n",
			s.SessionID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.InputCount,
			s.SessionDir,
		)
	}

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	fmt.Printf("\nTip: Use 'grephuman db runs' to see labeling passes\n")

	return nil
}

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-6s %-7s %-8s %-5s %-7s %-6s %-30s\n",
		"ID", "Created", "Source", "Total", "Not-AI", "Maybe-AI", "Slop", "Skipped", "Hidden", "Session")
	fmt.Println(strings.Repeat("-", 120))
	for _, r := range runs {
		session := r.SessionID
		if session == "" {
			session = "(none)"
		}
		fmt.Printf("%-6d %-20s %-8s %-6d %-7d %-8d %-5d %-7d %-6d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Source,
			r.Total,
			r.NotAI,
			r.MaybeAI,
			r.Slop,
			r.Skipped,
			r.Hidden,
			session,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'grephuman db verdicts <run-id>' to see per-result detail\n")

	return nil
}

func VerdictsAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: grephuman db verdicts <run-id>")
	}
	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID: %w", err)
	}

	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	verdicts, err := database.ListVerdicts(runID)
	if err != nil {
		return fmt.Errorf("failed to list verdicts: %w", err)
	}

	if len(verdicts) == 0 {
		fmt.Printf("No verdicts for run %d\n", runID)
		return nil
	}

	fmt.Printf("Run %d\n", runID)
	fmt.Println(strings.Repeat("=", 60))
	for i, v := range verdicts {
		fmt.Printf("%2d. [%s] %s\n", i+1, v.Verdict, v.Title)
		fmt.Printf("    Input: %s | Score: %d/100", v.Input, v.SlopScore)
		if v.PublishedDate != "" {
			fmt.Printf(" | Published: %s", v.PublishedDate)
		}
		fmt.Println()
		if v.Tooltip != "" {
			fmt.Printf("    %s\n", v.Tooltip)
		}
	}

	return nil
}

func SettingsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	if err := database.SeedDefaultSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	// "db settings key value" writes, "db settings" lists.
	if c.NArg() >= 2 {
		key := c.Args().Get(0)
		value := c.Args().Get(1)
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid setting value %q: want true or false", value)
		}
		if err := database.SetSetting(key, value); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	}

	settings, err := database.Settings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	fmt.Printf("%-25s %v\n", dbpkg.SettingAutoAnalyze, settings.AutoAnalyze)
	fmt.Printf("%-25s %v\n", dbpkg.SettingShowNotifications, settings.ShowNotifications)
	fmt.Printf("%-25s %v\n", dbpkg.SettingGoogleFilterEnabled, settings.GoogleFilterEnabled)

	return nil
}
