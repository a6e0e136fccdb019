package console

import (
	"fmt"
	"strconv"

	"example.com/scoreboard/internal/scoreboard"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func (c *Console) printSummary() {
	summary := c.board.Summary()
	if len(summary) == 0 {
		msg := "no matches in progress"
		if c.opts.Colours {
			msg = color.New(color.FgDarkGray).Render(msg)
		}
		fmt.Fprintln(c.out, msg)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"#", "Home", "Score", "Away", "Started"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i, m := range summary {
		table.Append([]string{
			strconv.Itoa(i + 1),
			m.HomeTeam,
			formatScore(m.Score),
			m.AwayTeam,
			m.StartTime.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
}

func formatScore(s scoreboard.Score) string {
	if !s.Valid {
		return "-"
	}
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}
