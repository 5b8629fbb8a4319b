package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"leagueprobe/pkg/messages"
)

// Print writes the report the way the analysis is read by a person.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "--- LoL Analysis Pipeline Report ---")

	if r.Target != nil {
		fmt.Fprintf(w, "Target: %s %d LP (rating %d)\n", r.Tier, r.Target.LeaguePoints, r.Rating)
		fmt.Fprintf(w, "PUUID: %s\n", r.Target.Puuid)
	}
	if len(r.MatchIds) > 0 {
		fmt.Fprintf(w, "Recent matches: %d\n", len(r.MatchIds))
	}

	if f := r.Features; f != nil {
		fmt.Fprintf(w, "\nMatch %s (%s, %ds)\n", f.MatchId, f.GameMode, f.GameDuration)

		fmt.Fprintln(w, "\n  [Analysis 1: Objectives (Dragon vs Grubs)]")
		for _, team := range f.Teams {
			fmt.Fprintf(w, "   - %s Team: Dragons=%d, Grubs=%d -> %s\n", team.Side, team.Dragons, team.Grubs, team.Outcome())

			names := make([]string, 0, len(team.Kills))
			for name := range team.Kills {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "       %s: %d\n", name, team.Kills[name])
			}
		}

		fmt.Fprintln(w, "\n  [Analysis 2: Climber Traits (Behavior)]")
		if f.Target.Found {
			fmt.Fprintf(w, "   - Target Player Stats for this game (%s %s):\n", f.Target.ChampionName, f.Target.Role)
			fmt.Fprintf(w, "     Vision Score: %s\n", counter(f.Target.VisionScore))
			fmt.Fprintf(w, "     Control Wards Bought: %s\n", counter(f.Target.ControlWardsBought))
			fmt.Fprintf(w, "     Deaths: %s\n", counter(f.Target.Deaths))
		} else {
			fmt.Fprintf(w, "   - %s\n", messages.TargetNotFoundMsg)
		}

		fmt.Fprintln(w, "\n  [Analysis 3: Win Prediction (Draft Data)]")
		for _, pick := range f.Draft {
			fmt.Fprintf(w, "   - Champion: %s (ID: %d) | Role: %s\n", pick.ChampionName, pick.ChampionId, pick.Role)
		}
	}

	fmt.Fprintln(w)
	if r.Outcome == OutcomeSuccess {
		fmt.Fprintln(w, "--- Pipeline Finished Successfully ---")
		return
	}
	fmt.Fprintf(w, "--- Pipeline Aborted at %s: %s ---\n", r.Stage, r.abortReason())
}

func (r *Report) abortReason() string {
	if r.Abort == nil {
		return "unknown"
	}
	if r.Abort.Cause == nil {
		return r.Abort.Reason
	}
	return fmt.Sprintf("%s (%v)", r.Abort.Reason, r.Abort.Cause)
}

// Optional counters print "n/a" when Riot didn't send them.
func counter(value *int) string {
	if value == nil {
		return "n/a"
	}
	return strconv.Itoa(*value)
}
