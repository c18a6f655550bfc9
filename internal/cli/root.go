// Package cli implements the lastgame command line client: the same
// pipeline the server exposes, rendered for a terminal.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lastgame-service/internal/app/presentation"
	"lastgame-service/internal/config"
	"lastgame-service/internal/dates"
	"lastgame-service/internal/domain"
	"lastgame-service/internal/providers"
	"lastgame-service/internal/providers/fixture"
	"lastgame-service/internal/providers/statsapi"
	"lastgame-service/internal/store"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagDate     string
	flagTeam     string
	flagLookback int
)

var rootCmd = &cobra.Command{
	Use:   "lastgame",
	Short: "Show a team's most recent completed game and its condensed replay",
	Long: "lastgame resolves the most recent completed game for a franchise,\n" +
		"finds the condensed-game replay in the media feed, and prints the best\n" +
		"playable URL.",
	RunE: runPresentation,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTeam, "team", "", "team name or numeric id (typos tolerated)")
	rootCmd.Flags().StringVar(&flagDate, "date", "", "civil date YYYY-MM-DD (default: most recent)")
	rootCmd.Flags().IntVar(&flagLookback, "lookback", 0, "days to search back for a completed game")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lastgame %s (commit: %s)\n", version, commit)
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next scheduled game",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context())
		if err != nil {
			return err
		}
		next, err := svc.NextGame(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderNext(next, svc.Resolver()))
		return nil
	},
}

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the month's schedule as a day-by-day list",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context())
		if err != nil {
			return err
		}
		d := svc.Resolver().Resolve(time.Now())
		if flagDate != "" {
			parsed, err := dates.ParseISO(flagDate)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			d = parsed
		}
		month, err := svc.MonthGames(cmd.Context(), d)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderMonth(month, svc.Resolver(), d))
		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the division standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context())
		if err != nil {
			return err
		}
		season := 0
		if len(args) > 0 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid season %q", args[0])
			}
			season = parsed
		}
		resp, err := svc.Standings(cmd.Context(), season)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderStandings(resp))
		return nil
	},
}

func init() {
	monthCmd.Flags().StringVar(&flagDate, "date", "", "any date in the month to show (YYYY-MM-DD)")
}

func runPresentation(cmd *cobra.Command, args []string) error {
	svc, err := buildService(cmd.Context())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var pres domain.Presentation
	if flagDate == "" {
		pres, err = svc.BuildLatest(ctx)
	} else {
		d, parseErr := dates.ParseISO(flagDate)
		if parseErr != nil {
			return fmt.Errorf("invalid --date: %w", parseErr)
		}
		pres, err = svc.BuildFor(ctx, d)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderPresentation(pres))
	return nil
}

func buildService(ctx context.Context) (*presentation.Service, error) {
	_ = godotenv.Load()
	cfg := config.Load()

	resolver, err := dates.NewResolver(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	provider := selectProvider(cfg)
	svcCfg := presentation.Config{
		TeamID:        cfg.TeamID,
		LookbackDays:  flagLookback,
		LookaheadDays: cfg.LookaheadDays,
	}
	svc := presentation.NewService(provider, resolver, store.NewDayCache(), nil, svcCfg)

	if flagTeam == "" {
		return svc, nil
	}
	if id, convErr := strconv.Atoi(flagTeam); convErr == nil {
		svcCfg.TeamID = id
	} else {
		team, resolveErr := svc.ResolveTeam(ctx, flagTeam)
		if resolveErr != nil {
			return nil, resolveErr
		}
		svcCfg.TeamID = team.ID
	}
	return presentation.NewService(provider, resolver, store.NewDayCache(), nil, svcCfg), nil
}

func selectProvider(cfg config.Config) providers.DataProvider {
	switch cfg.Provider {
	case "statsapi":
		client := statsapi.NewClient(statsapi.Config{BaseURL: cfg.StatsAPI.BaseURL})
		return providers.NewRateLimitedProvider(client, cfg.StatsAPI.MinInterval, nil)
	default:
		return fixture.New()
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo lets the build embed version metadata.
func SetVersionInfo(v, c string) {
	version = v
	commit = c
}
