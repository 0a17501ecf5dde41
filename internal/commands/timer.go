package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/data"
	"kitchenkiosk/internal/ui/textutil"
)

func addTimer(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "timer",
		Aliases: []string{"timers"},
		Short:   "List and manage kitchen timers",
		Example: `
kiosk timer ls
kiosk timer new 5m Pasta
kiosk timer pause Pasta
kiosk timer rm Pasta --yes
`,
	}
	addTimerList(cmd, v)
	addTimerNew(cmd, v)
	addTimerStart(cmd, v)
	addTimerPause(cmd, v)
	addTimerRemove(cmd, v)

	topLevel.AddCommand(cmd)
}

func addTimerList(parent *cobra.Command, v *viper.Viper) {
	all := false
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List timers, running first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			timers, err := b.ListTimers(cmd.Context())
			if err != nil {
				return err
			}
			if !all {
				timers = data.ActiveTimers(timers)
			}
			if len(timers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No timers.")
				return nil
			}
			tbl := newTable("ID", "Name", "Left", "Status")
			for _, t := range timers {
				tbl.AddRow(t.ID, t.Name, textutil.FormatSeconds(t.RemainingSec), string(t.Status))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include finished timers.")
	parent.AddCommand(cmd)
}

// parseSeconds accepts plain seconds ("90") or a duration ("1m30s").
func parseSeconds(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration %q: want seconds or a value like 5m", s)
	}
	return int(d / time.Second), nil
}

func addTimerNew(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "new <duration> [name]",
		Short: "Create and start a timer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, b, err := backendFor(v)
			if err != nil {
				return err
			}
			sec, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			if sec <= 0 {
				return fmt.Errorf("duration %q must be positive", args[0])
			}
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				name = cfg.Timer.DefaultName
			}
			t, err := b.CreateTimer(cmd.Context(), sec, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s (%s) for %s\n", t.Name, t.ID, textutil.FormatSeconds(t.DurationSec))
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func findTimer(cmd *cobra.Command, b data.TimerService, ref string) (data.Timer, error) {
	timers, err := b.ListTimers(cmd.Context())
	if err != nil {
		return data.Timer{}, err
	}
	return resolve("timer", ref, timers,
		func(t data.Timer) string { return t.ID },
		func(t data.Timer) string { return t.Name })
}

func addTimerStart(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:     "start <timer>",
		Aliases: []string{"resume"},
		Short:   "Start or resume a timer",
		Args:    exactArgs(1, "a timer id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			t, err := findTimer(cmd, b, args[0])
			if err != nil {
				return err
			}
			t, err = b.StartTimer(cmd.Context(), t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s, %s left\n", t.Name, t.Status, textutil.FormatSeconds(t.RemainingSec))
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addTimerPause(parent *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "pause <timer>",
		Short: "Pause a running timer",
		Args:  exactArgs(1, "a timer id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			t, err := findTimer(cmd, b, args[0])
			if err != nil {
				return err
			}
			t, err = b.PauseTimer(cmd.Context(), t.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is %s, %s left\n", t.Name, t.Status, textutil.FormatSeconds(t.RemainingSec))
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addTimerRemove(parent *cobra.Command, v *viper.Viper) {
	yes := false
	cmd := &cobra.Command{
		Use:     "rm <timer>",
		Aliases: []string{"delete"},
		Short:   "Delete a timer",
		Args:    exactArgs(1, "a timer id or name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := backendFor(v)
			if err != nil {
				return err
			}
			t, err := findTimer(cmd, b, args[0])
			if err != nil {
				return err
			}
			if ok, err := confirmed(cmd, yes, fmt.Sprintf("Delete timer %s?", t.Name)); err != nil || !ok {
				return err
			}
			if err := b.DeleteTimer(cmd.Context(), t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", t.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}
