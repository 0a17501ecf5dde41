package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kitchenkiosk/internal/config"
	"kitchenkiosk/internal/data"
)

// backendFor loads the configuration and opens its data backend.
func backendFor(v *viper.Viper) (*config.Config, data.Backend, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	b, err := openBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, b, nil
}

// resolve finds the record ref names: an exact ID wins, otherwise the name
// must match exactly one record, ignoring case.
func resolve[T any](kind, ref string, records []T, id, name func(T) string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	for _, r := range records {
		if id(r) == ref {
			return r, nil
		}
	}
	var found []T
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(name(r)), ref) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", kind, ref, data.ErrNotFound)
	case 1:
		return found[0], nil
	}
	ids := make([]string, len(found))
	for i, r := range found {
		ids[i] = id(r)
	}
	return zero, fmt.Errorf("%s %q is ambiguous, use one of the ids %s", kind, ref, strings.Join(ids, ", "))
}

// confirm asks question on out and reads the answer from in. Only "y" or
// "yes" agree.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// confirmed is confirm for a command, skipped when its --yes flag is set.
func confirmed(cmd *cobra.Command, yes bool, question string) (bool, error) {
	if yes {
		return true, nil
	}
	ok, err := confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question)
	if err == nil && !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing changed.")
	}
	return ok, err
}

// newTable returns a table with a bold header row.
func newTable(headers ...interface{}) *uitable.Table {
	bold := color.New(color.Bold)
	for i, h := range headers {
		headers[i] = bold.Sprint(h)
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(headers...)
	return tbl
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("requires %s", usage)
		}
		return nil
	}
}
