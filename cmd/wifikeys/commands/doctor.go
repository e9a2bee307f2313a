package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/systmms/wifikeys/internal/config"
	dserrors "github.com/systmms/wifikeys/internal/errors"
	"github.com/systmms/wifikeys/internal/wlan"
)

// CheckResult is one row of the doctor report.
type CheckResult struct {
	Name       string
	Status     string // ok, warning, error
	Message    string
	Suggestion string
}

func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and netsh access",
		Long: `Verify that wifikeys can read WiFi keys on this host.

This command checks:
- Configuration file validity
- netsh availability and profile enumeration
- Access to stored keys (requires an elevated prompt for some profiles)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks(cmd, cfg)
			displayCheckResults(cmd.OutOrStdout(), results)

			failed := 0
			for _, r := range results {
				if r.Status == "error" {
					failed++
				}
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nSummary: %d/%d checks passed\n", len(results)-failed, len(results))

			if failed > 0 {
				return dserrors.UserError{
					Message:    fmt.Sprintf("%d check(s) failed", failed),
					Suggestion: "Fix the issues listed above and run 'wifikeys doctor' again",
				}
			}
			loggerFor(cfg).Info("✓ All checks passed")
			return nil
		},
	}

	return cmd
}

func runChecks(cmd *cobra.Command, cfg *config.Config) []CheckResult {
	var results []CheckResult

	if err := cfg.Load(); err != nil {
		return append(results, CheckResult{
			Name:    "configuration",
			Status:  "error",
			Message: firstLine(err.Error()),
		})
	}
	msg := "using built-in defaults"
	if _, err := os.Stat(cfg.Path); err == nil {
		msg = "loaded " + cfg.Path
	}
	results = append(results, CheckResult{Name: "configuration", Status: "ok", Message: msg})

	p := newPipeline(cfg)
	names, err := p.aggregator.ListProfiles(cmd.Context())
	if err != nil {
		r := CheckResult{Name: "enumeration", Status: "error", Message: firstLine(err.Error())}
		var cmdErr dserrors.CommandError
		if errors.As(err, &cmdErr) {
			r.Message = fmt.Sprintf("%s: %s", cmdErr.Command, cmdErr.Message)
			r.Suggestion = cmdErr.Suggestion
		}
		var userErr dserrors.UserError
		if errors.As(err, &userErr) && userErr.Suggestion != "" {
			r.Suggestion = userErr.Suggestion
		}
		results = append(results, r)
		p.flushMetrics()
		return results
	}

	if len(names) == 0 {
		results = append(results, CheckResult{
			Name:       "enumeration",
			Status:     "warning",
			Message:    "no saved profiles",
			Suggestion: "Connect to a WiFi network once so Windows stores its profile",
		})
		p.flushMetrics()
		return results
	}
	results = append(results, CheckResult{
		Name:    "enumeration",
		Status:  "ok",
		Message: fmt.Sprintf("%d profile(s) via %s", len(names), p.source.Command()),
	})

	results = append(results, checkKeyAccess(cmd, p, names[0]))
	p.flushMetrics()
	return results
}

func checkKeyAccess(cmd *cobra.Command, p *pipeline, name wlan.ProfileName) CheckResult {
	r := CheckResult{Name: "key access"}
	cred := p.source.FetchSecret(cmd.Context(), name)
	switch cred.Kind() {
	case wlan.KindSecret:
		r.Status = "ok"
		r.Message = fmt.Sprintf("key readable for %q", name)
	case wlan.KindNoSecret:
		r.Status = "warning"
		r.Message = fmt.Sprintf("no key stored for %q", name)
		r.Suggestion = "Open profiles and enterprise networks have no readable key"
	default:
		r.Status = "error"
		r.Message = firstLine(cred.Err().Error())
		var cmdErr dserrors.CommandError
		if errors.As(cred.Err(), &cmdErr) {
			r.Suggestion = cmdErr.Suggestion
		}
	}
	return r
}

func displayCheckResults(out io.Writer, results []CheckResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "CHECK\tSTATUS\tMESSAGE\n")
	_, _ = fmt.Fprintf(w, "-----\t------\t-------\n")

	for _, r := range results {
		status := r.Status
		switch r.Status {
		case "ok":
			status = "✓ " + status
		case "warning":
			status = "⚠ " + status
		case "error":
			status = "✗ " + status
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, status, r.Message)
	}
	_ = w.Flush()

	for _, r := range results {
		if r.Suggestion != "" {
			_, _ = fmt.Fprintf(out, "\n%s: %s\n  💡 Try: %s\n", r.Name, r.Status, r.Suggestion)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
