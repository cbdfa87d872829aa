package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vittin/site/pkg/a11y"
)

// errAuditFailed makes the command exit non-zero without repeating the report.
var errAuditFailed = errors.New("accessibility audit failed")

func newAuditCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the rendered page for accessibility issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.renderPage(lang)
			if err != nil {
				return err
			}

			report, err := a11y.Audit(strings.NewReader(page))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.OK() {
				fmt.Fprintln(out, "no issues found")
				return nil
			}
			for _, issue := range report.Issues {
				fmt.Fprintln(out, issue.String())
			}
			fmt.Fprintf(out, "%d issue(s)\n", len(report.Issues))
			return errAuditFailed
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "page language (pt-BR, en); default site.locale")
	return cmd
}
