package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// pageStatus is one row of the status output.
type pageStatus struct {
	Page         string             `json:"page"`
	Records      int                `json:"records"`
	Editing      bool               `json:"editing"`
	Deleting     bool               `json:"pending_delete"`
	Notification *crud.Notification `json:"notification,omitempty"`
}

func statusOf[T types.Record[T]](name string, page *crud.Page[T]) (pageStatus, error) {
	recs, err := page.Records()
	if err != nil {
		return pageStatus{}, err
	}
	_, _, editing := page.Editing()
	_, deleting := page.PendingDelete()
	st := pageStatus{Page: name, Records: len(recs), Editing: editing, Deleting: deleting}
	if n, ok := page.Notice(); ok {
		st.Notification = &n
	}
	return st, nil
}

func newStatusCmd(sess *Session, r *renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session id, backend, and the state of each page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offices, err := statusOf("offices", sess.Offices)
			if err != nil {
				return err
			}
			employees, err := statusOf("employees", sess.Employees)
			if err != nil {
				return err
			}
			pages := []pageStatus{offices, employees}

			w := cmd.OutOrStdout()
			if r.jsonMode {
				return r.json(w, map[string]any{
					"session": sess.ID,
					"backend": sess.Backend,
					"pages":   pages,
				})
			}

			fmt.Fprintf(w, "session: %s\nbackend: %s\n", sess.ID, sess.Backend)
			return renderStatus(r, w, pages)
		},
	}
}

func renderStatus(r *renderer, w io.Writer, pages []pageStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PAGE\tRECORDS\tEDITING\tPENDING DELETE")
	for _, p := range pages {
		fmt.Fprintf(tw, "%s\t%d\t%t\t%t\n", p.Page, p.Records, p.Editing, p.Deleting)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, p := range pages {
		if p.Notification == nil {
			continue
		}
		fmt.Fprintf(w, "%s: ", p.Page)
		r.banner(w, *p.Notification, true)
	}
	return nil
}

func newStatsCmd(sess *Session, r *renderer) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show create, update, and delete counters for this session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := sess.Metrics.Samples()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if r.jsonMode {
				return r.json(w, samples)
			}
			if len(samples) == 0 {
				r.muted.Fprintln(w, "no operations yet")
				return nil
			}
			for _, s := range samples {
				fmt.Fprintln(w, s.String())
			}
			return nil
		},
	}
}
