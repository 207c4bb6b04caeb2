package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// assignment is one key=value argument.
type assignment struct {
	key   string
	value string
}

// parseAssignments splits key=value arguments. The value may be empty or
// contain further '=' characters.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q (expected key=value)", a)
		}
		out = append(out, assignment{key: strings.ToLower(key), value: value})
	}
	return out, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

// newPageCmd builds the command group for one page.
func newPageCmd[T types.Record[T]](use string, page *crud.Page[T], r *renderer) *cobra.Command {
	var zero T
	fields := zero.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	fieldHelp := "fields: " + strings.Join(keys, ", ")

	cmd := &cobra.Command{
		Use:   use,
		Short: "Manage " + use,
		Long:  "Create, list, edit, and delete " + use + ".\n" + fieldHelp,
	}

	var listJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List " + use,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := page.Records()
			if err != nil {
				return err
			}
			out := r
			if listJSON {
				out = &renderer{jsonMode: true, success: r.success, failure: r.failure, muted: r.muted}
			}
			return renderRecords(out, cmd.OutOrStdout(), recs)
		},
	}
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print records as JSON")

	draftCmd := &cobra.Command{
		Use:   "draft key=value...",
		Short: "Set fields of the new-record draft",
		Long:  "Set fields of the new-record draft without submitting it.\n" + fieldHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyAssignments(args, page.SetDraft); err != nil {
				return err
			}
			return renderFields(r, cmd.OutOrStdout(), "draft", page.Draft())
		},
	}

	createCmd := &cobra.Command{
		Use:   "create [key=value...]",
		Short: "Apply fields to the draft and submit it",
		Long:  "Apply fields to the draft and submit it. Invalid drafts are kept for correction.\n" + fieldHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyAssignments(args, page.SetDraft); err != nil {
				return err
			}
			_, errs, err := page.Create()
			w := cmd.OutOrStdout()
			n, ok := page.Notice()
			r.banner(w, n, ok)
			r.fieldErrors(w, fields, errs)
			return err
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the draft and its errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page.ResetDraft()
			r.note(cmd.OutOrStdout(), "draft cleared")
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Open a record for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := page.BeginEdit(id); err != nil {
				return err
			}
			w, _, _ := page.Editing()
			return renderFields(r, cmd.OutOrStdout(), fmt.Sprintf("editing %s %d", page.Entity(), id), w)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set key=value...",
		Short: "Change fields of the record being edited",
		Long:  "Change fields of the record being edited. Nothing is saved until save.\n" + fieldHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyAssignments(args, page.SetEdit); err != nil {
				return err
			}
			w, _, _ := page.Editing()
			return renderFields(r, cmd.OutOrStdout(), fmt.Sprintf("editing %s %d", page.Entity(), w.RecordID()), w)
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Validate and commit the record being edited",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs, err := page.SubmitEdit()
			if errors.Is(err, types.ErrNoEditSession) {
				return err
			}
			w := cmd.OutOrStdout()
			n, ok := page.Notice()
			r.banner(w, n, ok)
			r.fieldErrors(w, fields, errs)
			return err
		},
	}

	cancelCmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the edit session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page.CancelEdit()
			r.note(cmd.OutOrStdout(), "edit cancelled")
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Ask to delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := page.RequestDelete(id); err != nil {
				return err
			}
			rec, _ := page.PendingDelete()
			name, err := rec.Value(types.FieldName)
			if err != nil {
				return err
			}
			prompt := fmt.Sprintf("Are you sure you want to delete %q?", name)
			if r.jsonMode {
				return r.json(cmd.OutOrStdout(), map[string]any{"prompt": prompt, "pending_delete": rec})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s confirm | %s keep)\n", prompt, use, use)
			return nil
		},
	}

	confirmCmd := &cobra.Command{
		Use:   "confirm",
		Short: "Delete the record awaiting confirmation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := page.ConfirmDelete()
			if errors.Is(err, types.ErrNoPendingDelete) {
				return err
			}
			n, ok := page.Notice()
			r.banner(cmd.OutOrStdout(), n, ok)
			return err
		},
	}

	keepCmd := &cobra.Command{
		Use:   "keep",
		Short: "Cancel the pending delete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page.CancelDelete()
			r.note(cmd.OutOrStdout(), "delete cancelled")
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show draft, edit session, pending delete, and notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showPage(cmd, page, r)
		},
	}

	cmd.AddCommand(listCmd, draftCmd, createCmd, resetCmd, editCmd, setCmd,
		saveCmd, cancelCmd, deleteCmd, confirmCmd, keepCmd, showCmd)
	return cmd
}

func applyAssignments(args []string, set func(key, value string) error) error {
	as, err := parseAssignments(args)
	if err != nil {
		return err
	}
	for _, a := range as {
		if err := set(a.key, a.value); err != nil {
			return err
		}
	}
	return nil
}

// pageState is the JSON form of show.
type pageState[T any] struct {
	Draft         T                  `json:"draft"`
	DraftErrors   types.FieldErrors  `json:"draft_errors,omitempty"`
	Editing       *T                 `json:"editing,omitempty"`
	EditErrors    types.FieldErrors  `json:"edit_errors,omitempty"`
	PendingDelete *T                 `json:"pending_delete,omitempty"`
	Notification  *crud.Notification `json:"notification,omitempty"`
}

func showPage[T types.Record[T]](cmd *cobra.Command, page *crud.Page[T], r *renderer) error {
	w := cmd.OutOrStdout()
	fields := page.Draft().Fields()

	working, editErrs, editing := page.Editing()
	pending, deleting := page.PendingDelete()
	notice, noticed := page.Notice()

	if r.jsonMode {
		st := pageState[T]{Draft: page.Draft(), DraftErrors: page.DraftErrors()}
		if editing {
			st.Editing = &working
			st.EditErrors = editErrs
		}
		if deleting {
			st.PendingDelete = &pending
		}
		if noticed {
			st.Notification = &notice
		}
		return r.json(w, st)
	}

	if err := renderFields(r, w, "draft", page.Draft()); err != nil {
		return err
	}
	r.fieldErrors(w, fields, page.DraftErrors())

	if editing {
		if err := renderFields(r, w, fmt.Sprintf("editing %s %d", page.Entity(), working.RecordID()), working); err != nil {
			return err
		}
		r.fieldErrors(w, fields, editErrs)
	} else {
		r.muted.Fprintln(w, "not editing")
	}

	if deleting {
		name, _ := pending.Value(types.FieldName)
		fmt.Fprintf(w, "pending delete: %s %d (%s)\n", page.Entity(), pending.RecordID(), name)
	} else {
		r.muted.Fprintln(w, "no pending delete")
	}

	if noticed {
		r.banner(w, notice, noticed)
	} else {
		r.muted.Fprintln(w, "no notification")
	}
	return nil
}
