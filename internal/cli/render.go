package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
	"github.com/mesh-intelligence/officedesk/pkg/types"
)

// renderer writes records, banners, and field errors to the shell output.
type renderer struct {
	jsonMode bool
	success  *color.Color
	failure  *color.Color
	muted    *color.Color
}

func newRenderer(useColor, jsonMode bool) *renderer {
	r := &renderer{
		jsonMode: jsonMode,
		success:  color.New(color.FgGreen, color.Bold),
		failure:  color.New(color.FgRed, color.Bold),
		muted:    color.New(color.Faint),
	}
	// With color on, fatih/color still drops escapes when stdout is not a terminal.
	if !useColor {
		r.success.DisableColor()
		r.failure.DisableColor()
		r.muted.DisableColor()
	}
	return r
}

// banner prints the notification, or nothing if the channel is empty.
func (r *renderer) banner(w io.Writer, n crud.Notification, ok bool) {
	if !ok {
		return
	}
	if r.jsonMode {
		_ = r.json(w, n)
		return
	}
	c := r.success
	if n.Kind == crud.KindError {
		c = r.failure
	}
	c.Fprintln(w, "["+string(n.Kind)+"] "+n.Message)
}

// note prints a short status line, or {"status": msg} in JSON mode.
func (r *renderer) note(w io.Writer, msg string) {
	if r.jsonMode {
		_ = r.json(w, map[string]string{"status": msg})
		return
	}
	r.muted.Fprintln(w, msg)
}

// fieldErrors lists errs in schema order.
func (r *renderer) fieldErrors(w io.Writer, fields []types.Field, errs types.FieldErrors) {
	if errs.Valid() {
		return
	}
	if r.jsonMode {
		_ = r.json(w, map[string]types.FieldErrors{"errors": errs})
		return
	}
	for _, f := range fields {
		if msg, ok := errs[f.Key]; ok {
			r.failure.Fprintf(w, "  %s: %s\n", f.Title, msg)
		}
	}
}

// renderRecords prints a table with an ID column followed by the entity fields.
func renderRecords[T types.Record[T]](r *renderer, w io.Writer, recs []T) error {
	if r.jsonMode {
		return r.json(w, recs)
	}
	var zero T
	fields := zero.Fields()
	if len(recs) == 0 {
		r.muted.Fprintf(w, "no %s records\n", zero.Entity())
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "ID")
	for _, f := range fields {
		fmt.Fprint(tw, "\t"+f.Title)
	}
	fmt.Fprintln(tw)
	for _, rec := range recs {
		fmt.Fprint(tw, strconv.Itoa(rec.RecordID()))
		for _, f := range fields {
			v, err := rec.Value(f.Key)
			if err != nil {
				return err
			}
			fmt.Fprint(tw, "\t"+v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// renderFields prints one record as key: value lines under a heading.
func renderFields[T types.Record[T]](r *renderer, w io.Writer, heading string, rec T) error {
	if r.jsonMode {
		return r.json(w, map[string]any{"state": heading, "record": rec})
	}
	fmt.Fprintln(w, heading)
	for _, f := range rec.Fields() {
		v, err := rec.Value(f.Key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s: %q\n", f.Title, v)
	}
	return nil
}

func (r *renderer) json(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
