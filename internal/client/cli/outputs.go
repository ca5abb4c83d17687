package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/scriptoria/internal/api"
	"github.com/dmitrijs2005/scriptoria/internal/common"
	"github.com/dustin/go-humanize"
)

// Generate prompts for a title, an idea and a language and prints the
// generated package.
func (a *App) Generate(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	idea, err := getMultiline(a.reader, "Idea", a.out)
	if err != nil {
		return err
	}
	language, err := getSimpleText(a.reader, "Language (English, Hindi, Telugu; empty for English)", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, mutedStyle.Render("Generating, this can take a minute..."))

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rec, err := a.client.Generate(ctx, title, idea, language)
	if err != nil {
		return a.checkSession(err)
	}
	return a.print(rec)
}

// History lists the newest records.
func (a *App) History(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.History(ctx, common.HistoryDisplayLimit)
	if err != nil {
		return a.checkSession(err)
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "Nothing generated yet.")
		return nil
	}
	for _, r := range list {
		fmt.Fprintf(a.out, "%4d  %s  %s\n", r.GetId(), titleStyle.Render(r.GetTitle()),
			mutedStyle.Render(fmt.Sprintf("(%s, %s)", r.GetLanguage(), humanize.Time(r.GetCreatedAt().AsTime()))))
	}
	return nil
}

// Show renders one record; the id comes from args or a prompt.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.recordID(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rec, err := a.client.Get(ctx, id)
	if err != nil {
		return a.checkSession(err)
	}
	return a.print(rec)
}

// Export downloads one record in the requested format into ExportDir.
func (a *App) Export(ctx context.Context, args []string) error {
	id, err := a.recordID(args)
	if err != nil {
		return err
	}

	var format string
	if len(args) > 1 {
		format = args[1]
	} else if format, err = getSimpleText(a.reader, "Format (txt, pdf, docx)", a.out); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	f, err := a.client.Export(ctx, id, format)
	if err != nil {
		return a.checkSession(err)
	}

	path, err := writeExport(a.config.ExportDir, f)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("Saved "+path))
	if url := f.GetUrl(); url != "" {
		fmt.Fprintln(a.out, mutedStyle.Render("Archived copy: "+url))
	}
	return nil
}

func (a *App) recordID(args []string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, "Record id", a.out); err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a record id", common.ErrInvalidInput, raw)
	}
	return id, nil
}

func (a *App) print(rec *api.Record) error {
	body, err := renderMarkdown(rec.GetContent())
	if err != nil {
		body = rec.GetContent()
	}

	fmt.Fprintf(a.out, "%s %s\n", titleStyle.Render(fmt.Sprintf("#%d %s", rec.GetId(), rec.GetTitle())),
		mutedStyle.Render(fmt.Sprintf("(%s, %s)", rec.GetLanguage(), humanize.Time(rec.GetCreatedAt().AsTime()))))
	fmt.Fprintln(a.out, body)
	return nil
}

// writeExport stores f under dir and returns the written path. Only the
// base of the server-chosen name is used.
func writeExport(dir string, f *api.ExportResponse) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(f.FileName))
	if err := os.WriteFile(path, f.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
