package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"roguewar-client/internal/dataobj"
	apperr "roguewar-client/internal/errors"
	"roguewar-client/internal/logger"
)

// Format selects how a command prints its result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s. An empty s picks text for terminals and JSON for
// pipes and files.
func ParseFormat(s string, toFile bool) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "table":
		return FormatText, nil
	case "":
		if !toFile && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
			return FormatText, nil
		}
		return FormatJSON, nil
	default:
		return "", apperr.Validationf("unknown format %q (want json, yaml or text)", s)
	}
}

// table is the text rendering of a result.
type table struct {
	headers []string
	rows    [][]string
}

var title = cases.Title(language.English)

func (t table) render(w io.Writer) error {
	tw := tablewriter.NewTable(w)
	headers := make([]any, len(t.headers))
	for i, h := range t.headers {
		headers[i] = title.String(h)
	}
	tw.Header(headers...)
	for _, row := range t.rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := tw.Append(cells...); err != nil {
			return err
		}
	}
	return tw.Render()
}

// emit writes o in format to w, or to path when path is set.
// JSON files are written with dataobj.SaveFile so they load back with
// dataobj.LoadFile (and the load command) unchanged.
func emit(w io.Writer, path string, format Format, o dataobj.Object, text func() table) error {
	if path != "" && format == FormatJSON {
		if err := dataobj.SaveFile(o, path); err != nil {
			return err
		}
		logger.Success("Output", fmt.Sprintf("wrote %s (%s)", path, format))
		return nil
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		data, err := dataobj.ToJSON(o, true)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case FormatYAML:
		data, err := dataobj.ToYAML(o)
		if err != nil {
			return err
		}
		buf.Write(data)
	default:
		if err := text().render(&buf); err != nil {
			return err
		}
	}

	if path == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Success("Output", fmt.Sprintf("wrote %s (%s)", path, format))
	return nil
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
