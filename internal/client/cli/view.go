package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fyoffice/fyoffice/internal/client/httpx"
	"github.com/fyoffice/fyoffice/internal/client/listview"
	"github.com/fyoffice/fyoffice/internal/common"
)

// tableView bundles a list controller with the rendering shared by every
// entity view: the table itself, the display-range readout and the common
// page/size/sort/search subcommands.
type tableView[T any] struct {
	name    string
	ctrl    *listview.Controller[T]
	headers []string
	row     func(T) []string
}

// handleCommon dispatches the subcommands every entity view shares. It
// reports whether the command was consumed.
func (v *tableView[T]) handleCommon(ctx context.Context, a *App, args []string) bool {
	if len(args) == 0 {
		v.reload(ctx, a)
		return true
	}

	switch args[0] {
	case "list":
		v.reload(ctx, a)
	case "page":
		n, err := parseNumber(args[1:])
		if err != nil {
			fmt.Fprintln(a.out, "Usage:", v.name, "page <n>")
			return true
		}
		if err := v.ctrl.SetPage(ctx, n-1); err != nil {
			v.printError(a, err)
			return true
		}
		v.render(a)
	case "size":
		n, err := parseNumber(args[1:])
		if err != nil {
			fmt.Fprintln(a.out, "Usage:", v.name, "size <10|25|50|100>")
			return true
		}
		if err := v.ctrl.SetPageSize(ctx, n); err != nil {
			if errors.Is(err, listview.ErrInvalidPageSize) {
				fmt.Fprintln(a.out, "Page size must be one of 10, 25, 50, 100.")
			} else {
				v.printError(a, err)
			}
			return true
		}
		v.render(a)
	case "sort":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage:", v.name, "sort <column>")
			return true
		}
		col, ok := v.findColumn(strings.Join(args[1:], " "))
		if !ok {
			fmt.Fprintln(a.out, "Unknown column. Columns:", strings.Join(v.columnNames(), ", "))
			return true
		}
		v.ctrl.SetOrder(col)
		v.render(a)
	case "search":
		v.ctrl.SetSearch(strings.Join(args[1:], " "))
		v.render(a)
	default:
		return false
	}
	return true
}

func (v *tableView[T]) reload(ctx context.Context, a *App) {
	if err := v.ctrl.Load(ctx); err != nil {
		v.printError(a, err)
		return
	}
	v.render(a)
}

func (v *tableView[T]) render(a *App) {
	rows := v.ctrl.Visible()
	page, _ := v.ctrl.Snapshot()
	order, dir := v.ctrl.Order()

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	headers := make([]string, len(v.headers))
	copy(headers, v.headers)
	if order != listview.NoOrder && order < len(headers) {
		marker := " (asc)"
		if dir == listview.Descending {
			marker = " (desc)"
		}
		headers[order] += marker
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(w, strings.Join(v.row(r), "\t"))
	}
	w.Flush()

	fmt.Fprintf(a.out, "Showing %s of %d total items.\n", page.DisplayRange(), page.Count)
	req := v.ctrl.Request()
	pages := page.Pages
	if pages == 0 {
		pages = 1
	}
	fmt.Fprintf(a.out, "Page %d of %d (size %d)\n", req.Page+1, pages, req.PageSize)
	if term := v.ctrl.Search(); term != "" {
		fmt.Fprintf(a.out, "Filter: %q (current page only)\n", term)
	}
}

func (v *tableView[T]) findColumn(input string) (int, bool) {
	cols := v.ctrl.Columns()
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(cols) {
		return n - 1, true
	}
	for i, c := range cols {
		if strings.EqualFold(c.Name, input) {
			return i, true
		}
	}
	return 0, false
}

func (v *tableView[T]) columnNames() []string {
	cols := v.ctrl.Columns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func (v *tableView[T]) printError(a *App, err error) {
	if common.IsCanceled(err) {
		return
	}
	fmt.Fprintln(a.out, "Error:", httpx.Detail(err))
}

func parseNumber(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing number")
	}
	return strconv.Atoi(args[0])
}

func parseID(a *App, usage string, args []string) (int, bool) {
	id, err := parseNumber(args)
	if err != nil || id <= 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	return id, true
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
