package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/client/client"
)

// AddAudit prompts for a name and a status and records them.
func (a *App) AddAudit(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter audit name", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter audit status", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	audit, err := a.client.AddAudit(ctx, name, status)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userName = ""
			fmt.Fprintln(a.out, "Session expired, please log in again")
		} else {
			fmt.Fprintf(a.out, "Could not add audit: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Added audit %d\n", audit.ID)
	return nil
}

// List prints audits. args may hold an optional skip and limit:
// "list", "list 20" or "list 20 5".
func (a *App) List(ctx context.Context, args []string) error {
	var skip, limit *int
	for i, arg := range args {
		if i > 1 {
			break
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(a.out, "Usage: list [skip] [limit]")
			return err
		}
		if i == 0 {
			skip = &n
		} else {
			limit = &n
		}
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	audits, err := a.client.ListAudits(ctx, skip, limit)
	if err != nil {
		fmt.Fprintf(a.out, "Could not list audits: %v\n", err)
		return err
	}

	if len(audits) == 0 {
		fmt.Fprintln(a.out, "No audits")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tCREATED")
	for _, au := range audits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", au.ID, au.Name, au.Status, au.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
