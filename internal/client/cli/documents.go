package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
)

func documentPath(id models.ID) string {
	return "/document/" + url.PathEscape(id.String())
}

func (a *App) ListDocuments(ctx context.Context, _ []string) error {
	if _, ok := a.enter(ctx, "/documents", router.RouteDocuments); !ok {
		return nil
	}
	docs, err := a.docs.List(ctx)
	if err != nil {
		return err
	}
	printDocuments(a.out, docs)
	return nil
}

func (a *App) OpenDocument(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	loc, ok := a.enter(ctx, documentPath(models.ID(args[0])), router.RouteDocument)
	if !ok {
		return nil
	}
	d, err := a.docs.Fetch(ctx, models.ID(loc.Param("id")))
	if err != nil {
		return err
	}
	printDocument(a.out, d)
	return nil
}

func (a *App) NewDocument(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/documents", router.RouteDocuments); !ok {
		return nil
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	d, err := a.docs.Create(ctx, models.CreateDocumentRequest{Title: strings.Join(args, " "), Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created document %s.\n", d.ID)
	return nil
}

func (a *App) EditDocument(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id := models.ID(args[0])
	if _, ok := a.enter(ctx, documentPath(id), router.RouteDocument); !ok {
		return nil
	}
	content, err := GetMultiline(a.reader, "New content", a.out)
	if err != nil {
		return err
	}
	d, err := a.docs.Save(ctx, id, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved document %s (version %d).\n", id, d.Version)
	return nil
}

func (a *App) RemoveDocument(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/documents", router.RouteDocuments); !ok {
		return nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := a.docs.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted document %s.\n", id)
	return nil
}

func (a *App) ListVersions(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	id := models.ID(args[0])
	if _, ok := a.enter(ctx, documentPath(id), router.RouteDocument); !ok {
		return nil
	}
	versions, err := a.history.Versions(ctx, id)
	if err != nil {
		return err
	}
	printVersions(a.out, versions)
	return nil
}

func (a *App) ShowVersion(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	id := models.ID(args[0])
	n, err := parseInt(args[1], "version")
	if err != nil {
		return err
	}
	if _, ok := a.enter(ctx, documentPath(id), router.RouteDocument); !ok {
		return nil
	}
	v, err := a.history.Version(ctx, id, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "# version %d by %s at %s\n\n%s\n", v.Version, v.OperatorName, v.CreateTime, v.Content)
	return nil
}

func (a *App) Rollback(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	id := models.ID(args[0])
	n, err := parseInt(args[1], "version")
	if err != nil {
		return err
	}
	if _, ok := a.enter(ctx, documentPath(id), router.RouteDocument); !ok {
		return nil
	}
	if _, err := a.history.Rollback(ctx, id, n); err != nil {
		return err
	}
	latest, err := a.history.Latest(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Rolled back document %s to version %d (now version %d).\n", id, n, latest)
	return nil
}
