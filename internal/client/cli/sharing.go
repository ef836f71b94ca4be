package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
	"github.com/dmitrijs2005/collabdocs/internal/client/router"
)

// memberArgs parses "<docId> <userId> <perm>".
func memberArgs(args []string) (models.ID, models.ID, models.Permission, error) {
	if len(args) != 3 {
		return "", "", 0, errUsage
	}
	perm, err := parsePermission(args[2])
	if err != nil {
		return "", "", 0, err
	}
	return models.ID(args[0]), models.ID(args[1]), perm, nil
}

func (a *App) Share(ctx context.Context, args []string) error {
	doc, user, perm, err := memberArgs(args)
	if err != nil {
		return err
	}
	if _, ok := a.enter(ctx, documentPath(doc), router.RouteDocument); !ok {
		return nil
	}
	if err := a.sharing.ShareWith(ctx, doc, user, perm); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Shared document %s with user %s (%s).\n", doc, user, perm)
	return nil
}

func (a *App) Members(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	doc := models.ID(args[0])
	if _, ok := a.enter(ctx, documentPath(doc), router.RouteDocument); !ok {
		return nil
	}
	members, err := a.sharing.Members(ctx, doc)
	if err != nil {
		return err
	}
	printMembers(a.out, members)
	return nil
}

func (a *App) SetPermission(ctx context.Context, args []string) error {
	doc, user, perm, err := memberArgs(args)
	if err != nil {
		return err
	}
	if _, ok := a.enter(ctx, documentPath(doc), router.RouteDocument); !ok {
		return nil
	}
	if err := a.sharing.SetMemberPermission(ctx, doc, user, perm); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "User %s now has %s permission.\n", user, perm)
	return nil
}

func (a *App) Kick(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	doc, user := models.ID(args[0]), models.ID(args[1])
	if _, ok := a.enter(ctx, documentPath(doc), router.RouteDocument); !ok {
		return nil
	}
	if err := a.sharing.RemoveMember(ctx, doc, user); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed user %s from document %s.\n", user, doc)
	return nil
}

func (a *App) CreateLink(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return errUsage
	}
	req := models.CreateShareLinkRequest{DocumentID: models.ID(args[0])}
	var err error
	if req.PermissionType, err = parsePermission(args[1]); err != nil {
		return err
	}
	if len(args) > 2 {
		if req.ValidDays, err = parseInt(args[2], "days"); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		if req.MaxUses, err = parseInt(args[3], "uses"); err != nil {
			return err
		}
	}
	if _, ok := a.enter(ctx, documentPath(req.DocumentID), router.RouteDocument); !ok {
		return nil
	}

	link, err := a.sharing.CreateLink(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Share link %s created: token %s\n", link.ID, link.Token)
	if link.ShareURL != "" {
		fmt.Fprintln(a.out, link.ShareURL)
	}
	return nil
}

func (a *App) Links(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	doc := models.ID(args[0])
	if _, ok := a.enter(ctx, documentPath(doc), router.RouteDocument); !ok {
		return nil
	}
	links, err := a.sharing.Links(ctx, doc)
	if err != nil {
		return err
	}
	printLinks(a.out, links)
	return nil
}

func (a *App) Revoke(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if _, ok := a.enter(ctx, "/documents", router.RouteDocuments); !ok {
		return nil
	}
	if err := a.sharing.DisableLink(ctx, models.ID(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Share link %s disabled.\n", args[0])
	return nil
}

// Preview shows what a share token grants. It works without a session.
func (a *App) Preview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	loc, ok := a.enter(ctx, "/share/"+url.PathEscape(args[0]), router.RouteShareJoin)
	if !ok {
		return nil
	}
	link, err := a.sharing.LinkInfo(ctx, loc.Param("token"))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Document %q (id %s), %s access\n", link.DocumentTitle, link.DocumentID, link.PermissionType)
	return nil
}

// Join redeems a share token. The share page is public but joining needs a
// session, so an anonymous user is sent to log in and brought back here.
func (a *App) Join(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	path := "/share/" + url.PathEscape(args[0])
	loc, ok := a.enter(ctx, path, router.RouteShareJoin)
	if !ok {
		return nil
	}
	if !a.session.IsAuthenticated() {
		q := url.Values{router.RedirectParam: {loc.FullPath()}}
		if _, err := a.nav.Push(ctx, router.LoginPath+"?"+q.Encode()); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Please log in to join this document.")
		return nil
	}
	if err := a.sharing.Join(ctx, loc.Param("token")); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Joined. Run 'docs' to see it.")
	return nil
}
