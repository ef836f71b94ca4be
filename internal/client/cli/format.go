package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/collabdocs/internal/client/models"
)

func table(w io.Writer, header string, rows func(tw io.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func displayName(p *models.UserProfile) string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Username
}

func printProfile(w io.Writer, p *models.UserProfile) {
	fmt.Fprintf(w, "User:     %s (id %s)\n", p.Username, p.UserID)
	fmt.Fprintf(w, "Nickname: %s\n", p.Nickname)
	if p.Email != "" {
		fmt.Fprintf(w, "Email:    %s\n", p.Email)
	}
}

func printDocuments(w io.Writer, docs []models.Document) {
	if len(docs) == 0 {
		fmt.Fprintln(w, "No documents.")
		return
	}
	table(w, "ID\tTITLE\tOWNER\tVERSION\tUPDATED", func(tw io.Writer) {
		for _, d := range docs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", d.ID, d.Title, d.CreatorName, d.Version, d.UpdateTime)
		}
	})
}

func printDocument(w io.Writer, d *models.Document) {
	fmt.Fprintf(w, "# %s (id %s, version %d, by %s)\n", d.Title, d.ID, d.Version, d.CreatorName)
	if d.PermissionType != 0 {
		fmt.Fprintf(w, "Your permission: %s\n", d.PermissionType)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Content)
}

func printUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "Nobody here.")
		return
	}
	table(w, "ID\tUSERNAME\tNICKNAME", func(tw io.Writer) {
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.Nickname)
		}
	})
}

func printRequests(w io.Writer, reqs []models.FriendRequest) {
	if len(reqs) == 0 {
		fmt.Fprintln(w, "No requests.")
		return
	}
	table(w, "ID\tFROM\tTO\tSTATUS\tMESSAGE", func(tw io.Writer) {
		for _, r := range reqs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.FromUsername, r.ToUserID, r.Status, r.Message)
		}
	})
}

func printMembers(w io.Writer, members []models.DocumentMember) {
	table(w, "USER\tUSERNAME\tPERMISSION\tCREATOR", func(tw io.Writer) {
		for _, m := range members {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", m.UserID, m.Username, m.PermissionType, m.IsCreator)
		}
	})
}

func printLinks(w io.Writer, links []models.ShareLink) {
	if len(links) == 0 {
		fmt.Fprintln(w, "No share links.")
		return
	}
	table(w, "ID\tTOKEN\tPERMISSION\tUSES\tEXPIRES", func(tw io.Writer) {
		for _, l := range links {
			uses := fmt.Sprintf("%d", l.UsedCount)
			if l.MaxUses > 0 {
				uses = fmt.Sprintf("%d/%d", l.UsedCount, l.MaxUses)
			}
			expires := l.ExpireTime
			if expires == "" {
				expires = "never"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", l.ID, l.Token, l.PermissionType, uses, expires)
		}
	})
}

func printVersions(w io.Writer, versions []models.HistoryVersion) {
	if len(versions) == 0 {
		fmt.Fprintln(w, "No saved versions.")
		return
	}
	table(w, "VERSION\tBY\tWHEN\tDESCRIPTION", func(tw io.Writer) {
		for _, v := range versions {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", v.Version, v.OperatorName, v.CreateTime, v.OperationDesc)
		}
	})
}
