package models

// Permission is the access level granted on a document.
type Permission int

const (
	PermissionRead   Permission = 1
	PermissionEdit   Permission = 2
	PermissionManage Permission = 3
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionEdit:
		return "edit"
	case PermissionManage:
		return "manage"
	default:
		return "unknown"
	}
}

// Document is the client-visible projection of a document.
//
// Times are kept as the server formats them; the client never does
// arithmetic on them.
type Document struct {
	ID             ID         `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	CreatorID      ID         `json:"creatorId"`
	CreatorName    string     `json:"creatorName"`
	Version        int        `json:"version"`
	Status         int        `json:"status"`
	PermissionType Permission `json:"permissionType"`
	CreateTime     string     `json:"createTime"`
	UpdateTime     string     `json:"updateTime"`
}

// CreateDocumentRequest is the body of a create-document call.
type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DocumentMember is an explicit per-user grant on a document.
type DocumentMember struct {
	UserID         ID         `json:"userId"`
	Username       string     `json:"username"`
	Nickname       string     `json:"nickname"`
	Avatar         string     `json:"avatar"`
	PermissionType Permission `json:"permissionType"`
	IsCreator      bool       `json:"isCreator"`
}

// ShareLink is a capability token granting access to a document.
type ShareLink struct {
	ID             ID         `json:"id"`
	DocumentID     ID         `json:"documentId"`
	DocumentTitle  string     `json:"documentTitle"`
	Token          string     `json:"token"`
	ShareURL       string     `json:"shareUrl"`
	PermissionType Permission `json:"permissionType"`
	ExpireTime     string     `json:"expireTime"`
	MaxUses        int        `json:"maxUses"`
	UsedCount      int        `json:"usedCount"`
	Status         int        `json:"status"`
	CreateTime     string     `json:"createTime"`
}

// CreateShareLinkRequest describes a new share link. Zero ValidDays means
// no expiry and zero MaxUses means unlimited uses.
type CreateShareLinkRequest struct {
	DocumentID     ID         `json:"documentId"`
	PermissionType Permission `json:"permissionType"`
	ValidDays      int        `json:"validDays"`
	MaxUses        int        `json:"maxUses"`
}

// HistoryVersion is a saved snapshot of a document.
type HistoryVersion struct {
	ID            ID     `json:"id"`
	DocumentID    ID     `json:"documentId"`
	Version       int    `json:"version"`
	Content       string `json:"content"`
	OperationType int    `json:"operationType"`
	OperationDesc string `json:"operationDesc"`
	OperatorID    ID     `json:"operatorId"`
	OperatorName  string `json:"operatorName"`
	CreateTime    string `json:"createTime"`
}
