package models

// FriendRequestStatus is the lifecycle state of a friend request.
type FriendRequestStatus int

const (
	FriendRequestPending  FriendRequestStatus = 0
	FriendRequestAccepted FriendRequestStatus = 1
	FriendRequestRejected FriendRequestStatus = 2
)

func (s FriendRequestStatus) String() string {
	switch s {
	case FriendRequestPending:
		return "pending"
	case FriendRequestAccepted:
		return "accepted"
	case FriendRequestRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// FriendRequest is a directed request between two users.
type FriendRequest struct {
	ID           ID                  `json:"id"`
	FromUserID   ID                  `json:"fromUserId"`
	FromUsername string              `json:"fromUsername"`
	FromNickname string              `json:"fromNickname"`
	FromAvatar   string              `json:"fromAvatar"`
	ToUserID     ID                  `json:"toUserId"`
	Message      string              `json:"message"`
	Status       FriendRequestStatus `json:"status"`
	CreateTime   string              `json:"createTime"`
}

// SendFriendRequest is the body of a send-friend-request call.
type SendFriendRequest struct {
	ToUserID ID     `json:"toUserId"`
	Message  string `json:"message"`
}
