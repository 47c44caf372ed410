package domain

// LinkRecord represents a registered short link and its owner
type LinkRecord struct {
	ID          string `json:"id"`
	TargetURL   string `json:"target_url"`
	OwnerChatID int64  `json:"owner_chat_id"`
}

// VisitorEvent captures request metadata for a single visit to a short link.
// Built per request, formatted into a notification, then discarded.
type VisitorEvent struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Time      string `json:"time"` // RFC 3339, UTC
}
