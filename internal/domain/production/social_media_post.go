package production

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus tracks a planned social media post through publication
type PostStatus string

const (
	PostStatusDraft     PostStatus = "Draf"
	PostStatusScheduled PostStatus = "Terjadwal"
	PostStatusPosted    PostStatus = "Diposting"
	PostStatusCanceled  PostStatus = "Dibatalkan"
)

// SocialMediaPost is one entry in the social planner, optionally tied to a
// project whose deliverables it promotes.
type SocialMediaPost struct {
	ID            uuid.UUID  `json:"id"`
	ProjectID     uuid.UUID  `json:"projectId"`
	ClientName    string     `json:"clientName"`
	PostType      string     `json:"postType"`
	Platform      string     `json:"platform"`
	ScheduledDate string     `json:"scheduledDate"`
	Caption       string     `json:"caption"`
	MediaURL      string     `json:"mediaUrl"`
	Status        PostStatus `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
}
