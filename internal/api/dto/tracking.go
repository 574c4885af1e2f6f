package dto

// TrackPageViewRequest is the body of a page-view beacon. All fields are
// optional; a missing page is recorded as "/".
type TrackPageViewRequest struct {
	Page      string  `json:"page"`
	UserID    *uint   `json:"userId"`
	UserAgent *string `json:"userAgent"`
	IPAddress *string `json:"ipAddress"`
}

// TrackDiscordJoinRequest is the body of a Discord-join beacon.
type TrackDiscordJoinRequest struct {
	UserID *uint  `json:"userId"`
	Source string `json:"source"`
}

// TrackResponse acknowledges a beacon. Callers fire-and-forget, so this is
// all they ever get.
type TrackResponse struct {
	Success bool `json:"success"`
}
