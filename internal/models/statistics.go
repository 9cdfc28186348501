package models

// Statistics is the admin dashboard summary. Icon counts are only present
// when the relational backend (the only one that stores icons) is active.
type Statistics struct {
	TotalMessages  int64 `json:"totalMessages"`
	UnreadMessages int64 `json:"unreadMessages"`
	TotalVideos    int64 `json:"totalVideos"`
	ApprovedVideos int64 `json:"approvedVideos"`
	TotalPhotos    int64 `json:"totalPhotos"`
	ApprovedPhotos int64 `json:"approvedPhotos"`
	TotalIcons     int64 `json:"totalIcons,omitempty"`
	ApprovedIcons  int64 `json:"approvedIcons,omitempty"`
}
