package models

// GalleryIcon is a categorised gallery tile. Icons only exist in the
// relational backend; the JSON data file predates them.
type GalleryIcon struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IconPath    string `json:"iconPath,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
	Uploader    string `json:"uploader"`
	Timestamp   string `json:"timestamp"`
	Approved    bool   `json:"approved"`
	Featured    bool   `json:"featured"`
	Views       int64  `json:"views"`
	IsLocalFile bool   `json:"isLocalFile,omitempty"`
}

// DefaultIconCategory is used when a submission omits the category.
const DefaultIconCategory = "general"
