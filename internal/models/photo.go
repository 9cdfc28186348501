package models

// Photo is a gallery photo, backed either by an uploaded file or by an
// inline base64 payload from the JSON submit path.
type Photo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Uploader    string `json:"uploader"`
	Timestamp   string `json:"timestamp"`
	Approved    bool   `json:"approved"`
	FilePath    string `json:"filePath,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	IsLocalFile bool   `json:"isLocalFile,omitempty"`
	Data        string `json:"data,omitempty"`
}
