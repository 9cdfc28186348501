package models

import "regexp"

// Video is a gallery video. It references either an external video URL
// (with a derived YouTube id when one can be parsed) or a locally uploaded
// file under the media directory, never both.
type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	VideoID     string `json:"videoId,omitempty"`
	Description string `json:"description"`
	Uploader    string `json:"uploader"`
	Timestamp   string `json:"timestamp"`
	Approved    bool   `json:"approved"`
	FilePath    string `json:"filePath,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	IsLocalFile bool   `json:"isLocalFile,omitempty"`
	Local       bool   `json:"local,omitempty"`
	Poster      string `json:"poster,omitempty"`
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// ExtractYouTubeID pulls the 11-character video id out of a YouTube URL.
// Returns "" when the URL does not look like a YouTube link.
func ExtractYouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[1]) != 11 {
		return ""
	}
	return m[1]
}
