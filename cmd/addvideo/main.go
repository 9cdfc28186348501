// Command addvideo registers an already-present local video file in the
// JSON data file, pre-approved. Meant for operators seeding content from
// the shell instead of the upload endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"church-backend/internal/models"
	"church-backend/internal/store/filestore"
)

func main() {
	file := flag.String("file", "", "path to the video file, relative to the server root")
	title := flag.String("title", "", "display title (defaults to the filename)")
	uploader := flag.String("uploader", "Admin", "uploader name")
	dataFile := flag.String("data", "moc-data.json", "JSON data file")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	info, err := os.Stat(*file)
	if err != nil {
		log.Fatalf("Video file not found: %v", err)
	}

	name := filepath.Base(*file)
	if *title == "" {
		*title = name
	}

	video := &models.Video{
		ID:          models.NewID(),
		Title:       *title,
		URL:         "/" + filepath.ToSlash(*file),
		Uploader:    *uploader,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    true,
		FilePath:    filepath.ToSlash(*file),
		FileSize:    info.Size(),
		FileName:    name,
		IsLocalFile: true,
		Local:       true,
	}

	videos := filestore.NewVideoRepository(filestore.New(*dataFile))
	if err := videos.Create(context.Background(), video); err != nil {
		log.Fatalf("Failed to save video: %v", err)
	}

	fmt.Printf("Added approved video %d: %s\n", video.ID, video.Title)
}
