package domain

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// DocumentMeta is the catalog record for an uploaded evidence file. Binary
// content stays with the upload collaborator; only metadata crosses into
// the journal.
type DocumentMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MediaType string `json:"type"`
}

// allowedMediaTypes is the evidence-file allow-list: PDF, Word, Excel,
// PowerPoint and PNG/JPEG images.
var allowedMediaTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"image/png":  true,
	"image/jpeg": true,
}

// extMediaTypes maps file extensions to media types for local file picks.
var extMediaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

func AllowedMediaType(mediaType string) bool {
	return allowedMediaTypes[mediaType]
}

// MediaTypeForFile derives the media type from a file name's extension.
// Returns false for types outside the allow-list.
func MediaTypeForFile(name string) (string, bool) {
	mt, ok := extMediaTypes[strings.ToLower(filepath.Ext(name))]
	return mt, ok
}

// FilterDocuments drops documents whose media type is not on the allow-list.
func FilterDocuments(docs []DocumentMeta) []DocumentMeta {
	var out []DocumentMeta
	for _, d := range docs {
		if AllowedMediaType(d.MediaType) {
			out = append(out, d)
		}
	}
	return out
}

// FormatFileSize renders a byte count as a human-readable string like "1.5 MB".
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	size := float64(bytes)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d Bytes", bytes)
	}
	rounded := math.Round(size*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(rounded, 'f', -1, 64), units[i])
}
