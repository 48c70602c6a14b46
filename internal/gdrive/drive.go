// Package gdrive wraps the Google Drive v3 API for fetching candidate CV
// files and for deriving browser-facing download/preview URLs.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	// Load env
	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// File is a downloaded Drive file. Google-native documents are exported as
// PDF, so MimeType reflects the downloaded bytes rather than the source type.
type File struct {
	Data     []byte
	MimeType string
	Name     string
}

// Client talks to the Drive API with an API key.
type Client struct {
	svc *drive.Service
}

// googleDocTypes are Drive-native formats that cannot be downloaded directly
// and must be exported instead.
var googleDocTypes = map[string]bool{
	"application/vnd.google-apps.document":     true,
	"application/vnd.google-apps.spreadsheet":  true,
	"application/vnd.google-apps.presentation": true,
}

// NewClient builds a Drive client from the GOOGLE_API_KEY environment.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is not configured")
	}

	svc, err := drive.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// DownloadFile fetches a file's bytes, exporting Google-native documents as
// PDF first.
func (c *Client) DownloadFile(ctx context.Context, fileID string) (*File, error) {
	meta, err := c.svc.Files.Get(fileID).Fields("id", "name", "mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file metadata: %w", err)
	}

	if googleDocTypes[meta.MimeType] {
		resp, err := c.svc.Files.Export(fileID, "application/pdf").Context(ctx).Download()
		if err != nil {
			return nil, fmt.Errorf("failed to export file as pdf: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read exported file: %w", err)
		}
		return &File{Data: data, MimeType: "application/pdf", Name: meta.Name + ".pdf"}, nil
	}

	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return &File{Data: data, MimeType: meta.MimeType, Name: meta.Name}, nil
}

var (
	openLinkRe = regexp.MustCompile(`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`)
	fileLinkRe = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
)

// ExtractFileID pulls the Drive file id out of a shared link. An unrelated
// URL yields the empty string, not an error.
func ExtractFileID(url string) string {
	if url == "" {
		return ""
	}
	if m := openLinkRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := fileLinkRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// DownloadURL is the direct-download link for a file id.
func DownloadURL(fileID string) string {
	return "https://drive.google.com/uc?export=download&id=" + fileID
}

// PreviewURL is the in-browser viewer link for a file id.
func PreviewURL(fileID string) string {
	return "https://drive.google.com/file/d/" + fileID + "/preview"
}
