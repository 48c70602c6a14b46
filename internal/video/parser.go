// Package video detects the hosting platform of a candidate's introduction
// video link and derives an embeddable player URL for the dashboard.
package video

import "regexp"

// Info describes a parsed video link. Unknown platforms keep the original
// URL so the UI can still render a plain link.
type Info struct {
	Platform    string `json:"platform"`
	VideoID     string `json:"videoId,omitempty"`
	EmbedURL    string `json:"embedUrl,omitempty"`
	OriginalURL string `json:"originalUrl"`
}

var (
	youtubeRe = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	loomRe    = regexp.MustCompile(`loom\.com/share/([a-zA-Z0-9]+)`)
	driveRe   = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
	vimeoRe   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// Parse returns metadata for url, or nil when url is empty.
func Parse(url string) *Info {
	if url == "" {
		return nil
	}

	if m := youtubeRe.FindStringSubmatch(url); m != nil {
		return &Info{
			Platform:    "youtube",
			VideoID:     m[1],
			EmbedURL:    "https://www.youtube.com/embed/" + m[1],
			OriginalURL: url,
		}
	}

	if m := loomRe.FindStringSubmatch(url); m != nil {
		return &Info{
			Platform:    "loom",
			VideoID:     m[1],
			EmbedURL:    "https://www.loom.com/embed/" + m[1],
			OriginalURL: url,
		}
	}

	if m := driveRe.FindStringSubmatch(url); m != nil {
		return &Info{
			Platform:    "google_drive",
			VideoID:     m[1],
			EmbedURL:    "https://drive.google.com/file/d/" + m[1] + "/preview",
			OriginalURL: url,
		}
	}

	if m := vimeoRe.FindStringSubmatch(url); m != nil {
		return &Info{
			Platform:    "vimeo",
			VideoID:     m[1],
			EmbedURL:    "https://player.vimeo.com/video/" + m[1],
			OriginalURL: url,
		}
	}

	return &Info{Platform: "unknown", OriginalURL: url}
}
