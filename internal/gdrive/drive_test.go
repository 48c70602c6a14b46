package gdrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFileID_OpenLink(t *testing.T) {
	assert.Equal(t, "ABC123", ExtractFileID("https://drive.google.com/open?id=ABC123"))
}

func TestExtractFileID_FileLink(t *testing.T) {
	assert.Equal(t, "XYZ789", ExtractFileID("https://drive.google.com/file/d/XYZ789/view"))
	assert.Equal(t, "a_B-c1", ExtractFileID("https://drive.google.com/file/d/a_B-c1/view?usp=sharing"))
}

func TestExtractFileID_UnrelatedURL(t *testing.T) {
	assert.Empty(t, ExtractFileID("https://example.com/cv.pdf"))
	assert.Empty(t, ExtractFileID(""))
}

func TestURLBuilders(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=F1", DownloadURL("F1"))
	assert.Equal(t, "https://drive.google.com/file/d/F1/preview", PreviewURL("F1"))
}
