package blog

import (
	"fmt"
	"regexp"
)

// MediaType discriminates the post media union.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func (t MediaType) Valid() bool {
	return t == MediaImage || t == MediaVideo
}

// Media is a tagged union: an image post carries an object storage
// path, a video post carries an external URL. The constructors are the
// only way values are built, so a row is never both.
type Media struct {
	Type      MediaType `json:"type"`
	ImagePath string    `json:"image_path,omitempty"`
	VideoURL  string    `json:"video_url,omitempty"`
}

func ImageMedia(path string) Media {
	return Media{Type: MediaImage, ImagePath: path}
}

func VideoMedia(url string) Media {
	return Media{Type: MediaVideo, VideoURL: url}
}

// Thumbnail returns the listing image for the post: the stored image
// path, or a provider thumbnail derived from the video URL. Empty when
// neither is derivable.
func (m Media) Thumbnail() string {
	if m.Type == MediaImage {
		return m.ImagePath
	}
	return VideoThumbnail(m.VideoURL)
}

var (
	youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([A-Za-z0-9_-]+)`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// VideoThumbnail extracts a provider video id and builds the public
// thumbnail URL. YouTube and Vimeo are supported.
func VideoThumbnail(url string) string {
	if match := youtubeIDPattern.FindStringSubmatch(url); match != nil {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", match[1])
	}
	if match := vimeoIDPattern.FindStringSubmatch(url); match != nil {
		return fmt.Sprintf("https://vumbnail.com/%s.jpg", match[1])
	}
	return ""
}
