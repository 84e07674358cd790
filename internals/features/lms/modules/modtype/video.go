// file: internals/features/lms/modules/modtype/video.go
package modtype

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

// Allow-list of hosted-video URL shapes. Anything else is rejected even when
// it parses as a URL, so authors cannot embed arbitrary iframes.
var videoHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(https?://)?(www\.)?youtube\.com/watch\?v=[\w-]{6,}`),
	regexp.MustCompile(`^(https?://)?(www\.)?youtube\.com/shorts/[\w-]{6,}`),
	regexp.MustCompile(`^(https?://)?youtu\.be/[\w-]{6,}`),
	regexp.MustCompile(`^(https?://)?(www\.)?vimeo\.com/\d+`),
	regexp.MustCompile(`^(https?://)?(www\.)?dailymotion\.com/video/[\w]+`),
	regexp.MustCompile(`^(https?://)?([\w-]+\.)?wistia\.com/medias/[\w]+`),
}

type videoDefinition struct{}

func init() { Register(videoDefinition{}) }

func (videoDefinition) Type() string { return TypeVideo }

func (videoDefinition) Meta() DisplayMeta {
	return DisplayMeta{
		Label:       "Video",
		Description: "Embedded video from a supported platform",
		Icon:        "video",
		Editor:      "video-editor",
	}
}

func (videoDefinition) DefaultData() ModuleData { return VideoData{} }

func (videoDefinition) DecodeData(raw []byte) (ModuleData, error) {
	var d VideoData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return d, nil
}

func (videoDefinition) ValidateData(data ModuleData, errs FieldErrors) {
	var d VideoData
	switch v := data.(type) {
	case VideoData:
		d = v
	case *VideoData:
		d = *v
	default:
		errs.add("unexpected payload for video module", "data")
		return
	}

	u := strings.TrimSpace(d.VideoURL)
	switch {
	case u == "":
		errs.add("video_url is required", "data", "video_url")
	case !isValidURL(u):
		errs.add("video_url is not a valid URL", "data", "video_url")
	case !matchesVideoHost(u):
		errs.add("video_url must point to a supported video platform (YouTube, Vimeo, Dailymotion, Wistia)", "data", "video_url")
	}

	if t := strings.TrimSpace(d.ThumbnailURL); t != "" && !isValidURL(t) {
		errs.add("thumbnail_url is not a valid URL", "data", "thumbnail_url")
	}
}

func matchesVideoHost(raw string) bool {
	for _, re := range videoHostPatterns {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	// scheme-less forms like "youtu.be/x" still count as long as a host can
	// be derived; url.Parse puts those in Path.
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if u.Host == "" && u.Scheme == "" {
		return strings.Contains(u.Path, ".")
	}
	return u.Host != ""
}
