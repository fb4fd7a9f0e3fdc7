package youtube

import "regexp"

// videoIDPatterns cover the URL shapes videos get shared with: watch pages,
// youtu.be short links, and embeds. Video IDs are always 11 characters.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// ResolveVideoID extracts the video ID from a watch, short, or embed URL.
// Input matching no pattern is returned unchanged on the assumption it
// already is an ID; a wrong guess surfaces as not-found at fetch time.
func ResolveVideoID(input string) string {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1]
		}
	}
	return input
}
