package download

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Filename builds the name an image is stored under: the post's publish
// date, the post index, the image's position within the post, and the
// final path segment of the image URL, percent-decoded once.
func Filename(imageURL string, date time.Time, index string, count int) string {
	var base string
	if u, err := url.Parse(imageURL); err == nil {
		p := u.EscapedPath()
		base = p[strings.LastIndex(p, "/")+1:]
	}
	if decoded, err := url.PathUnescape(base); err == nil {
		base = decoded
	}
	return fmt.Sprintf("%s-%s-%d-%s", date.Format("2006-01-02"), index, count, base)
}

// postIndex extracts the post's identifier from its URL: the last path
// segment, or the one before it when the URL ends with a slash.
func postIndex(postURL string) string {
	u, err := url.Parse(postURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(u.Path, "/")
	last := segments[len(segments)-1]
	if last == "" && len(segments) > 1 {
		last = segments[len(segments)-2]
	}
	return last
}
