package imageProvider

import (
	"net/url"
	"path"
	"strings"
)

var deliveryResourceTypes = map[string]bool{"image": true, "video": true, "raw": true}

// PublicIDFromURL extracts the image store public id from a delivery URL.
// It returns false for URLs that are not served by the image store.
//
//	https://res.cloudinary.com/<cloud>/image/upload/v123/folder/id.jpg -> folder/id
func PublicIDFromURL(rawURL string) (string, bool) {
	if !strings.Contains(rawURL, "cloudinary.com") {
		return "", false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return "", false
	}

	var rest []string
	if idx := indexOf(segments, "upload"); idx >= 0 && idx+1 < len(segments) {
		rest = segments[idx+1:]
		if isVersion(rest[0]) {
			rest = rest[1:]
		}
	} else {
		// other delivery types: <cloud>/<resource>/<type>/<public id...>
		for i, s := range segments {
			if deliveryResourceTypes[s] && i+2 < len(segments) {
				rest = segments[i+2:]
				break
			}
		}
	}
	if len(rest) == 0 {
		rest = segments[len(segments)-1:]
	}

	id := strings.Join(rest, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if id == "" {
		return "", false
	}
	return id, true
}

func indexOf(segments []string, target string) int {
	for i, s := range segments {
		if s == target {
			return i
		}
	}
	return -1
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
