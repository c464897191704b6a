// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/pkg/errors"

// Platform identifies an external social platform a creator can link.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
)

// ErrUnknownPlatform is returned when a platform string cannot be parsed.
var ErrUnknownPlatform = errors.New("unknown platform")

// ParsePlatform converts a raw string (e.g. a URL path segment) into a Platform.
func ParsePlatform(raw string) (Platform, error) {
	switch Platform(raw) {
	case PlatformYouTube, PlatformInstagram, PlatformTikTok, PlatformTwitter, PlatformFacebook:
		return Platform(raw), nil
	default:
		return "", errors.Wrapf(ErrUnknownPlatform, "%q", raw)
	}
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
