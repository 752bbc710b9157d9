// Package fetch - platform.go provides hosting-platform detection and
// platform-specific selectors for resume pages.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known resume hosting platform.
type Platform string

const (
	// PlatformGitHubPages is a github.io personal site
	PlatformGitHubPages Platform = "github-pages"
	// PlatformNotion is a public Notion page
	PlatformNotion Platform = "notion"
	// PlatformLinkedIn is a public LinkedIn profile page
	PlatformLinkedIn Platform = "linkedin"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the hosting platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.HasSuffix(host, "github.io") {
		return PlatformGitHubPages
	}

	if strings.Contains(host, "notion.site") ||
		strings.Contains(host, "notion.so") {
		return PlatformNotion
	}

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGitHubPages:
		return []string{
			".resume",
			"#resume",
			".markdown-body", // Jekyll/GitHub Pages default theme
			"main",
			"article",
			".content",
		}
	case PlatformNotion:
		return []string{
			".notion-page-content",
			".notion-app-inner",
			"main",
		}
	case PlatformLinkedIn:
		return []string{
			".core-section-container",
			".profile-section",
			"main",
		}
	default:
		return ResumePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Contact and download widgets
		".contact-form",
		".download-button",
		".print-button",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformGitHubPages:
		return append(common,
			".site-header",
			".site-footer",
			".page-navigation",
		)
	case PlatformNotion:
		return append(common,
			".notion-topbar",
			".notion-overlay-container",
		)
	case PlatformLinkedIn:
		return append(common,
			".join-form",
			".sign-in-modal",
			".ad-banner-container",
		)
	default:
		return common
	}
}
