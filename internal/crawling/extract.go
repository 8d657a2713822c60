// Package crawling walks a website breadth first and collects the text of every page it reaches.
package crawling

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns the distinct http(s) links in htmlContent that point
// at the same host as baseURL, in document order. Relative links are resolved
// against baseURL and every link is normalized with NormalizeURL.
func ExtractLinks(htmlContent string, baseURL string) ([]string, error) {
	base, err := parseAbsolute(baseURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	seen := make(map[string]bool)
	links := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		absolute := base.ResolveReference(linkURL)
		if absolute.Scheme != "http" && absolute.Scheme != "https" {
			return
		}
		if absolute.Host != base.Host {
			return
		}

		normalized := normalize(absolute)
		if !seen[normalized] {
			seen[normalized] = true
			links = append(links, normalized)
		}
	})

	return links, nil
}

// NormalizeURL strips the fragment and any trailing slash so that equivalent
// links compare equal in the visited set.
func NormalizeURL(raw string) (string, error) {
	u, err := parseAbsolute(raw)
	if err != nil {
		return "", err
	}
	return normalize(u), nil
}

func normalize(u *url.URL) string {
	clone := *u
	clone.Fragment = ""
	clone.RawFragment = ""
	return strings.TrimSuffix(clone.String(), "/")
}

func parseAbsolute(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &LinkExtractionError{Message: "failed to parse URL", Cause: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &LinkExtractionError{Message: fmt.Sprintf("invalid URL: %s (must have scheme and host)", raw)}
	}
	return u, nil
}
