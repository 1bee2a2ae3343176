package thumbnail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// cdnProbe checks the provider CDN's known thumbnail URL conventions with
// concurrent existence checks; the first URL that answers wins.
type cdnProbe struct {
	baseURL string
	client  *http.Client
}

func (p *cdnProbe) Name() string { return "cdn" }

func (p *cdnProbe) Probe(ctx context.Context, src Source) (string, error) {
	if p.baseURL == "" || src.RecordingID == "" {
		return "", nil
	}

	id := url.PathEscape(src.RecordingID)
	candidates := []string{
		fmt.Sprintf("%s/thumbnails/%s.jpg", p.baseURL, id),
		fmt.Sprintf("%s/thumbnails/%s.png", p.baseURL, id),
		fmt.Sprintf("%s/recordings/%s/thumbnail.jpg", p.baseURL, id),
	}

	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := make(chan string, len(candidates))
	g, gCtx := errgroup.WithContext(probeCtx)
	for _, candidate := range candidates {
		candidate := candidate
		g.Go(func() error {
			if p.exists(gCtx, candidate) {
				found <- candidate
				cancel() // first success wins, stop the other probes
			}
			return nil
		})
	}
	_ = g.Wait()
	close(found)

	for u := range found {
		return u, nil
	}
	return "", nil
}

func (p *cdnProbe) exists(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	return strings.HasPrefix(resp.Header.Get("Content-Type"), "image/")
}

// posterProbe extracts the poster attribute from the <video> tag on the
// public embeddable player page.
type posterProbe struct {
	client *http.Client
}

func (p *posterProbe) Name() string { return "player-poster" }

func (p *posterProbe) Probe(ctx context.Context, src Source) (string, error) {
	if src.EmbedURL == "" {
		return "", nil
	}
	doc, err := fetchHTML(ctx, p.client, src.EmbedURL)
	if err != nil {
		return "", err
	}
	return findAttr(doc, "video", "poster"), nil
}

// openGraphProbe scrapes og:image / twitter:image meta tags from the public
// share page.
type openGraphProbe struct {
	client *http.Client
}

func (p *openGraphProbe) Name() string { return "open-graph" }

func (p *openGraphProbe) Probe(ctx context.Context, src Source) (string, error) {
	if src.ShareURL == "" {
		return "", nil
	}
	doc, err := fetchHTML(ctx, p.client, src.ShareURL)
	if err != nil {
		return "", err
	}
	if u := findMetaImage(doc, "og:image"); u != "" {
		return u, nil
	}
	return findMetaImage(doc, "twitter:image"), nil
}

// screenshotProbe asks an external screenshot-generation service to render
// the share page.
type screenshotProbe struct {
	apiURL string
	client *http.Client
}

func (p *screenshotProbe) Name() string { return "screenshot" }

func (p *screenshotProbe) Probe(ctx context.Context, src Source) (string, error) {
	if src.ShareURL == "" {
		return "", nil
	}

	reqURL := fmt.Sprintf("%s?url=%s", p.apiURL, url.QueryEscape(src.ShareURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("screenshot service returned status %d", resp.StatusCode)
	}

	var out struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// placeholderProbe synthesizes a deterministic placeholder image keyed by
// the first letter of the meeting title. It never fails, terminating the
// cascade when everything upstream came up empty.
type placeholderProbe struct {
	template string
}

func (p *placeholderProbe) Name() string { return "placeholder" }

func (p *placeholderProbe) Probe(_ context.Context, src Source) (string, error) {
	if p.template == "" {
		return "", nil
	}

	letter := "M"
	for _, r := range strings.TrimSpace(src.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			letter = strings.ToUpper(string(r))
			break
		}
	}
	return fmt.Sprintf(p.template, letter), nil
}

// --- HTML helpers ---

func fetchHTML(ctx context.Context, client *http.Client, pageURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned status %d", resp.StatusCode)
	}
	return html.Parse(resp.Body)
}

// findAttr walks the document for the first <tag> carrying attr
func findAttr(n *html.Node, tag, attr string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, a := range n.Attr {
			if a.Key == attr && a.Val != "" {
				return a.Val
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := findAttr(c, tag, attr); v != "" {
			return v
		}
	}
	return ""
}

// findMetaImage finds <meta property|name=key content=...>
func findMetaImage(n *html.Node, key string) string {
	if n.Type == html.ElementNode && n.Data == "meta" {
		var matches bool
		var content string
		for _, a := range n.Attr {
			if (a.Key == "property" || a.Key == "name") && a.Val == key {
				matches = true
			}
			if a.Key == "content" {
				content = a.Val
			}
		}
		if matches && content != "" {
			return content
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := findMetaImage(c, key); v != "" {
			return v
		}
	}
	return ""
}
