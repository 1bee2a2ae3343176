package thumbnail

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Source carries the recording attributes the probes work from
type Source struct {
	RecordingID string
	Title       string
	ShareURL    string
	EmbedURL    string
}

// Prober is one link of the fallback chain. It returns the resolved image
// URL, or "" when this strategy has nothing for the recording. An error is
// treated the same as "": the cascade just advances to the next link.
type Prober interface {
	Name() string
	Probe(ctx context.Context, src Source) (string, error)
}

// Options configures the standard cascade
type Options struct {
	CDNBaseURL          string
	ScreenshotAPIURL    string // empty disables the screenshot step
	PlaceholderTemplate string
	StepTimeout         time.Duration
	HTTPClient          *http.Client
}

// Cascade resolves a thumbnail URL through an ordered list of probes.
// Each step is independently time-bounded and failure-tolerant; total
// failure yields "", which the sync pipeline never treats as an error.
type Cascade struct {
	probes      []Prober
	stepTimeout time.Duration
}

// NewCascade builds the standard probe order: provider CDN conventions,
// embed-player poster attribute, share-page Open Graph image, optional
// screenshot service, then a synthesized placeholder.
func NewCascade(opts Options) *Cascade {
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = 5 * time.Second
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	probes := []Prober{
		&cdnProbe{baseURL: opts.CDNBaseURL, client: opts.HTTPClient},
		&posterProbe{client: opts.HTTPClient},
		&openGraphProbe{client: opts.HTTPClient},
	}
	if opts.ScreenshotAPIURL != "" {
		probes = append(probes, &screenshotProbe{apiURL: opts.ScreenshotAPIURL, client: opts.HTTPClient})
	}
	probes = append(probes, &placeholderProbe{template: opts.PlaceholderTemplate})

	return &Cascade{probes: probes, stepTimeout: opts.StepTimeout}
}

// NewCascadeWithProbes builds a cascade from an explicit probe list (tests)
func NewCascadeWithProbes(stepTimeout time.Duration, probes ...Prober) *Cascade {
	if stepTimeout <= 0 {
		stepTimeout = 5 * time.Second
	}
	return &Cascade{probes: probes, stepTimeout: stepTimeout}
}

// Resolve runs the chain and returns the first non-empty URL
func (c *Cascade) Resolve(ctx context.Context, src Source) string {
	for _, p := range c.probes {
		stepCtx, cancel := context.WithTimeout(ctx, c.stepTimeout)
		u, err := p.Probe(stepCtx, src)
		cancel()

		if err != nil {
			log.Printf("[Thumbnail] Probe %s failed for %s: %v", p.Name(), src.RecordingID, err)
			continue
		}
		if u != "" {
			return u
		}
	}
	return ""
}
