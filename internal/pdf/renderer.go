package pdf

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/playwright-community/playwright-go"
)

var ErrRendererClosed = errors.New("pdf renderer is closed")

// Renderer turns an HTML document into PDF bytes
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// PlaywrightRenderer prints HTML to A4 PDF with a shared headless Chromium
type PlaywrightRenderer struct {
	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
}

var _ Renderer = (*PlaywrightRenderer)(nil)

// NewPlaywrightRenderer starts the Playwright driver and launches Chromium.
// Browsers must already be installed on the host.
func NewPlaywrightRenderer() (*PlaywrightRenderer, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	logx.Info("Playwright PDF renderer ready")
	return &PlaywrightRenderer{pw: pw, browser: browser}, nil
}

func (r *PlaywrightRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	browser := r.browser
	r.mu.Unlock()
	if browser == nil {
		return nil, ErrRendererClosed
	}

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(html, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}

	data, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	return data, nil
}

// Close shuts down the browser and the driver
func (r *PlaywrightRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	var errs []error
	if err := r.browser.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := r.pw.Stop(); err != nil {
		errs = append(errs, err)
	}
	r.browser = nil
	return errors.Join(errs...)
}
