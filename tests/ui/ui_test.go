package tests

import (
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

func TestUILandingNoJSErrors(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	errs := newJSErrorCollector(ctx)
	if err := navigateAndWait(ctx, serverURL()+"/"); err != nil {
		t.Fatal(err)
	}

	if jsErrs := errs.Errors(); len(jsErrs) > 0 {
		t.Errorf("JS errors on landing page:\n  %s", strings.Join(jsErrs, "\n  "))
	}
}

func TestUIDashboardNoJSErrors(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	errs := newJSErrorCollector(ctx)
	if err := navigateAndWait(ctx, serverURL()+"/dashboard"); err != nil {
		t.Fatal(err)
	}

	if jsErrs := errs.Errors(); len(jsErrs) > 0 {
		t.Errorf("JS errors on dashboard:\n  %s", strings.Join(jsErrs, "\n  "))
	}
}

func TestUILandingRenders(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	var title, heading string
	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/"),
		chromedp.WaitVisible(".main-header", chromedp.ByQuery),
		chromedp.Title(&title),
		chromedp.Text(".main-header", &heading, chromedp.ByQuery),
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(title, "Global Economic Dashboard") {
		t.Errorf("title = %q, want contains Global Economic Dashboard", title)
	}
	if !strings.Contains(heading, "Global Economic Dashboard") {
		t.Errorf("landing heading = %q, want Global Economic Dashboard", heading)
	}
}

func TestUIDashboardRendersMetricsAndCharts(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	var riskLabel string
	var chartCount int

	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/dashboard"),
		chromedp.WaitVisible("#risk-label", chromedp.ByQuery),
		// Give the fetch + Chart.js render a moment
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.Text("#risk-label", &riskLabel, chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll('#charts canvas').length`, &chartCount),
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(riskLabel, "Risk") {
		t.Errorf("risk label = %q, want a risk classification", riskLabel)
	}
	if chartCount < 1 {
		t.Errorf("chart canvases = %d, want >= 1", chartCount)
	}
}

func TestUIDashboardFiltersPresent(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	var countryOptions, indicatorBoxes int
	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/dashboard"),
		chromedp.WaitVisible("#filters", chromedp.ByQuery),
		chromedp.Evaluate(`document.querySelectorAll('#country option').length`, &countryOptions),
		chromedp.Evaluate(`document.querySelectorAll('input[name="indicator"]').length`, &indicatorBoxes),
	)
	if err != nil {
		t.Fatal(err)
	}

	if countryOptions < 5 {
		t.Errorf("country options = %d, want >= 5", countryOptions)
	}
	if indicatorBoxes != 3 {
		t.Errorf("indicator checkboxes = %d, want 3", indicatorBoxes)
	}
}

func TestUICSSLoaded(t *testing.T) {
	skipUnlessEnabled(t)

	ctx, cancel := newBrowser(t)
	defer cancel()

	var fontFamily string
	err := chromedp.Run(ctx,
		chromedp.Navigate(serverURL()+"/dashboard"),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Evaluate(`getComputedStyle(document.body).fontFamily`, &fontFamily),
	)
	if err != nil {
		t.Fatal(err)
	}

	if strings.TrimSpace(fontFamily) == "" {
		t.Error("expected a computed font-family, stylesheet may not have loaded")
	}
}
