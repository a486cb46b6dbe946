package calc_test

import (
	"strings"
	"testing"

	"github.com/edgard/calcbot/internal/calc"
)

func TestBuildLaunchLink(t *testing.T) {
	t.Parallel()

	const (
		baseURL = "https://calculator.example.com"
		caption = "Call calculator"
	)

	testCases := []struct {
		name          string
		resumeValue   string
		expectedURL   string
		expectedLabel string
	}{
		{
			name:          "no resume value leaves base URL untouched",
			resumeValue:   "",
			expectedURL:   baseURL,
			expectedLabel: caption,
		},
		{
			name:          "integer resume value",
			resumeValue:   "4",
			expectedURL:   baseURL + "?value=4",
			expectedLabel: caption + " with last value=4",
		},
		{
			name:          "decimal resume value",
			resumeValue:   "2.5",
			expectedURL:   baseURL + "?value=2.5",
			expectedLabel: caption + " with last value=2.5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			link := calc.BuildLaunchLink(baseURL, caption, tc.resumeValue)
			if link.URL != tc.expectedURL {
				t.Errorf("URL = %q, want %q", link.URL, tc.expectedURL)
			}
			if link.Label != tc.expectedLabel {
				t.Errorf("Label = %q, want %q", link.Label, tc.expectedLabel)
			}
			if tc.resumeValue != "" && !strings.Contains(link.Label, tc.resumeValue) {
				t.Errorf("Label %q does not surface resume value %q", link.Label, tc.resumeValue)
			}
		})
	}
}

// The round trip the bot exists for: history payload in, seeded launch link out.
func TestHistoryRoundTrip(t *testing.T) {
	t.Parallel()

	payload := "1+1=2\n2+2=4"

	display := calc.ReverseLines(payload)
	if display != "2+2=4\n1+1=2" {
		t.Fatalf("ReverseLines(%q) = %q, want newest-first order", payload, display)
	}

	value, found := calc.ExtractLastNumber(payload)
	if !found || value != "4" {
		t.Fatalf("ExtractLastNumber(%q) = %q, %v; want \"4\", true", payload, value, found)
	}

	link := calc.BuildLaunchLink("https://calculator.example.com", "Call calculator", value)
	if !strings.HasSuffix(link.URL, "?value=4") {
		t.Errorf("link URL %q does not end in ?value=4", link.URL)
	}
}
