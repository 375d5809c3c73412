package dashboard

import (
	"testing"

	"github.com/bornholm/procuradoria/internal/core/view"
)

func TestParseDetails(t *testing.T) {
	type testCase struct {
		Raw                string
		ExpectedProcurador string
		ExpectedMetric     view.Metric
		ExpectError        bool
	}

	testCases := []testCase{
		{Raw: "Caterine/overdue", ExpectedProcurador: "Caterine", ExpectedMetric: view.MetricOverdue},
		{Raw: "Lucas Grangeiro/week", ExpectedProcurador: "Lucas Grangeiro", ExpectedMetric: view.MetricWeek},
		{Raw: "Caterine", ExpectError: true},
		{Raw: "/active", ExpectError: true},
		{Raw: "Caterine/late", ExpectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			procurador, metric, err := parseDetails(tc.Raw)

			if tc.ExpectError {
				if err == nil {
					t.Fatalf("expected an error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", err)
			}

			if e, g := tc.ExpectedProcurador, procurador; e != g {
				t.Errorf("procurador: expected %q, got %q", e, g)
			}

			if e, g := tc.ExpectedMetric, metric; e != g {
				t.Errorf("metric: expected %q, got %q", e, g)
			}
		})
	}
}
