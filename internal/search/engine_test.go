package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/altin/fault-finder/internal/model"
)

func strPtr(s string) *string { return &s }

func sampleDataset() []model.FaultRecord {
	return []model.FaultRecord{
		{Brand: "Vaillant", FaultCode: "F22", Model: "ecoTEC", FaultCause: strPtr("Low water pressure")},
		{Brand: "Worcester", FaultCode: "E9", Model: "Greenstar"},
	}
}

func richDataset() []model.FaultRecord {
	return []model.FaultRecord{
		{Brand: "Ideal", FaultCode: "F1", Model: "Logic Combi, Vogue"},
		{Brand: "Baxi", FaultCode: "E110", Model: "Duo-tec, Platinum", FaultCheck: strPtr("Check flow temperature")},
		{Brand: "Potterton", FaultCode: "E110", Model: "Assure"},
		{Brand: "Vaillant", FaultCode: "F28", Model: "ecoTEC plus"},
		{Brand: "Glow-worm", FaultCode: "F.28", Model: "Ultimate"},
		{Brand: "Ideal", FaultCode: "L2", Model: "Vogue Max"},
	}
}

func TestSearchExamples(t *testing.T) {
	d := sampleDataset()

	tests := []struct {
		name  string
		query string
		want  []model.FaultRecord
	}{
		{name: "fault code", query: "f22", want: d[:1]},
		{name: "brand", query: "worcester", want: d[1:]},
		{name: "no match", query: "zzz", want: []model.FaultRecord{}},
		{name: "shared letter keeps order", query: "e", want: d},
		{name: "surrounding whitespace", query: "  GREENSTAR \t", want: d[1:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query, d)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchBlankQuery(t *testing.T) {
	for _, q := range []string{"", " ", "\t\n", "   "} {
		got := Search(q, richDataset())
		if got == nil {
			t.Errorf("Search(%q) returned nil, want empty slice", q)
		}
		if len(got) != 0 {
			t.Errorf("Search(%q) returned %d records, want 0", q, len(got))
		}
	}
}

func TestSearchEmptyDataset(t *testing.T) {
	got := Search("e110", nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Search on nil dataset = %#v, want empty slice", got)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	d := richDataset()
	upper := Search("E110", d)
	lower := Search("e110", d)
	if diff := cmp.Diff(upper, lower); diff != "" {
		t.Errorf("case changed results (-E110 +e110):\n%s", diff)
	}
	if len(upper) != 2 {
		t.Errorf("Search(E110) returned %d records, want 2", len(upper))
	}
}

func TestSearchMatchesModelList(t *testing.T) {
	got := Search("vogue", richDataset())
	var keys []string
	for _, r := range got {
		keys = append(keys, r.Key())
	}
	want := []string{"Ideal/F1", "Ideal/L2"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchIgnoresOptionalFields(t *testing.T) {
	got := Search("flow temperature", richDataset())
	if len(got) != 0 {
		t.Errorf("optional fields should not be searched, got %d records", len(got))
	}
}

// Every result must contain the query and every matching record must be
// returned exactly once, in dataset order.
func TestSearchSoundAndComplete(t *testing.T) {
	d := richDataset()
	queries := []string{"e", "F", "28", "ideal", "ecotec", "-", ".", "o", "x", "Baxi"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			norm := Normalize(q)
			var want []model.FaultRecord
			for _, r := range d {
				if strings.Contains(strings.ToLower(r.Brand), norm) ||
					strings.Contains(strings.ToLower(r.FaultCode), norm) ||
					strings.Contains(strings.ToLower(r.Model), norm) {
					want = append(want, r)
				}
			}
			if want == nil {
				want = []model.FaultRecord{}
			}
			if diff := cmp.Diff(want, Search(q, d)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", q, diff)
			}
		})
	}
}

func TestSearchDoesNotAliasDataset(t *testing.T) {
	d := richDataset()
	before := richDataset()

	got := Search("ideal", d)
	got[0].Brand = "changed"

	if diff := cmp.Diff(before, d); diff != "" {
		t.Errorf("dataset modified through result (-before +after):\n%s", diff)
	}

	all := Search("i", d)
	all[0].Model = "changed"
	if d[0].Model == "changed" {
		t.Error("result shares backing storage with dataset")
	}
}

func TestSearchIdempotent(t *testing.T) {
	d := richDataset()
	first := Search("f2", d)
	second := Search("f2", d)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated search differs (-first +second):\n%s", diff)
	}
}

func TestSearchConcurrentCallers(t *testing.T) {
	d := richDataset()
	engine := New()
	want := Search("e110", d)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			got := engine.Search("E110", d)
			if diff := cmp.Diff(want, got); diff != "" {
				return fmt.Errorf("concurrent search mismatch:\n%s", diff)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestSummary(t *testing.T) {
	d := richDataset()
	tests := []struct {
		results []model.FaultRecord
		want    string
	}{
		{results: nil, want: "No results"},
		{results: d[:1], want: "Exact match found"},
		{results: d[:3], want: "3 results found"},
	}

	for _, tt := range tests {
		if got := Summary(tt.results); got != tt.want {
			t.Errorf("Summary(%d records) = %q, want %q", len(tt.results), got, tt.want)
		}
	}
}
