package nodelink

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/outloud/pkg/outline"
)

// sample builds "buy milk" with a nested "whole" and an empty second value.
func sample(t *testing.T) (*outline.Document, []outline.ValueID) {
	t.Helper()
	d, err := outline.New()
	if err != nil {
		t.Fatal(err)
	}
	var c outline.Cursor
	d.FocusRoot(&c)
	buy := c.Value
	for _, w := range []string{"buy", "milk"} {
		if err := d.InsertWord(&c, w); err != nil {
			t.Fatal(err)
		}
	}

	page, err := d.CreatePage(buy, true)
	if err != nil {
		t.Fatal(err)
	}
	whole := d.First(page)
	d.Focus(&c, whole)
	if err := d.InsertWord(&c, "whole"); err != nil {
		t.Fatal(err)
	}

	empty, err := d.InsertValue(buy)
	if err != nil {
		t.Fatal(err)
	}
	return d, []outline.ValueID{buy, whole, empty}
}

func TestToDOT(t *testing.T) {
	d, ids := sample(t)
	buy, whole, empty := ids[0], ids[1], ids[2]

	opts := DefaultOptions()
	opts.Name = "groceries"
	opts.Highlight = whole
	dot := ToDOT(d, opts)

	wants := []string{
		"digraph G {",
		"rankdir=TB;",
		`"root" [label="groceries"`,
		fmt.Sprintf(`%q [label="buy milk"];`, nodeID(buy)),
		fmt.Sprintf(`%q [label="whole", penwidth=3];`, nodeID(whole)),
		fmt.Sprintf(`%q [label="(empty)", style="rounded,filled,dashed"`, nodeID(empty)),
		fmt.Sprintf(`"root" -> %q;`, nodeID(buy)),
		fmt.Sprintf(`%q -> %q;`, nodeID(buy), nodeID(whole)),
		fmt.Sprintf(`"root" -> %q;`, nodeID(empty)),
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}

	// page order is kept
	if strings.Index(dot, `-> "`+nodeID(buy)) > strings.Index(dot, `-> "`+nodeID(empty)) {
		t.Errorf("root edges out of order:\n%s", dot)
	}
}

func TestToDOTOptions(t *testing.T) {
	d, _ := sample(t)

	dot := ToDOT(d, Options{LeftToRight: true, Highlight: outline.NoValue})
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("LeftToRight not applied:\n%s", dot)
	}
	if !strings.Contains(dot, `label="outline"`) {
		t.Errorf("default name missing:\n%s", dot)
	}
	if strings.Contains(dot, "penwidth") {
		t.Errorf("unexpected highlight:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "rewrites svg tag",
			in:   `<svg width="10pt" viewBox="0.00 0.00 120.25 80.00"><g/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 120.25 80.00" width="120" height="80"><g/></svg>`,
		},
		{
			name: "no viewBox",
			in:   `<svg><g/></svg>`,
			want: `<svg><g/></svg>`,
		},
		{
			name: "zero size",
			in:   `<svg viewBox="0 0 0 10"></svg>`,
			want: `<svg viewBox="0 0 0 10"></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.in))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}
