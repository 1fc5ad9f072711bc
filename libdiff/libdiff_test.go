package libdiff

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	jsonpatch "github.com/evanphx/json-patch"
)

func TestLines(t *testing.T) {
	from := "1 Drinks\n   1.1 Coffee\n2 Food\n"
	to := "1 Drinks\n   1.1 Tea\n2 Food\n3 Desserts\n"
	want := []Line{
		{Op: Equal, Text: "1 Drinks"},
		{Op: Delete, Text: "   1.1 Coffee"},
		{Op: Insert, Text: "   1.1 Tea"},
		{Op: Equal, Text: "2 Food"},
		{Op: Insert, Text: "3 Desserts"},
	}
	got := Lines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("Changed() = false")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("identical inputs reported as changed")
	}

	buf := bytes.NewBuffer(nil)
	if err := Write(buf, got, nil); err != nil {
		t.Fatal(err)
	}
	wantText := "  1 Drinks\n-    1.1 Coffee\n+    1.1 Tea\n  2 Food\n+ 3 Desserts\n"
	if diff := cmp.Diff(wantText, buf.String()); diff != "" {
		t.Errorf("Write (-want +got):\n%s", diff)
	}
}

func TestMergePatch(t *testing.T) {
	from := map[string]string{"1": "Drinks", "1.1": "Coffee", "2": "Food"}
	to := map[string]string{"1": "Drinks", "1.1": "Tea", "3": "Desserts"}
	patch, err := MergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]*string
	if err := json.Unmarshal(patch, &got); err != nil {
		t.Fatal(err)
	}
	if _, ok := got["1"]; ok {
		t.Errorf("unchanged entry in patch: %s", patch)
	}
	if v, ok := got["2"]; !ok || v != nil {
		t.Errorf("removed entry not null: %s", patch)
	}
	if v := got["1.1"]; v == nil || *v != "Tea" {
		t.Errorf("changed entry wrong: %s", patch)
	}

	a, _ := json.Marshal(from)
	applied, err := jsonpatch.MergePatch(a, patch)
	if err != nil {
		t.Fatal(err)
	}
	var res map[string]string
	if err := json.Unmarshal(applied, &res); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(to, res); diff != "" {
		t.Errorf("applied patch (-want +got):\n%s", diff)
	}
}
