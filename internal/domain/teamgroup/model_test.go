package teamgroup

import (
	"reflect"
	"testing"
)

func TestSnapshot_Resolve(t *testing.T) {
	snapshot := Snapshot{
		"South Florida": {"Miami United", "Naples City", "Fort Myers Athletic"},
		"Rivals":        {"Miami United", "Tampa Bay Rangers"},
	}

	got := snapshot.Resolve([]string{"South Florida", "Rivals"})
	want := []string{"Fort Myers Athletic", "Miami United", "Naples City", "Tampa Bay Rangers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestSnapshot_Resolve_UnknownGroup(t *testing.T) {
	snapshot := Snapshot{"Rivals": {"Miami United"}}

	got := snapshot.Resolve([]string{"Rivals", "No Such Group"})
	if len(got) != 1 || got[0] != "Miami United" {
		t.Fatalf("unknown groups must be skipped, got %v", got)
	}

	if got := snapshot.Resolve(nil); len(got) != 0 {
		t.Fatalf("resolving nothing must yield an empty list, got %v", got)
	}
}
