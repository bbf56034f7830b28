package team

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Key West FC", want: "keywestfc"},
		{in: "Key-West", want: "keywest"},
		{in: "  KEY WEST  ", want: "keywest"},
		{in: "Miami United", want: "miamiunited"},
		{in: "St. Pete '76", want: "stpete76"},
		{in: "---", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"Key West FC", "key-west fc", "Miami United", ""})
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct normalized names, got %d", len(got))
	}
	if _, ok := got["keywestfc"]; !ok {
		t.Fatal("missing keywestfc")
	}
	if _, ok := got["miamiunited"]; !ok {
		t.Fatal("missing miamiunited")
	}
}

func TestIsKeyWestName(t *testing.T) {
	for _, name := range []string{"Key West", "key west fc", "Key-West", "KeyWest FC"} {
		if !IsKeyWestName(name) {
			t.Fatalf("IsKeyWestName(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"Miami United", "Keystone FC", "KW United"} {
		if IsKeyWestName(name) {
			t.Fatalf("IsKeyWestName(%q) = true, want false", name)
		}
	}
}

func TestIsKeyWestVariant(t *testing.T) {
	for _, name := range []string{"Key West FC", "Keywest", "Key-West", "KWFC", "KW United", "Keystone FC"} {
		if !IsKeyWestVariant(name) {
			t.Fatalf("IsKeyWestVariant(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"Miami United", "Tampa Bay Rangers", ""} {
		if IsKeyWestVariant(name) {
			t.Fatalf("IsKeyWestVariant(%q) = true, want false", name)
		}
	}
}
