package unlock

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "daily", want: Daily, ok: true},
		{in: "  FULL ", want: Full, ok: true},
		{in: "weekly", want: DefaultKey, ok: false},
		{in: "", want: DefaultKey, ok: false},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.in)
		if got.Value != tc.want || ok != tc.ok {
			t.Fatalf("Resolve(%q) = (%q, %t), want (%q, %t)", tc.in, got.Value, ok, tc.want, tc.ok)
		}
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	t.Parallel()

	opts := Options()
	if len(opts) != 2 || opts[0].Value != Daily || opts[1].Value != Full {
		t.Fatalf("unexpected options: %+v", opts)
	}
	opts[0].Label = "changed"
	if Options()[0].Label == "changed" {
		t.Fatal("expected Options to return a copy")
	}
}
