package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
)

func TestNames(t *testing.T) {
	want := []string{"dracula", "material", "monokai", "nord", "one_dark", "solarized_dark"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantGreen string
		wantErr   bool
	}{
		{"dracula", "dracula", "#50fa7b", false},
		{"upper case", "NORD", "#a3be8c", false},
		{"dash alias", "one-dark", "#98C379", false},
		{"solarized", "solarized_dark", "#859900", false},
		{"unknown", "gruvbox", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !moerrors.Is(err, moerrors.ErrCodeInvalidTheme) {
					t.Errorf("error code = %v, want %v", moerrors.GetCode(err), moerrors.ErrCodeInvalidTheme)
				}
				return
			}
			if p.Green != tt.wantGreen {
				t.Errorf("Lookup(%q).Green = %q, want %q", tt.input, p.Green, tt.wantGreen)
			}
		})
	}
}

func TestLookupOrDefault(t *testing.T) {
	if got := LookupOrDefault("nope"); got != schemes[Default] {
		t.Errorf("LookupOrDefault(unknown) = %+v, want default palette", got)
	}
	if got := LookupOrDefault("Nord"); got != schemes["nord"] {
		t.Errorf("LookupOrDefault(Nord) = %+v, want nord palette", got)
	}
}

func TestPalettesComplete(t *testing.T) {
	for _, name := range Names() {
		p := schemes[name]
		for field, v := range map[string]string{
			"Background": p.Background, "CurrentLine": p.CurrentLine, "Foreground": p.Foreground,
			"Comment": p.Comment, "Cyan": p.Cyan, "Green": p.Green, "Orange": p.Orange,
			"Pink": p.Pink, "Purple": p.Purple, "Red": p.Red, "Yellow": p.Yellow,
		} {
			if len(v) != 7 || v[0] != '#' {
				t.Errorf("%s.%s = %q, want #rrggbb", name, field, v)
			}
		}
	}
}
