// Package theme holds the terminal color schemes available to moplots.
//
// Schemes are a fixed table keyed by name; [Lookup] returns the [Palette]
// for a name and [Names] lists them for help text and shell completion.
package theme

import (
	"sort"
	"strings"

	moerrors "github.com/anselmoo/moplots/pkg/errors"
)

// Default is the scheme used when no configuration exists.
const Default = "dracula"

// Palette is a named set of hex colors.
type Palette struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Green       string
	Orange      string
	Pink        string
	Purple      string
	Red         string
	Yellow      string
}

var schemes = map[string]Palette{
	"dracula": {
		Background:  "#282a36",
		CurrentLine: "#44475a",
		Foreground:  "#f8f8f2",
		Comment:     "#6272a4",
		Cyan:        "#8be9fd",
		Green:       "#50fa7b",
		Orange:      "#ffb86c",
		Pink:        "#ff79c6",
		Purple:      "#bd93f9",
		Red:         "#ff5555",
		Yellow:      "#f1fa8c",
	},
	"monokai": {
		Background:  "#272822",
		CurrentLine: "#3e3d32",
		Foreground:  "#f8f8f2",
		Comment:     "#75715e",
		Cyan:        "#66d9ef",
		Green:       "#a6e22e",
		Orange:      "#fd971f",
		Pink:        "#f92672",
		Purple:      "#ae81ff",
		Red:         "#e74c3c",
		Yellow:      "#e6db74",
	},
	"material": {
		Background:  "#263238",
		CurrentLine: "#37474f",
		Foreground:  "#eceff1",
		Comment:     "#546e7a",
		Cyan:        "#80cbc4",
		Green:       "#c3e88d",
		Orange:      "#ffcb6b",
		Pink:        "#f48fb1",
		Purple:      "#b48ead",
		Red:         "#ff5370",
		Yellow:      "#ffcb6b",
	},
	"nord": {
		Background:  "#2e3440",
		CurrentLine: "#3b4252",
		Foreground:  "#d8dee9",
		Comment:     "#4c566a",
		Cyan:        "#88c0d0",
		Green:       "#a3be8c",
		Orange:      "#d08770",
		Pink:        "#b48ead",
		Purple:      "#81a1c1",
		Red:         "#bf616a",
		Yellow:      "#ebcb8b",
	},
	"one_dark": {
		Background:  "#21252B",
		CurrentLine: "#282C34",
		Foreground:  "#ABB2BF",
		Comment:     "#5C6370",
		Cyan:        "#56B6C2",
		Green:       "#98C379",
		Orange:      "#D19A66",
		Pink:        "#C678DD",
		Purple:      "#C678DD",
		Red:         "#E06C75",
		Yellow:      "#E5C07B",
	},
	"solarized_dark": {
		Background:  "#002b36",
		CurrentLine: "#073642",
		Foreground:  "#839496",
		Comment:     "#586e75",
		Cyan:        "#2aa198",
		Green:       "#859900",
		Orange:      "#cb4b16",
		Pink:        "#d33682",
		Purple:      "#6c71c4",
		Red:         "#dc322f",
		Yellow:      "#b58900",
	},
}

// Names returns the scheme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the palette for name. Names are matched case-insensitively.
func Lookup(name string) (Palette, error) {
	p, ok := schemes[Normalize(name)]
	if !ok {
		return Palette{}, moerrors.New(moerrors.ErrCodeInvalidTheme,
			"invalid scheme name %q (options are %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Normalize lower-cases a scheme name and maps dashes to underscores, so
// "One-Dark" selects "one_dark".
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// LookupOrDefault is like Lookup but returns the default scheme for
// unknown names.
func LookupOrDefault(name string) Palette {
	if p, err := Lookup(name); err == nil {
		return p
	}
	return schemes[Default]
}
