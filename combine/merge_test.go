package combine_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"cssmix/combine"
	"cssmix/common"
	"cssmix/css"
)

var (
	lightIn = []byte(".bg { background-color: #ffffff; }")
	darkIn  = []byte(".bg { background-color: #0d1117; }")
)

func TestMerge(t *testing.T) {
	out, err := combine.Merge(lightIn, darkIn, combine.Options{Prefix: "p"}, zap.NewNop())
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	want := ":root {\n" +
		"  --p-bg-background-color: #ffffff;\n" +
		"}\n" +
		"@media (prefers-color-scheme: dark) {\n" +
		"  :root {\n" +
		"    --p-bg-background-color: #0d1117;\n" +
		"  }\n" +
		"}\n" +
		".bg { background-color: var(--p-bg-background-color) }\n"
	if out != want {
		t.Errorf("Merge output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestMerge_MediaSchemeLight(t *testing.T) {
	out, err := combine.Merge(lightIn, darkIn, combine.Options{
		Prefix:      "p",
		MediaScheme: common.ColorSchemeLight,
	}, nil)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	// dark becomes the default, light moves into the media block
	want := ":root {\n" +
		"  --p-bg-background-color: #0d1117;\n" +
		"}\n" +
		"@media (prefers-color-scheme: light) {\n" +
		"  :root {\n" +
		"    --p-bg-background-color: #ffffff;\n" +
		"  }\n" +
		"}\n" +
		".bg { background-color: var(--p-bg-background-color) }\n"
	if out != want {
		t.Errorf("Merge output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestMerge_CustomPlaceholder(t *testing.T) {
	// a placeholder that also appears as a literal value in both themes
	// would be templated away, so a distinct literal must survive
	light := []byte(".a { color: red; margin: inherit; }")
	dark := []byte(".a { color: blue; margin: inherit; }")

	out, err := combine.Merge(light, dark, combine.Options{
		Prefix:      "p",
		Placeholder: "revert",
	}, nil)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	want := ":root {\n" +
		"  --p-a-color: red;\n" +
		"}\n" +
		"@media (prefers-color-scheme: dark) {\n" +
		"  :root {\n" +
		"    --p-a-color: blue;\n" +
		"  }\n" +
		"}\n" +
		".a { color: var(--p-a-color); margin: inherit }\n"
	if out != want {
		t.Errorf("Merge output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestMerge_NoPrefix(t *testing.T) {
	if _, err := combine.Merge(lightIn, darkIn, combine.Options{}, nil); !errors.Is(err, css.ErrNoPrefix) {
		t.Fatalf("Merge() error = %v, want ErrNoPrefix", err)
	}
}
