package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_ConvertsCommonMarkToHTML(t *testing.T) {
	out, err := Render("some **bold** text")
	require.NoError(t, err)
	require.Contains(t, out, "<strong>bold</strong>")
}

func TestFirstHeading(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"# Title\n\nbody", "Title"},
		{"para\n\n## Second Level\n", "Second Level"},
		{"no headings", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := FirstHeading([]byte(c.in)); got != c.want {
			t.Errorf("FirstHeading(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
