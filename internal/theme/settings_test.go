package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func settingsTheme() *Theme {
	th := newTheme("test")
	th.Parameters["footertext"] = &Parameter{Name: "footerText", Type: TypeString, Default: "old"}
	th.Parameters["maxdepth"] = &Parameter{Name: "maxDepth", Type: TypeNumber, Default: float64(3)}
	th.Parameters["notice"] = &Parameter{Name: "notice", Type: TypeMarkdown}
	return th
}

func TestApplySettings_OverridesValidValues(t *testing.T) {
	th := settingsTheme()
	dropped := th.ApplySettings(map[string]any{
		"FooterText": "new footer",
		"maxDepth":   5,
	}, nil)

	require.Zero(t, dropped)
	p, _ := th.Parameter("footerText")
	require.Equal(t, "new footer", p.Default)
	d, _ := th.Parameter("maxDepth")
	require.Equal(t, float64(5), d.Default)
}

func TestApplySettings_InvalidValueIsDroppedNotFatal(t *testing.T) {
	th := settingsTheme()
	dropped := th.ApplySettings(map[string]any{
		"footerText": 42,          // wrong shape, dropped
		"maxDepth":   9,           // valid, applied
		"unknown":    "who knows", // no such parameter, dropped
	}, nil)

	require.Equal(t, 2, dropped)
	p, _ := th.Parameter("footerText")
	require.Equal(t, "old", p.Default, "invalid setting must not clobber the default")
	d, _ := th.Parameter("maxDepth")
	require.Equal(t, float64(9), d.Default)
}

func TestApplySettings_MarkdownSettingIsTransformed(t *testing.T) {
	th := settingsTheme()
	transform := func(s string) (string, error) { return "<p>" + s + "</p>", nil }

	dropped := th.ApplySettings(map[string]any{"notice": "hi"}, transform)
	require.Zero(t, dropped)

	p, _ := th.Parameter("notice")
	require.Equal(t, "<p>hi</p>", p.Default)
}
