package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplateMeta_ExtractsApidocsMetaTags(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head>
<meta property="apidocs:template.name" content="Type page">
<meta property="apidocs:template.kind" content="type">
<meta property="apidocs:template.description" content="Renders one type">
<meta name="viewport" content="width=device-width">
</head><body></body></html>`

	meta, err := ParseTemplateMeta(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, "Type page", meta.Name)
	require.Equal(t, "type", meta.Kind)
	require.Equal(t, "Renders one type", meta.Description)
}

func TestParseTemplateMeta_MissingTagsYieldEmptyMeta(t *testing.T) {
	meta, err := ParseTemplateMeta(strings.NewReader("<html><body>plain</body></html>"))
	require.NoError(t, err)
	require.Equal(t, TemplateMeta{}, meta)
}
