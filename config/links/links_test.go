package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gregn610/siteconf/config/validate"
)

func TestUnmarshalMappingForm(t *testing.T) {
	doc := `
- label: Pelican
  url: http://getpelican.com/
- label: Python.org
  url: http://python.org/
`
	var ll List
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ll))
	require.Len(t, ll, 2)
	assert.Equal(t, Link{Label: "Pelican", URL: "http://getpelican.com/"}, ll[0])
	assert.Equal(t, Link{Label: "Python.org", URL: "http://python.org/"}, ll[1])
}

func TestUnmarshalPairForm(t *testing.T) {
	doc := `
- [github, https://github.com/gregn610]
- [linkedin, https://www.linkedin.com/in/greg-nicol-087a438/]
`
	var ll List
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ll))
	require.Len(t, ll, 2)
	assert.Equal(t, Link{Label: "github", URL: "https://github.com/gregn610"}, ll[0])
	assert.Equal(t, Link{Label: "linkedin", URL: "https://www.linkedin.com/in/greg-nicol-087a438/"}, ll[1])
}

func TestUnmarshalMixedFormsKeepOrder(t *testing.T) {
	doc := `
- [first, https://one.example.org/]
- label: second
  url: https://two.example.org/
- [third, https://three.example.org/]
`
	var ll List
	require.NoError(t, yaml.Unmarshal([]byte(doc), &ll))
	require.Len(t, ll, 3)
	assert.Equal(t, "first", ll[0].Label)
	assert.Equal(t, "second", ll[1].Label)
	assert.Equal(t, "third", ll[2].Label)
}

func TestUnmarshalRejectsBadShapes(t *testing.T) {
	var ll List
	err := yaml.Unmarshal([]byte("- [one, two, three]\n"), &ll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 2")

	err = yaml.Unmarshal([]byte("- just-a-string\n"), &ll)
	require.Error(t, err)
}

func TestUnmarshalRejectsUnknownKey(t *testing.T) {
	var ll List
	err := yaml.Unmarshal([]byte("- label: Pelican\n  link: http://getpelican.com/\n"), &ll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown link key "link"`)
}

func TestMarshalEmitsMappingForm(t *testing.T) {
	ll := List{{Label: "github", URL: "https://github.com/gregn610"}}
	out, err := yaml.Marshal(ll)
	require.NoError(t, err)
	assert.Contains(t, string(out), "label: github")
	assert.Contains(t, string(out), "url: https://github.com/gregn610")

	var reloaded List
	require.NoError(t, yaml.Unmarshal(out, &reloaded))
	assert.Equal(t, ll, reloaded)
}

func TestValidate(t *testing.T) {
	var v validate.ValidationErrors
	List{
		{Label: "Pelican", URL: "http://getpelican.com/"},
	}.Validate(&v, "links")
	assert.False(t, v.HasErrors())
}

func TestValidateEmptyListIsFine(t *testing.T) {
	var v validate.ValidationErrors
	List{}.Validate(&v, "links")
	assert.False(t, v.HasErrors())
}

func TestValidateRejectsEmptyLabel(t *testing.T) {
	var v validate.ValidationErrors
	List{{Label: "", URL: "http://getpelican.com/"}}.Validate(&v, "links")
	require.True(t, v.HasErrors())
	assert.Contains(t, v.Error(), "links[0]/label")
}

func TestValidateRejectsBadURL(t *testing.T) {
	var v validate.ValidationErrors
	List{{Label: "ftp", URL: "ftp://example.org/"}}.Validate(&v, "links")
	require.True(t, v.HasErrors())
	assert.Contains(t, v.Error(), "links[0]/url")
}

func TestValidateToleratesNonASCIIURL(t *testing.T) {
	// the CloudFlare entry shipped with a stray non-ASCII rune; it warns
	// but does not fail
	var v validate.ValidationErrors
	List{{Label: "CloudFlare", URL: "https://www.cloudflare.com/ยง"}}.Validate(&v, "links")
	assert.False(t, v.HasErrors())
}
