package resumes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTMLBullets(t *testing.T) {
	got := RenderHTML("- built services\n- shipped features")
	assert.Equal(t, "<ul>\n<li>built services</li>\n<li>shipped features</li>\n</ul>", got)
}

func TestRenderHTMLStarBullets(t *testing.T) {
	got := RenderHTML("* one\n* two")
	assert.Equal(t, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>", got)
}

func TestRenderHTMLInlineFormatting(t *testing.T) {
	got := RenderHTML("Led the **platform** team with *measurable* impact")
	assert.Equal(t, "<p>Led the <strong>platform</strong> team with <em>measurable</em> impact</p>", got)
}

func TestRenderHTMLBoldInsideBullet(t *testing.T) {
	got := RenderHTML("- improved **latency** by 40%")
	assert.Equal(t, "<ul>\n<li>improved <strong>latency</strong> by 40%</li>\n</ul>", got)
}

func TestRenderHTMLEscapesInput(t *testing.T) {
	got := RenderHTML("<script>alert(1)</script>")
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>", got)
}

func TestRenderHTMLMixedContent(t *testing.T) {
	input := "Summary line\n\n- first\n- second\nClosing line"
	want := "<p>Summary line</p>\n<ul>\n<li>first</li>\n<li>second</li>\n</ul>\n<p>Closing line</p>"
	assert.Equal(t, want, RenderHTML(input))
}

func TestRenderHTMLEmpty(t *testing.T) {
	assert.Equal(t, "", RenderHTML(""))
	assert.Equal(t, "", RenderHTML("\n  \n"))
}
