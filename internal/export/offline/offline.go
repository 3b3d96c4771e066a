// Package offline produces a single self-contained HTML file embedding a
// static render of the full playbook plus an inline interactivity script.
package offline

import (
	"fmt"
	"strings"

	"planbook/internal/docs"
)

// interactivityScript makes the static export navigable without any network
// access: section headings collapse their content on click.
const interactivityScript = `<script>
(function () {
  var headings = document.querySelectorAll('main h2');
  for (var i = 0; i < headings.length; i++) {
    headings[i].style.cursor = 'pointer';
    headings[i].addEventListener('click', function () {
      var el = this.nextElementSibling;
      while (el && el.tagName !== 'H2') {
        el.style.display = el.style.display === 'none' ? '' : 'none';
        el = el.nextElementSibling;
      }
    });
  }
})();
</script>`

// Build renders the full playbook document and injects the inline script,
// yielding one file that works from disk with no external references.
func Build(ctx docs.Context) ([]byte, error) {
	html, err := docs.Render(docs.DocFull, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render playbook: %w", err)
	}
	if docs.IsEmpty(html) {
		return nil, fmt.Errorf("playbook rendered no content")
	}

	idx := strings.LastIndex(html, "</body>")
	if idx < 0 {
		return []byte(html + interactivityScript), nil
	}
	return []byte(html[:idx] + interactivityScript + html[idx:]), nil
}
