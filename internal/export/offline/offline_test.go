package offline

import (
	"strings"
	"testing"

	"planbook/internal/docs"
	"planbook/internal/model"
)

func testContext() docs.Context {
	return docs.Context{
		Playbook: &model.GeneratedPlaybook{
			Offer1: model.Offer{Name: "Core Offer", Price: "$1,000"},
			Offer2: model.Offer{Name: "Second Offer", Price: "$500"},
		},
		BusinessData: &model.BusinessData{BusinessType: "studio", Location: "Berlin"},
	}
}

func TestBuild_EmbedsScriptInsideBody(t *testing.T) {
	out, err := Build(testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(out)
	scriptAt := strings.Index(html, "<script>")
	bodyEnd := strings.LastIndex(html, "</body>")
	if scriptAt < 0 {
		t.Fatal("expected inline script in output")
	}
	if bodyEnd >= 0 && scriptAt > bodyEnd {
		t.Error("script must be injected before </body>")
	}
}

func TestBuild_IsSelfContained(t *testing.T) {
	out, err := Build(testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(out)
	for _, external := range []string{"<link ", "src=\"http", "href=\"http"} {
		if strings.Contains(html, external) {
			t.Errorf("offline export references external resource: %s", external)
		}
	}
	if !strings.Contains(html, "Core Offer") {
		t.Error("expected playbook content in offline export")
	}
}

func TestBuild_RequiresPlaybook(t *testing.T) {
	ctx := testContext()
	ctx.Playbook = nil
	if _, err := Build(ctx); err == nil {
		t.Error("expected error without a playbook")
	}
}
