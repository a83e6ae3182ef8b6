package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tpl := Template()

	for _, want := range []string{"{{.Name}}", Version, Commit, Date} {
		if !strings.Contains(tpl, want) {
			t.Errorf("Template() missing %q: %q", want, tpl)
		}
	}
}
