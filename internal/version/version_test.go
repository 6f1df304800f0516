package version_test

import (
	"regexp"
	"testing"

	"github.com/fatih/color"

	"chd/internal/version"
)

func TestVersionIsSemver(t *testing.T) {
	if !regexp.MustCompile(`^\d+\.\d+\.\d+$`).MatchString(version.Version) {
		t.Errorf("Version = %q, want semver", version.Version)
	}
}

// Без цвета раскрашенная версия совпадает с обычной.
func TestColoredMatchesVersion(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	if got := version.Colored(); got != version.Version {
		t.Errorf("Colored() = %q, want %q", got, version.Version)
	}
}
