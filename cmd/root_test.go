package cmd

import (
	"strings"
	"testing"
)

func TestRootFlagsRegistered(t *testing.T) {
	for _, name := range []string{"base-url", "notifications"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	for _, name := range []string{"debug", "quiet"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}

func TestVersionTemplate(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2026-08-23")
	got := versionTemplate()
	for _, want := range []string{"1.2.3", "abc1234", "2026-08-23"} {
		if !strings.Contains(got, want) {
			t.Errorf("version template missing %q: %s", want, got)
		}
	}

	SetVersionInfo("dev", "none", "unknown")
	got = versionTemplate()
	if strings.Contains(got, "none") {
		t.Errorf("expected commit line omitted for dev builds: %s", got)
	}
}
