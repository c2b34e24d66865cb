package cmd

import "testing"

func TestCommandRegistration(t *testing.T) {
	expected := []string{
		"start", "stop", "status",
		"today", "yesterday", "day", "week",
		"projects", "project-add", "project-update", "project-delete",
		"watch",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		if !registered[name] {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc1234", "2024-03-15")

	if rootCmd.Version != "1.2.3" {
		t.Errorf("Expected version 1.2.3, got %s", rootCmd.Version)
	}
}
