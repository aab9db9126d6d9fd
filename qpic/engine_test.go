package qpic

import "testing"

func TestCLIEngine_DefaultCommand(t *testing.T) {
	if got := (CLIEngine{}).command(); got != "qpic" {
		t.Fatalf("expected qpic default, got %q", got)
	}
	if got := (CLIEngine{Command: " custom "}).command(); got != "custom" {
		t.Fatalf("expected trimmed override, got %q", got)
	}
}

func TestCLIEngine_AvailableMissingBinary(t *testing.T) {
	engine := CLIEngine{Command: "qpic-binary-that-does-not-exist"}
	err := engine.Available()
	if KindFromError(err) != KindMissingTool {
		t.Fatalf("expected missing_tool error, got %v", err)
	}
}
