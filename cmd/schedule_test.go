package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScheduleAction_InvalidCronExpression(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shiplog.json")
	if err := os.WriteFile(cfgPath, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	err := App().Run([]string{"shiplog", "--config", cfgPath, "schedule", "--cron", "not a cron"})
	if err == nil {
		t.Fatal("expected an error for an invalid cron expression")
	}
	if !strings.Contains(err.Error(), "invalid cron expression") {
		t.Fatalf("err = %v", err)
	}
}

func TestScheduleAction_MissingAPIKeyFailsBeforeScheduling(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "shiplog.json")
	if err := os.WriteFile(cfgPath, []byte(`{}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ANTHROPIC_API_KEY", "")

	err := App().Run([]string{"shiplog", "--config", cfgPath, "schedule"})
	if err == nil {
		t.Fatal("expected a configuration error for the missing API key")
	}
	if !strings.Contains(err.Error(), "API key") {
		t.Fatalf("err = %v", err)
	}
}
