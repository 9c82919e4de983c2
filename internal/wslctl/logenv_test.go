package wslctl

import "testing"

func TestEnvStr(t *testing.T) {
	key := "WSLCTL_ENV_STR"
	t.Setenv(key, "")
	if got := envStr(key, "def"); got != "def" {
		t.Fatalf("envStr default: got %q", got)
	}
	t.Setenv(key, "val")
	if got := envStr(key, "def"); got != "val" {
		t.Fatalf("envStr set: got %q", got)
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { SetLogLevel("info") })
	cases := []struct {
		in   string
		want logLevel
	}{
		{"debug", levelDebug},
		{"info", levelInfo},
		{"warn", levelWarn},
		{"warning", levelWarn},
		{"error", levelWarn},
		{"nonsense", levelInfo},
	}
	for _, c := range cases {
		SetLogLevel(c.in)
		if currentLevel != c.want {
			t.Fatalf("SetLogLevel(%q) -> %v, want %v", c.in, currentLevel, c.want)
		}
	}
}
