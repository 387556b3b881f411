package main

import (
	"bytes"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Mavwarf/ctmicons/internal/config"
	"github.com/Mavwarf/ctmicons/internal/history"
	"github.com/Mavwarf/ctmicons/internal/mqtt"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args     []string
		wantOpts cliOptions
		wantRest []string
	}{
		{nil, cliOptions{}, nil},
		{[]string{"generate"}, cliOptions{}, []string{"generate"}},
		{[]string{"-c", "x.json", "preview", "128"}, cliOptions{configPath: "x.json"}, []string{"preview", "128"}},
		{[]string{"preview", "--verbose", "32"}, cliOptions{verbose: true}, []string{"preview", "32"}},
		{[]string{"--history", "--config", "y.json"}, cliOptions{configPath: "y.json", history: true}, nil},
	}
	for _, tt := range tests {
		opts, rest, err := parseArgs(tt.args)
		if err != nil {
			t.Errorf("parseArgs(%v): %v", tt.args, err)
			continue
		}
		if opts != tt.wantOpts {
			t.Errorf("parseArgs(%v) opts = %+v, want %+v", tt.args, opts, tt.wantOpts)
		}
		if !reflect.DeepEqual(rest, tt.wantRest) {
			t.Errorf("parseArgs(%v) rest = %v, want %v", tt.args, rest, tt.wantRest)
		}
	}
}

func TestParseArgsConfigMissingValue(t *testing.T) {
	if _, _, err := parseArgs([]string{"--config"}); err == nil {
		t.Fatal("expected error for --config without a path")
	}
}

func TestShouldRecordHistory(t *testing.T) {
	on := config.Config{Options: config.Options{History: true}}
	off := config.Config{}

	if !shouldRecordHistory(true, off) {
		t.Error("flag should enable history")
	}
	if !shouldRecordHistory(false, on) {
		t.Error("config should enable history")
	}
	if shouldRecordHistory(false, off) {
		t.Error("history should be off by default")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r, store := newRunner(config.Default(), cliOptions{}, &bytes.Buffer{})
	if store != nil || r.Store != nil {
		t.Error("history store opened without being enabled")
	}
	if r.Publisher != nil {
		t.Error("publisher set without a broker")
	}
}

func TestNewRunnerWithHistoryAndMQTT(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())
	cfg := config.Default()
	cfg.Options.MQTT.Broker = "tcp://127.0.0.1:19999"

	r, store := newRunner(cfg, cliOptions{history: true}, &bytes.Buffer{})
	if store == nil {
		t.Fatal("expected history store")
	}
	defer store.Close()
	if r.Store == nil {
		t.Error("runner store not set")
	}
	p, ok := r.Publisher.(mqtt.Publisher)
	if !ok || p.Opts.Broker != cfg.Options.MQTT.Broker {
		t.Errorf("publisher = %#v", r.Publisher)
	}
}

func TestNewRendererVerbose(t *testing.T) {
	if r := newRenderer(config.Default(), false); r.Debug != nil {
		t.Error("Debug should be nil when not verbose")
	}
	if r := newRenderer(config.Default(), true); r.Debug != os.Stderr {
		t.Error("Debug should be stderr when verbose")
	}
}

func TestWriteIconList(t *testing.T) {
	var buf bytes.Buffer
	writeIconList(&buf, config.DefaultIcons())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "assets/icon.png") || !strings.HasSuffix(lines[0], "1024x1024") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[3], "32x32") {
		t.Errorf("line 3 = %q", lines[3])
	}
}

func TestWriteHistory(t *testing.T) {
	ts := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	entries := []history.Entry{{
		Time:       ts,
		Path:       "assets/favicon.png",
		Size:       32,
		Format:     "png",
		FontSource: "builtin:7x13",
		FontSize:   8,
		Bytes:      321,
		SHA256:     "0123456789abcdef0123",
	}}

	var buf bytes.Buffer
	writeHistory(&buf, entries)
	out := buf.String()

	for _, want := range []string{
		"2026-10-17 09:30:00",
		"assets/favicon.png",
		"32x32",
		"font=builtin:7x13@8",
		"321 bytes",
		"sha256=0123456789ab\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
