package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-cpufeat/x86"
)

func runCapture(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunList(t *testing.T) {
	code, out, _ := runCapture(t, "--list")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	lines := strings.Fields(out)
	if len(lines) != len(x86.Names()) {
		t.Fatalf("expected %d names, got %d", len(x86.Names()), len(lines))
	}
}

func TestRunUnknownFeature(t *testing.T) {
	code, _, errOut := runCapture(t, "made_up_feature_xyz")
	if code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
	if !strings.Contains(errOut, "made_up_feature_xyz") {
		t.Fatalf("expected the name in stderr, got %q", errOut)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	if code, _, _ := runCapture(t, "--format", "xml"); code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCapture(t, "--no-such-flag"); code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runCapture(t, "--format", "json")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	var rep report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(rep.Features) != len(x86.Features()) {
		t.Fatalf("expected %d features, got %d", len(x86.Features()), len(rep.Features))
	}
	if rep.Classification != x86.Classification().String() {
		t.Fatalf("expected classification %q, got %q", x86.Classification(), rep.Classification)
	}
	host := x86.Host()
	for i, row := range rep.Features {
		if row.Detected != host.Has(x86.Features()[i]) {
			t.Fatalf("%s: output says %v", row.Name, row.Detected)
		}
	}
}

func TestRunYAML(t *testing.T) {
	code, out, _ := runCapture(t, "--format", "yaml")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	var rep report
	if err := yaml.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	if len(rep.Features) != len(x86.Features()) {
		t.Fatalf("expected %d features, got %d", len(x86.Features()), len(rep.Features))
	}
}

func TestRunText(t *testing.T) {
	code, out, _ := runCapture(t)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.HasPrefix(out, "arch: ") {
		t.Fatalf("unexpected header in %q", out)
	}
}
