package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "pcrdesign.yaml")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Design.MinProductSize != 100 || c.Design.MaxPrimerLength != 25 || c.Design.OptimalTm != 60 {
		t.Fatalf("design defaults: %+v", c.Design)
	}
	if c.Design.Specificity != -1 {
		t.Fatalf("specificity should default to disabled, got %d", c.Design.Specificity)
	}
	if c.Limits.CandidateCap != 300 || c.Limits.ResultCap != 20 {
		t.Fatalf("limit defaults: %+v", c.Limits)
	}
	if c.Analyze.PrimerConcNM != 250 || c.Analyze.SaltMM != 50 {
		t.Fatalf("analyze defaults: %+v", c.Analyze)
	}
	if c.Run.CacheSize != 128 || c.Log.Level != "warn" || c.Log.Format != "console" {
		t.Fatalf("run/log defaults: %+v %+v", c.Run, c.Log)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	fn := writeFile(t, `
design:
  min_product_size: 40
  max_product_size: 60
  optimal_tm: 58.5
run:
  threads: 2
  timeout: 30s
log:
  format: json
  output: /var/log/pcrdesign.log
`)
	c, err := Load(fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Design.MinProductSize != 40 || c.Design.MaxProductSize != 60 || c.Design.OptimalTm != 58.5 {
		t.Fatalf("overlay not applied: %+v", c.Design)
	}
	if c.Design.MinPrimerLength != 18 {
		t.Fatalf("untouched keys must keep defaults: %+v", c.Design)
	}
	if c.Run.Threads != 2 || c.Run.Timeout != 30*time.Second || c.Log.Format != "json" || c.Log.Output != "/var/log/pcrdesign.log" {
		t.Fatalf("run/log overlay: %+v %+v", c.Run, c.Log)
	}
	cons := c.Design.Constraints()
	if cons.MinProductSize != 40 || cons.OptimalTm != 58.5 {
		t.Fatalf("Constraints(): %+v", cons)
	}
	if err := cons.Validate(); err != nil {
		t.Fatalf("constraints from a valid config must validate: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvThreads, "3")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Log.Level != "debug" || c.Run.Threads != 3 {
		t.Fatalf("env overrides: %+v %+v", c.Log, c.Run)
	}

	t.Setenv(EnvThreads, "many")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric threads")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must be an error")
	}
	if _, err := Load(writeFile(t, "design: [1, 2")); err == nil {
		t.Fatal("malformed YAML must be an error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		want string
	}{
		{"product order", func(c *Config) { c.Design.MinProductSize, c.Design.MaxProductSize = 500, 100 }, "Design.MaxProductSize"},
		{"primer length", func(c *Config) { c.Design.MinPrimerLength = 0 }, "Design.MinPrimerLength"},
		{"tm order", func(c *Config) { c.Design.MinTm, c.Design.MaxTm = 70, 60 }, "Design.MaxTm"},
		{"candidate cap", func(c *Config) { c.Limits.CandidateCap = 0 }, "Limits.CandidateCap"},
		{"concentration", func(c *Config) { c.Analyze.PrimerConcNM = 0 }, "Analyze.PrimerConcNM"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "Log.Level"},
		{"specificity", func(c *Config) { c.Design.Specificity = -2 }, "Design.Specificity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mut(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error mentioning %q, got %v", tc.want, err)
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
