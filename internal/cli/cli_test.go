package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePapers = `{
  "0": {"title": "Attention Is All You Need", "authors": "Ashish Vaswani, Noam Shazeer",
        "published_date": "2017-06-12", "venue": {"name": "NeurIPS", "color": "#fde68a"},
        "collections": [{"name": "transformers"}], "total_likes": 10, "total_read": 20,
        "relevance": 0.9, "arxiv_id": "1706.03762"},
  "1": {"title": "Deep Residual Learning", "authors": "Kaiming He",
        "published_date": "2016-12-10", "venue": {"name": "CVPR"},
        "collections": [{"name": "vision"}], "total_likes": 5, "total_read": 7, "relevance": 0.4},
  "2": {"title": "Toolformer", "authors": "Timo Schick", "published_date": "2023-02-09T10:00:00Z",
        "collections": [{"name": "agents"}, {"name": "transformers"}], "total_likes": 1,
        "total_read": 2, "relevance": 0.7, "url": "https://example.com/toolformer"}
}`

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "papers.json")
	if err := os.WriteFile(path, []byte(fixturePapers), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	// Keep the user's config and environment out of the test.
	t.Setenv("PAPERBOARD_CONFIG_DIR", t.TempDir())
	t.Setenv("PAPERBOARD_CONFIG", "")
	t.Setenv("PAPERBOARD_FORMAT", "")
	t.Setenv("PAPERBOARD_TIMEZONE", "UTC")

	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Hints []string        `json:"_hints"`
}

func mustRun(t *testing.T, args ...string) envelope {
	t.Helper()
	stdout, stderr, err := runCLI(t, args)
	if err != nil {
		t.Fatalf("paperboard %v: %v\nstderr:\n%s", args, err, stderr)
	}
	var env envelope
	if err := json.Unmarshal(stdout, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v\nstdout:\n%s", err, stdout)
	}
	return env
}

func titles(t *testing.T, env envelope) []string {
	t.Helper()
	var rows []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("unmarshal rows: %v\n%s", err, env.Data)
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Title)
	}
	return out
}

func TestList(t *testing.T) {
	data := writeFixture(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantCnt float64
	}{
		{"default sort newest first", nil, []string{"Toolformer", "Attention Is All You Need", "Deep Residual Learning"}, 3},
		{"search", []string{"--search", "ATTENTION"}, []string{"Attention Is All You Need"}, 1},
		{"search authors", []string{"--search", "kaiming"}, []string{"Deep Residual Learning"}, 1},
		{"year", []string{"--year", "2023"}, []string{"Toolformer"}, 1},
		{"collection", []string{"--collection", "transformers"}, []string{"Toolformer", "Attention Is All You Need"}, 2},
		{"venue wins over collection", []string{"--collection", "transformers", "--venue", "CVPR"}, []string{"Deep Residual Learning"}, 1},
		{"sort name", []string{"--sort", "name"}, []string{"Attention Is All You Need", "Deep Residual Learning", "Toolformer"}, 3},
		{"sort venue desc", []string{"--sort", "venue:desc"}, []string{"Attention Is All You Need", "Deep Residual Learning", "Toolformer"}, 3},
		{"sort none keeps file order", []string{"--sort", "none"}, []string{"Attention Is All You Need", "Deep Residual Learning", "Toolformer"}, 3},
		{"limit", []string{"--limit", "1"}, []string{"Toolformer"}, 3},
		{"no results", []string{"--search", "zzz"}, []string{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := mustRun(t, append([]string{"--data", data, "list"}, tt.args...)...)
			got := titles(t, env)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("titles=%v, want %v", got, tt.want)
			}
			if env.Meta["count"] != tt.wantCnt {
				t.Fatalf("count=%v, want %v", env.Meta["count"], tt.wantCnt)
			}
		})
	}
}

func TestList_MetaReportsFilters(t *testing.T) {
	data := writeFixture(t)
	env := mustRun(t, "--data", data, "list", "--tag", "transformers", "--sort", "year:asc")

	if env.Meta["sort"] != "year:asc" {
		t.Fatalf("sort=%v", env.Meta["sort"])
	}
	filters, _ := env.Meta["filters"].([]any)
	if len(filters) != 1 {
		t.Fatalf("expected one filter badge, got %v", env.Meta["filters"])
	}
	b, _ := filters[0].(map[string]any)
	if b["label"] != "Tag:" || b["value"] != "transformers" {
		t.Fatalf("unexpected badge %v", b)
	}
	if env.Meta["distinct_collections"] != float64(2) {
		t.Fatalf("distinct_collections=%v", env.Meta["distinct_collections"])
	}
}

func TestList_RejectsBadSort(t *testing.T) {
	data := writeFixture(t)

	_, stderr, err := runCLI(t, []string{"--data", data, "list", "--sort", "stars"})
	var colErr unknownColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected unknownColumnError, got %v", err)
	}
	if !strings.Contains(string(stderr), "unknown sort column: stars") {
		t.Fatalf("stderr=%s", stderr)
	}

	_, _, err = runCLI(t, []string{"--data", data, "list", "--sort", "name:sideways"})
	var dirErr unknownDirectionError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected unknownDirectionError, got %v", err)
	}
}

func TestParseSortFlag(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"name":       "name:asc",
		"Year:DESC":  "year:desc",
		" link:asc ": "link:asc",
		"none":       "none",
	} {
		spec, err := parseSortFlag(in)
		if err != nil {
			t.Fatalf("parseSortFlag(%q): %v", in, err)
		}
		if spec.String() != want {
			t.Fatalf("parseSortFlag(%q)=%s, want %s", in, spec, want)
		}
	}
	if _, err := parseSortFlag("name:none"); err == nil {
		t.Fatalf("expected error for an explicit none direction")
	}
}

func TestStatsAndOptions(t *testing.T) {
	data := writeFixture(t)

	env := mustRun(t, "--data", data, "stats", "--collection", "transformers")
	var stats struct {
		Count               int `json:"count"`
		DistinctCollections int `json:"distinct_collections"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if stats.Count != 2 || stats.DistinctCollections != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	env = mustRun(t, "--data", data, "options")
	var opts struct {
		Collections []string `json:"collections"`
		Years       []string `json:"years"`
	}
	if err := json.Unmarshal(env.Data, &opts); err != nil {
		t.Fatalf("unmarshal options: %v", err)
	}
	if strings.Join(opts.Collections, ",") != "agents,transformers,vision" {
		t.Fatalf("collections=%v", opts.Collections)
	}
	if strings.Join(opts.Years, ",") != "2023,2017,2016" {
		t.Fatalf("years=%v", opts.Years)
	}
}

func TestOutputFormats(t *testing.T) {
	data := writeFixture(t)

	stdout, _, err := runCLI(t, []string{"--data", data, "--format", "yaml", "stats"})
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(string(stdout), "count: 3") {
		t.Fatalf("yaml output:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, []string{"--data", data, "--format", "edn", "stats"})
	if err != nil {
		t.Fatalf("edn: %v", err)
	}
	if !strings.Contains(string(stdout), ":distinct-collections 3") {
		t.Fatalf("edn output:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"--data", data, "--format", "xml", "stats"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestExport(t *testing.T) {
	data := writeFixture(t)
	out := filepath.Join(t.TempDir(), "papers.md")

	env := mustRun(t, "--data", data, "export", "--as", "markdown", "--out", out, "--title", "Reading list")
	var res struct {
		Written string `json:"written"`
		Rows    int    `json:"rows"`
	}
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.Written != out || res.Rows != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(b), "# Reading list") || !strings.Contains(string(b), "| Name |") {
		t.Fatalf("unexpected markdown:\n%s", b)
	}

	if _, _, err := runCLI(t, []string{"--data", data, "export", "--as", "markdown", "--out", out}); err == nil {
		t.Fatalf("expected error when the file exists")
	}

	stdout, _, err := runCLI(t, []string{"--data", data, "export", "--out", "-", "--venue", "NeurIPS"})
	if err != nil {
		t.Fatalf("export to stdout: %v", err)
	}
	if !strings.Contains(string(stdout), "<table>") || strings.Contains(string(stdout), "Toolformer") {
		t.Fatalf("unexpected html:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"--data", data, "export", "--as", "pdf", "--out", "-"}); err == nil {
		t.Fatalf("expected error for pdf")
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	data := writeFixture(t)
	cfg := filepath.Join(t.TempDir(), "paperboard.yaml")
	if err := os.WriteFile(cfg, []byte("data: "+data+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := mustRun(t, "--config", cfg, "stats")
	if !strings.Contains(string(env.Data), `"count":3`) {
		t.Fatalf("config data not used: %s", env.Data)
	}

	t.Setenv("PAPERBOARD_DATA", filepath.Join(t.TempDir(), "missing.json"))
	_, stderr, err := runCLI(t, []string{"stats"})
	if err == nil {
		t.Fatalf("expected load error for missing env data")
	}
	if !strings.Contains(string(stderr), "load papers from") {
		t.Fatalf("stderr=%s", stderr)
	}

	// Flags beat env.
	env = mustRun(t, "--data", data, "stats")
	if !strings.Contains(string(env.Data), `"count":3`) {
		t.Fatalf("flag data not used: %s", env.Data)
	}
}

func TestLogFile(t *testing.T) {
	data := writeFixture(t)
	logPath := filepath.Join(t.TempDir(), "paperboard.log")

	mustRun(t, "--data", data, "--log-file", logPath, "--debug", "list")
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"papers loaded", "view built", "level=DEBUG"} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("log missing %q:\n%s", want, b)
		}
	}
}

func TestDocs(t *testing.T) {
	env := mustRun(t, "docs")
	if !strings.Contains(string(env.Data), `"keys"`) {
		t.Fatalf("topics=%s", env.Data)
	}

	stdout, _, err := runCLI(t, []string{"docs", "config", "--raw"})
	if err != nil {
		t.Fatalf("docs config: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Configuration") {
		t.Fatalf("raw docs:\n%s", stdout)
	}

	if _, _, err := runCLI(t, []string{"docs", "nope"}); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}
