package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.Jester/internal/fetcher"
	"github.com/LISSConsulting/LISSTech.Jester/internal/joke"
)

var chicken = joke.Joke{ID: 1, Setup: "Why did the chicken cross the road?", Punchline: "To get to the other side."}

type fixedFetcher struct {
	joke joke.Joke
	err  error
}

func (f fixedFetcher) Fetch(ctx context.Context) (joke.Joke, error) {
	return f.joke, f.err
}

func TestFetchOnce_Success(t *testing.T) {
	m := fetcher.New(nil)
	got, err := fetchOnce(context.Background(), fixedFetcher{joke: chicken}, m, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != chicken {
		t.Errorf("got %+v, want %+v", got, chicken)
	}
	if m.Kind() != fetcher.Loaded || !m.Celebrating() {
		t.Errorf("machine should end loaded and celebrating, got %v/%v", m.Kind(), m.Celebrating())
	}
}

func TestFetchOnce_WaitsForReveal(t *testing.T) {
	start := time.Now()
	_, err := fetchOnce(context.Background(), fixedFetcher{joke: chicken}, fetcher.New(nil), 30*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("returned after %v, want at least the reveal delay", elapsed)
	}
}

func TestFetchOnce_Failure(t *testing.T) {
	cause := &joke.HTTPError{StatusCode: 500}
	m := fetcher.New(nil)
	_, err := fetchOnce(context.Background(), fixedFetcher{err: cause}, m, 0)
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
	if m.Kind() != fetcher.Failed || m.Celebrating() {
		t.Errorf("machine should be failed without celebration, got %v/%v", m.Kind(), m.Celebrating())
	}
}

func TestFetchOnce_CancelledDuringReveal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := fetcher.New(nil)
	_, err := fetchOnce(ctx, fixedFetcher{joke: chicken}, m, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if _, ok := m.Joke(); ok {
		t.Error("cancelled reveal must not display the joke")
	}
}

func TestPrintJoke(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printJoke(&buf, chicken, false); err != nil {
			t.Fatal(err)
		}
		want := "🤣 Why did the chicken cross the road?\n   To get to the other side.\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := printJoke(&buf, chicken, true); err != nil {
			t.Fatal(err)
		}
		var got joke.Joke
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if got != chicken {
			t.Errorf("got %+v, want %+v", got, chicken)
		}
	})
}

// writeConfig writes a jester.toml pointing at endpoint into a temp dir and
// returns its path. Logging is disabled so tests leave no files behind.
func writeConfig(t *testing.T, endpoint string) string {
	t.Helper()
	dir := t.TempDir()
	content := "[api]\nendpoint = \"" + endpoint + "\"\ntimeout_seconds = 2\n\n[timing]\nreveal_delay_ms = 0\n\n[log]\nfile = \"\"\n"
	path := filepath.Join(dir, "jester.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFetchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "jester/") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte(`{"id":1,"setup":"Why did the chicken cross the road?","punchline":"To get to the other side."}`))
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fetch", "--config", writeConfig(t, srv.URL), "--json"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	var got joke.Joke
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, out.String())
	}
	if got != chicken {
		t.Errorf("got %+v, want %+v", got, chicken)
	}
}

func TestFetchCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fetch", "--config", writeConfig(t, srv.URL)})
	err := root.Execute()

	var he *joke.HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusInternalServerError {
		t.Fatalf("err = %v, want HTTP 500 error", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", out.String())
	}
}

func TestFetchCommand_LogsBesideConfig(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	cfgDir := t.TempDir()
	content := "[api]\nendpoint = \"" + srv.URL + "\"\ntimeout_seconds = 2\n\n[log]\nfile = \".jester/jester.log\"\n"
	cfgPath := filepath.Join(cfgDir, "jester.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	workDir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(origDir) })
	if err := os.Chdir(workDir); err != nil {
		t.Fatal(err)
	}

	root := rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"fetch", "--config", cfgPath})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for HTTP 500")
	}

	data, err := os.ReadFile(filepath.Join(cfgDir, ".jester", "jester.log"))
	if err != nil {
		t.Fatalf("log file should sit beside jester.toml: %v", err)
	}
	if !strings.Contains(string(data), "fetch joke failed") {
		t.Errorf("log should record the failure, got %q", data)
	}
	if _, err := os.Stat(filepath.Join(workDir, ".jester")); !os.IsNotExist(err) {
		t.Errorf("working directory should stay clean, stat err = %v", err)
	}
}
