package display

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func frame(n int, data string) Frame {
	return Frame{Episodes: n, ContentType: "text/plain", Data: []byte(data)}
}

func TestFile_ReplacesFrame(t *testing.T) {
	for _, wait := range []bool{true, false} {
		dir := t.TempDir()
		path := filepath.Join(dir, "charts", "run.html")
		f := NewFile(path, wait)

		if err := f.Show(frame(1, "first frame, longer")); err != nil {
			t.Fatalf("Show() error: %v", err)
		}
		if err := f.Show(frame(2, "second")); err != nil {
			t.Fatalf("Show() error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading frame: %v", err)
		}
		if string(got) != "second" {
			t.Errorf("wait=%v: file = %q, want %q", wait, got, "second")
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("wait=%v: dir has %d entries, want 1", wait, len(entries))
		}
	}
}

func TestTerminal_ClearsBeforeEachFrame(t *testing.T) {
	for _, wait := range []bool{true, false} {
		var buf bytes.Buffer
		term := NewTerminal(&buf, wait)

		if err := term.Show(frame(1, "one")); err != nil {
			t.Fatalf("Show() error: %v", err)
		}
		if err := term.Show(frame(2, "two")); err != nil {
			t.Fatalf("Show() error: %v", err)
		}

		want := clearScreen + "one" + clearScreen + "two"
		if buf.String() != want {
			t.Errorf("wait=%v: output = %q, want %q", wait, buf.String(), want)
		}
	}
}

// countingWriter records how many writes it receives.
type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}

func TestTerminal_WaitWritesOnce(t *testing.T) {
	w := &countingWriter{}
	if err := NewTerminal(w, true).Show(frame(1, "x")); err != nil {
		t.Fatalf("Show() error: %v", err)
	}
	if w.writes != 1 {
		t.Errorf("writes = %d, want 1", w.writes)
	}
}

func TestLive_ServesLatestFrame(t *testing.T) {
	live := NewLive(2*time.Second, nil)
	srv := httptest.NewServer(live)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status before first frame = %d, want 503", resp.StatusCode)
	}

	data := []byte("<html>1</html>")
	if err := live.Show(Frame{Episodes: 1, ContentType: "text/html", Data: data}); err != nil {
		t.Fatalf("Show() error: %v", err)
	}
	data[7] = '9'
	if err := live.Show(Frame{Episodes: 2, ContentType: "text/html", Data: []byte("<html>2</html>")}); err != nil {
		t.Fatalf("Show() error: %v", err)
	}

	rec := httptest.NewRecorder()
	live.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "<html>2</html>" {
		t.Errorf("body = %q, want latest frame", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html" {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
	if got := rec.Header().Get("Refresh"); got != "2" {
		t.Errorf("Refresh = %q, want 2", got)
	}
	if got := rec.Header().Get("X-Episodes"); got != "2" {
		t.Errorf("X-Episodes = %q, want 2", got)
	}
}

func TestLive_ServeStopsWithContext(t *testing.T) {
	live := NewLive(0, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- live.Serve(ctx, ln) }()
	if err := live.Show(frame(1, "up")); err != nil {
		t.Fatalf("Show() error: %v", err)
	}

	resp, err := http.Get("http://" + ln.Addr().String())
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Serve() error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}

type failingDisplay struct{ err error }

func (d failingDisplay) Show(Frame) error { return d.err }

func TestMulti(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")
	m := Multi{NewTerminal(&buf, true), failingDisplay{err: boom}}

	err := m.Show(frame(1, "frame"))
	if !errors.Is(err, boom) {
		t.Errorf("Show() error = %v, want %v", err, boom)
	}
	if !strings.HasSuffix(buf.String(), "frame") {
		t.Errorf("terminal output = %q, want frame shown", buf.String())
	}
}
