package client

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oneflow1982/ktg/pkg/readiness"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(strings.TrimPrefix(srv.URL, "http://"))
}

func TestCompute(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/compute", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("compute used method %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"historicalTime":4`) {
			t.Errorf("compute body %q is missing historicalTime", body)
		}
		io.WriteString(w, "0.025")
	})

	c := newTestClient(t, mux)

	v, err := c.Compute(0.05, 2, 4)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v != 0.025 {
		t.Fatalf("Compute = %v, want 0.025", v)
	}
}

func TestSweep(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sweep", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `"tMin":4`) {
			t.Errorf("sweep body %q is missing tMin", body)
		}
		io.WriteString(w, `{"times":[4,4.5],"values":[0.025,0.022],"changePercent":[-50,-55.6]}`)
	})

	c := newTestClient(t, mux)

	s, err := c.Sweep(readiness.Params{Baseline: 0.05, SystemTime: 2, TMin: 4, TMax: 4.5})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Sweep returned %d points, want 2", s.Len())
	}
	if s.Values[0] != 0.025 {
		t.Fatalf("Sweep.Values[0] = %v, want 0.025", s.Values[0])
	}
}

func TestGrid(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/grid", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"systemTimes":[1,1.5],"historicalTimes":[4],"values":[[0.0125],[0.019]]}`)
	})

	c := newTestClient(t, mux)

	g, err := c.Grid(readiness.Params{Baseline: 0.05, TMin: 4, TMax: 4})
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if len(g.SystemTimes) != 2 || len(g.Values) != 2 {
		t.Fatalf("Grid has %d system times and %d rows, want 2 and 2", len(g.SystemTimes), len(g.Values))
	}
}

func TestAnalysis(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/analysis", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{
			"params": {"baseline":0.05,"systemTime":2,"tMin":4,"tMax":6},
			"sweep": {"times":[4],"values":[0.025],"changePercent":[-50]},
			"summary": {"mean":0.025,"min":0.025,"max":0.025,"maxImprovementPercent":-50,"reachesFull":false},
			"rating": "low",
			"advice": {"situation":"critical","actions":["a"],"systemTimeVerdict":"good"}
		}`)
	})

	c := newTestClient(t, mux)

	res, err := c.Analysis(readiness.Params{Baseline: 0.05, SystemTime: 2, TMin: 4, TMax: 6})
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	if res.Summary.Max != 0.025 {
		t.Fatalf("Analysis summary max = %v, want 0.025", res.Summary.Max)
	}
	if res.Rating != "low" {
		t.Fatalf("Analysis rating = %q, want low", res.Rating)
	}
	if res.Sweep == nil || res.Sweep.Len() != 1 {
		t.Fatal("Analysis sweep missing or wrong length")
	}
}

func TestReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/report", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "# KTG calculation report\n")
	})

	c := newTestClient(t, mux)

	text, err := c.Report(readiness.Params{Baseline: 0.05, SystemTime: 2, TMin: 4, TMax: 6})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(text, "KTG calculation report") {
		t.Fatalf("Report returned %q", text)
	}
}

func TestGetConfig(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/config", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"baseline":0.05,"systemTime":2,"tMin":4,"tMax":24}`)
	})

	c := newTestClient(t, mux)

	conf, err := c.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if conf.Baseline == nil || *conf.Baseline != 0.05 {
		t.Fatalf("GetConfig baseline = %v, want 0.05", conf.Baseline)
	}
	if conf.TMax == nil || *conf.TMax != 24 {
		t.Fatalf("GetConfig tMax = %v, want 24", conf.TMax)
	}
}

func TestSetters(t *testing.T) {
	var gotMethod, gotPath, gotBody string

	mux := http.NewServeMux()
	record := func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "saved")
	}
	mux.HandleFunc("/baseline", record)
	mux.HandleFunc("/system-time", record)
	mux.HandleFunc("/range", record)

	c := newTestClient(t, mux)

	msg, err := c.SetBaseline(0.3)
	if err != nil {
		t.Fatalf("SetBaseline: %v", err)
	}
	if msg != "saved" {
		t.Fatalf("SetBaseline message = %q, want saved", msg)
	}
	if gotMethod != http.MethodPut || gotPath != "/baseline" || gotBody != "0.3" {
		t.Fatalf("SetBaseline sent %s %s %q", gotMethod, gotPath, gotBody)
	}

	if _, err := c.SetSystemTime(2.5); err != nil {
		t.Fatalf("SetSystemTime: %v", err)
	}
	if gotPath != "/system-time" || gotBody != "2.5" {
		t.Fatalf("SetSystemTime sent %s %q", gotPath, gotBody)
	}

	if _, err := c.SetRange(4, 24); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	if gotPath != "/range" || gotBody != `{"tMin":4,"tMax":24}` {
		t.Fatalf("SetRange sent %s %q", gotPath, gotBody)
	}
}

func TestGetVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `"dev"`)
	})

	c := newTestClient(t, mux)

	v, err := c.GetVersion()
	if err != nil {
		t.Fatalf("GetVersion: %v", err)
	}
	if v != "dev" {
		t.Fatalf("GetVersion = %q, want dev", v)
	}
}

func TestNotFound(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())

	_, err := c.Get("/no-such-route")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on unknown route returned %v, want ErrNotFound", err)
	}
}

func TestErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/compute", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid argument", http.StatusBadRequest)
	})

	c := newTestClient(t, mux)

	_, err := c.Compute(5, 2, 4)
	if err == nil {
		t.Fatal("Compute should fail on a 400 response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Fatalf("error %q does not carry the status code", err)
	}
}

func TestDaemonNotRunning(t *testing.T) {
	// port 1 is never listening on loopback
	c := NewClient("127.0.0.1:1")

	_, err := c.Get("/version")
	if !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("Get against a dead daemon returned %v, want ErrDaemonNotRunning", err)
	}
}
