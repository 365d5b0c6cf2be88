package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/games/hangman"
)

func newTestServer(word string) *httptest.Server {
	sources := func(int64) hangman.WordSource {
		return hangman.WordSourceFunc(func(context.Context, core.Difficulty) string {
			return word
		})
	}
	s := New(NewMemoryStore(), sources, nil)
	return httptest.NewServer(s.Router())
}

func doJSON(t *testing.T, method, url, body string) (int, gameRes) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var res gameRes
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, res
}

func TestNewGameAndGuess(t *testing.T) {
	ts := newTestServer("cat")
	defer ts.Close()

	code, res := doJSON(t, http.MethodPost, ts.URL+"/games", `{"difficulty":"easy"}`)
	if code != http.StatusCreated {
		t.Fatalf("POST /games status = %d, want 201", code)
	}
	if res.ID == "" {
		t.Fatal("empty game id")
	}
	if res.Message != "New easy game started! Word has 3 letters." {
		t.Errorf("message = %q", res.Message)
	}
	if res.Display != "_ _ _" || res.Status != "playing" || res.Remaining != 6 {
		t.Errorf("unexpected start response: %+v", res)
	}

	guessURL := ts.URL + "/games/" + res.ID + "/guess"

	_, res = doJSON(t, http.MethodPost, guessURL, `{"letter":"z"}`)
	if res.Message != "Sorry, 'z' is not in the word. 5 guesses remaining." {
		t.Errorf("message = %q", res.Message)
	}
	if res.Progress != "Guessed letters: z" {
		t.Errorf("progress = %q", res.Progress)
	}

	for _, l := range []string{"c", "a", "t"} {
		_, res = doJSON(t, http.MethodPost, guessURL, `{"letter":"`+l+`"}`)
	}
	if res.Status != "won" {
		t.Errorf("status = %q, want won", res.Status)
	}
	if res.Message != "Congratulations! You guessed the word 'cat'!" {
		t.Errorf("message = %q", res.Message)
	}

	_, res = doJSON(t, http.MethodPost, guessURL, `{"letter":"q"}`)
	if res.Rejected != "game_over" {
		t.Errorf("rejected = %q, want game_over", res.Rejected)
	}
}

func TestGuessRejections(t *testing.T) {
	ts := newTestServer("cat")
	defer ts.Close()

	_, res := doJSON(t, http.MethodPost, ts.URL+"/games", `{}`)
	if res.Difficulty != "medium" {
		t.Errorf("default difficulty = %q, want medium", res.Difficulty)
	}
	guessURL := ts.URL + "/games/" + res.ID + "/guess"

	tests := []struct {
		letter string
		want   string
	}{
		{"c", ""},
		{"c", "already_guessed"},
		{"ab", "invalid_guess"},
		{"1", "invalid_guess"},
		{"", "invalid_guess"},
	}
	for _, tt := range tests {
		_, res := doJSON(t, http.MethodPost, guessURL, `{"letter":"`+tt.letter+`"}`)
		if res.Rejected != tt.want {
			t.Errorf("guess %q: rejected = %q, want %q", tt.letter, res.Rejected, tt.want)
		}
	}
}

func TestGetGame(t *testing.T) {
	ts := newTestServer("dog")
	defer ts.Close()

	_, created := doJSON(t, http.MethodPost, ts.URL+"/games", `{"difficulty":"hard"}`)
	doJSON(t, http.MethodPost, ts.URL+"/games/"+created.ID+"/guess", `{"letter":"o"}`)

	code, res := doJSON(t, http.MethodGet, ts.URL+"/games/"+created.ID, "")
	if code != http.StatusOK {
		t.Fatalf("GET status = %d", code)
	}
	if res.Display != "_ o _" {
		t.Errorf("display = %q, want %q", res.Display, "_ o _")
	}
	if res.Message != "Good guess! 'o' is in the word." {
		t.Errorf("message = %q", res.Message)
	}
}

func TestUnknownGame(t *testing.T) {
	ts := newTestServer("cat")
	defer ts.Close()

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/games/missing", ""},
		{http.MethodPost, "/games/missing/guess", `{"letter":"a"}`},
	} {
		req, _ := http.NewRequest(tc.method, ts.URL+tc.path, strings.NewReader(tc.body))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		var body map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s status = %d, want 404", tc.method, tc.path, resp.StatusCode)
		}
		if body["error"] != "not_found" {
			t.Errorf("%s %s error = %q", tc.method, tc.path, body["error"])
		}
	}
}

func TestBadJSON(t *testing.T) {
	ts := newTestServer("cat")
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/games", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer("cat")
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()
	g := NewGame(hangman.NewSession(nil))

	if _, err := st.Get(context.Background(), g.ID); err != ErrNotFound {
		t.Errorf("Get before Save err = %v, want ErrNotFound", err)
	}
	if err := st.Save(context.Background(), g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(context.Background(), g.ID)
	if err != nil || got != g {
		t.Errorf("Get = %v, %v", got, err)
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}
