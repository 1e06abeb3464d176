package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postChat(t *testing.T, body string) map[string]string {
	t.Helper()
	h := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestChatRepliesPerLanguage(t *testing.T) {
	resp := postChat(t, `{"message":"hola","language":"Spanish"}`)
	if !strings.Contains(resp["reply"], "¿En qué más puedo ayudarte?") {
		t.Fatalf("expected Spanish reply, got %q", resp["reply"])
	}

	resp = postChat(t, `{"message":"bonjour","language":"French"}`)
	if !strings.Contains(resp["reply"], "Comment puis-je vous aider") {
		t.Fatalf("expected French reply, got %q", resp["reply"])
	}
}

func TestChatDefaultsToEnglish(t *testing.T) {
	resp := postChat(t, `{"message":"hello","language":"Klingon"}`)
	if resp["reply"] != defaultReply {
		t.Fatalf("expected English default reply, got %q", resp["reply"])
	}
}
