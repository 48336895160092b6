package service

import (
	"errors"
	"strings"
	"testing"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/store/memory"
)

func newUpdateService(t *testing.T) *UpdateService {
	t.Helper()

	svc, err := NewUpdateService(memory.New([]domain.UpdateRecord{
		{ID: "2025-04-06-improvement", Type: domain.UpdateImprovement, Content: "# Title\n\n- one\n- two"},
		{ID: "2025-04-05-fix", Type: domain.UpdateBugfix, Content: "plain <script>alert(1)</script>"},
		{ID: "2025-04-04-fix", Type: domain.UpdateBugfix},
	}))
	if err != nil {
		t.Fatalf("NewUpdateService() err=%v, want nil", err)
	}
	return svc
}

func TestNewUpdateService_NilCatalog(t *testing.T) {
	_, err := NewUpdateService(nil)
	if !errors.Is(err, ErrCatalogNil) {
		t.Fatalf("NewUpdateService() err=%v, want %v", err, ErrCatalogNil)
	}
}

func TestListUpdates_Order(t *testing.T) {
	svc := newUpdateService(t)

	all := svc.ListUpdates()
	if len(all) != 3 {
		t.Fatalf("ListUpdates() len=%d, want 3", len(all))
	}
	if all[0].ID != "2025-04-06-improvement" {
		t.Fatalf("ListUpdates()[0].ID=%q, want %q", all[0].ID, "2025-04-06-improvement")
	}
}

func TestGetUpdate_Idempotent(t *testing.T) {
	svc := newUpdateService(t)

	first, err := svc.GetUpdate("2025-04-05-fix")
	if err != nil {
		t.Fatalf("GetUpdate() err=%v, want nil", err)
	}
	second, err := svc.GetUpdate("2025-04-05-fix")
	if err != nil {
		t.Fatalf("GetUpdate() err=%v, want nil", err)
	}
	if first != second {
		t.Fatalf("GetUpdate() returned %+v then %+v", first, second)
	}
}

func TestGetUpdate_NotFound(t *testing.T) {
	svc := newUpdateService(t)

	for i := 0; i < 2; i++ {
		_, err := svc.GetUpdate("missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("GetUpdate() err=%v, want %v", err, ErrNotFound)
		}
	}
}

func TestRenderContent(t *testing.T) {
	svc := newUpdateService(t)

	rec, _ := svc.GetUpdate("2025-04-06-improvement")
	html, err := svc.RenderContent(rec)
	if err != nil {
		t.Fatalf("RenderContent() err=%v, want nil", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") || !strings.Contains(html, "<li>one</li>") {
		t.Fatalf("RenderContent()=%q, want heading and list", html)
	}
}

func TestRenderContent_DropsRawHTML(t *testing.T) {
	svc := newUpdateService(t)

	rec, _ := svc.GetUpdate("2025-04-05-fix")
	html, err := svc.RenderContent(rec)
	if err != nil {
		t.Fatalf("RenderContent() err=%v, want nil", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("RenderContent()=%q, want raw html omitted", html)
	}
}
