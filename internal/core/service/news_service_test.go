package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/newsdesk/newsroom/internal/core/domain"
	"github.com/newsdesk/newsroom/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ----------------------------------------------------------------------------
// Stub repository
// ----------------------------------------------------------------------------

type stubNewsRepo struct {
	rows      map[int64]domain.News
	nextID    int64
	lastPage  *ports.Page
	lastQuery ports.NewsFilter
	updates   int
	deletes   int
	createErr error
}

func newStubNewsRepo(rows ...domain.News) *stubNewsRepo {
	r := &stubNewsRepo{rows: make(map[int64]domain.News)}
	for _, n := range rows {
		r.rows[n.ID] = n
		if n.ID > r.nextID {
			r.nextID = n.ID
		}
	}
	return r
}

func (r *stubNewsRepo) Create(_ context.Context, n *domain.News) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	n.ID = r.nextID
	r.rows[n.ID] = *n
	return nil
}

func (r *stubNewsRepo) Update(_ context.Context, n *domain.News) error {
	r.updates++
	r.rows[n.ID] = *n
	return nil
}

func (r *stubNewsRepo) FindByID(_ context.Context, id int64) (*domain.News, error) {
	n, ok := r.rows[id]
	if !ok {
		return nil, domain.NewsNotFound(id)
	}
	return &n, nil
}

func (r *stubNewsRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.rows[id]
	return ok, nil
}

func (r *stubNewsRepo) List(_ context.Context, f ports.NewsFilter, page *ports.Page) ([]*domain.News, error) {
	r.lastQuery = f
	r.lastPage = page
	return nil, nil
}

func (r *stubNewsRepo) Delete(_ context.Context, id int64) error {
	r.deletes++
	delete(r.rows, id)
	return nil
}

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func TestNewsService_Update_PathMismatch(t *testing.T) {
	repo := newStubNewsRepo(domain.News{ID: 1, Title: "t"})
	svc := NewNewsService(repo, discardLogger)

	err := svc.Update(context.Background(), 2, &domain.News{ID: 1, Title: "x"})
	if !errors.Is(err, domain.ErrBadRequestParameters) {
		t.Fatalf("expected ErrBadRequestParameters, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("repository must not be written")
	}
}

func TestNewsService_Update_Missing(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, discardLogger)

	err := svc.Update(context.Background(), 7, &domain.News{ID: 7})
	if !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_CheckUpdate_MismatchBeforeLookup(t *testing.T) {
	svc := NewNewsService(newStubNewsRepo(), discardLogger)

	// neither id exists; the identity check must fire first
	_, err := svc.CheckUpdate(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrBadRequestParameters) {
		t.Fatalf("expected ErrBadRequestParameters, got %v", err)
	}
	_, err = svc.CheckUpdate(context.Background(), 3, 3)
	if !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
}

func TestNewsService_Update_Success(t *testing.T) {
	repo := newStubNewsRepo(domain.News{ID: 1, Title: "old"})
	svc := NewNewsService(repo, discardLogger)

	if err := svc.Update(context.Background(), 1, &domain.News{ID: 1, Title: "new"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if repo.rows[1].Title != "new" {
		t.Errorf("title = %q", repo.rows[1].Title)
	}
}

func TestNewsService_DeleteByID(t *testing.T) {
	repo := newStubNewsRepo(domain.News{ID: 1})
	svc := NewNewsService(repo, discardLogger)

	if err := svc.DeleteByID(context.Background(), 2); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound, got %v", err)
	}
	if err := svc.DeleteByID(context.Background(), 1); err != nil {
		t.Fatalf("DeleteByID returned error: %v", err)
	}
	if repo.deletes != 1 {
		t.Fatalf("expected one delete, got %d", repo.deletes)
	}
}

func TestNewsService_Save_WrapsRepositoryError(t *testing.T) {
	repo := newStubNewsRepo()
	repo.createErr = domain.UserNotFound(5)
	svc := NewNewsService(repo, discardLogger)

	err := svc.Save(context.Background(), &domain.News{UserID: 5})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNewsService_Queries(t *testing.T) {
	repo := newStubNewsRepo()
	svc := NewNewsService(repo, discardLogger)
	ctx := context.Background()

	_, _ = svc.FindPage(ctx, ports.Page{Number: 2, Size: 5})
	if repo.lastPage == nil || repo.lastPage.Offset() != 10 {
		t.Fatalf("unexpected page: %+v", repo.lastPage)
	}

	_, _ = svc.FindAll(ctx)
	if repo.lastPage != nil {
		t.Fatalf("FindAll must not page")
	}

	_, _ = svc.FindByTitleContains(ctx, "go")
	if repo.lastQuery != (ports.NewsFilter{TitleContains: "go"}) {
		t.Fatalf("unexpected filter: %+v", repo.lastQuery)
	}

	_, _ = svc.FindByUserID(ctx, 4)
	if repo.lastQuery != (ports.NewsFilter{UserID: 4}) {
		t.Fatalf("unexpected filter: %+v", repo.lastQuery)
	}
}
