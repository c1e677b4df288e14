package portfolio

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestImportTextStoresOrderedPortfolio(t *testing.T) {
	repo := NewMemoryRepo()
	svc := newTestService(repo)

	p, res, err := svc.ImportText(context.Background(), " user-1 ", exportText)
	if err != nil {
		t.Fatalf("ImportText: %v", err)
	}
	if res.Strategy != "english" || res.Confidence != 0.75 {
		t.Fatalf("unexpected result meta: %q %v", res.Strategy, res.Confidence)
	}

	wantProfile := Profile{
		UserID:     "user-1",
		Name:       "Jane Doe",
		Headline:   "Software Engineer",
		About:      "I build things.",
		Strategy:   "english",
		Confidence: 0.75,
		UpdatedAt:  fixedNow,
	}
	if p.Profile != wantProfile {
		t.Fatalf("expected %+v, got %+v", wantProfile, p.Profile)
	}
	wantExp := []Experience{
		{ID: "id-1", UserID: "user-1", Company: "Acme Corp", Title: "Engineer", Duration: "2020 - Present", Order: 0},
		{ID: "id-2", UserID: "user-1", Company: "Globex", Title: "Staff Engineer", Duration: "2016 - 2020", Order: 1},
	}
	if !reflect.DeepEqual(p.Experiences, wantExp) {
		t.Fatalf("expected %+v, got %+v", wantExp, p.Experiences)
	}
	var names []string
	for i, s := range p.Skills {
		if s.Order != i {
			t.Fatalf("expected skill order %d, got %d", i, s.Order)
		}
		names = append(names, s.Name)
	}
	if !reflect.DeepEqual(names, []string{"Go", "Rust", "SQL"}) {
		t.Fatalf("unexpected skills %v", names)
	}

	stored, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(stored, p) {
		t.Fatalf("expected stored portfolio to match import")
	}
}

func TestImportTextReplacesPreviousImport(t *testing.T) {
	repo := NewMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, _, err := svc.ImportText(ctx, "user-1", exportText); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, _, err := svc.ImportText(ctx, "user-1", "Jane Doe\nSkills\nHaskell"); err != nil {
		t.Fatalf("second import: %v", err)
	}

	p, err := svc.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(p.Experiences) != 0 {
		t.Fatalf("expected experiences replaced, got %+v", p.Experiences)
	}
	if len(p.Skills) != 1 || p.Skills[0].Name != "Haskell" {
		t.Fatalf("expected skills replaced, got %+v", p.Skills)
	}
	if p.Profile.About != "" {
		t.Fatalf("expected about overwritten, got %q", p.Profile.About)
	}
}

func TestImportTextValidation(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	ctx := context.Background()

	if _, _, err := svc.ImportText(ctx, "", exportText); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
	if _, _, err := svc.ImportText(ctx, "user-1", " \n\t"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank text, got %v", err)
	}
	if _, _, err := svc.ImportText(ctx, "user-1", strings.Repeat("x", 5<<10)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected nothing stored after rejected imports, got %v", err)
	}
}

type failingRepo struct{ err error }

func (f failingRepo) ApplyImport(ctx context.Context, p Portfolio) error { return f.err }
func (f failingRepo) Get(ctx context.Context, userID string) (Portfolio, error) {
	return Portfolio{}, f.err
}

func TestImportTextWrapsRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestService(failingRepo{err: boom})

	_, _, err := svc.ImportText(context.Background(), "user-1", exportText)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	repo := NewMemoryRepo()
	svc := newTestService(repo)

	res, err := svc.Preview(exportText)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if res.Profile.Name != "Jane Doe" || len(res.Experiences) != 2 {
		t.Fatalf("unexpected preview %+v", res)
	}
	if _, err := repo.Get(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected preview not to store, got %v", err)
	}

	empty, err := svc.Preview("")
	if err != nil {
		t.Fatalf("Preview empty: %v", err)
	}
	if empty.Skills == nil || empty.Experiences == nil || len(empty.Skills) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", empty)
	}
}
