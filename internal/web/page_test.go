package web

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"animalbase/internal/domain/animals"
)

func loadedService(t *testing.T) *animals.Service {
	t.Helper()

	svc := animals.NewService(animals.SourceFunc(func(context.Context) ([]animals.RawAnimal, error) {
		return []animals.RawAnimal{
			{Fullname: "Mandu the amazing cat", Age: 10},
			{Fullname: "Leeroy the growing dog", Age: 3},
			{Fullname: "broken", Age: 1},
		}, nil
	}), nil)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc
}

func render(t *testing.T, d PageData) string {
	t.Helper()

	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestRender_RowsGlyphsAndControls(t *testing.T) {
	svc := loadedService(t)
	all, _ := svc.All()
	if _, err := svc.ToggleStar(all[0].ID); err != nil {
		t.Fatalf("star: %v", err)
	}

	html := render(t, newPageData(svc.Snapshot(), nil))

	if strings.Count(html, "<tr data-id=") != 3 {
		t.Fatalf("expected one row per animal:\n%s", html)
	}
	if strings.Count(html, StarOn) != 1 || strings.Count(html, StarOff) != 2 {
		t.Fatalf("expected 1 starred and 2 unstarred rows")
	}
	if strings.Count(html, `class="loser"`) != 3 {
		t.Fatalf("expected all trophies marked loser")
	}
	// Filtros: All + un botón por tipo (el registro sin tipo no genera botón)
	if strings.Count(html, `name="filter"`) != 3 {
		t.Fatalf("expected All/cat/dog filter buttons")
	}
	if !strings.Contains(html, `data-sort="name" data-sort-direction="desc"`) {
		t.Fatalf("expected first name activation to be desc")
	}
	if !strings.Contains(html, `id="load-warnings"`) {
		t.Fatalf("expected malformed record banner")
	}
}

func TestRender_StarToggleTwiceRestoresGlyph(t *testing.T) {
	svc := loadedService(t)
	all, _ := svc.All()

	before := render(t, newPageData(svc.Snapshot(), nil))
	_, _ = svc.ToggleStar(all[1].ID)
	_, _ = svc.ToggleStar(all[1].ID)
	after := render(t, newPageData(svc.Snapshot(), nil))

	if before != after {
		t.Fatalf("double star toggle must render the same page")
	}
}

func TestRender_ConflictDialog(t *testing.T) {
	svc := loadedService(t)
	all, _ := svc.All()
	_, _ = svc.ToggleWinner(all[0].ID)

	conflict := &animals.ConflictView{
		Kind:    animals.ConflictTotal,
		Message: animals.ConflictTotal.Message(),
		Winners: []animals.Animal{all[0], all[1]},
	}
	html := render(t, newPageData(svc.Snapshot(), conflict))

	if !strings.Contains(html, "You can only have two winners in total") {
		t.Fatalf("expected total message")
	}
	if strings.Count(html, `action="/ui/winners/`) != 2 {
		t.Fatalf("expected one remove control per winner")
	}
	if !strings.Contains(html, `id="error-shadow" href="/"`) {
		t.Fatalf("expected dismissable overlay")
	}
}

func TestRender_LoadErrorHaltsList(t *testing.T) {
	html := render(t, newPageData(animals.Snapshot{LoadErr: errors.New("read animals.json: no such file")}, nil))

	if !strings.Contains(html, "no such file") {
		t.Fatalf("expected error text in page")
	}
	if strings.Contains(html, `id="list"`) {
		t.Fatalf("list must not render in error state")
	}
}
