package animals

import "testing"

func assertWinnerInvariant(t *testing.T, c *Collection) {
	t.Helper()

	winners := c.Winners()
	if len(winners) > MaxWinners {
		t.Fatalf("more than %d winners: %v", MaxWinners, namesOf(winners))
	}
	seen := map[string]bool{}
	for _, w := range winners {
		if seen[w.Type] {
			t.Fatalf("two winners share type %q", w.Type)
		}
		seen[w.Type] = true
	}
}

func TestToggleWinner_Scenario(t *testing.T) {
	c := newTestCollection(t,
		"Mandu the amazing cat",
		"Mia the black cat",
		"Leeroy the growing dog",
	)
	mandu, mia, leeroy := c.All()[0], c.All()[1], c.All()[2]

	// 1) primer gato => ok
	out, err := c.ToggleWinner(mandu.ID)
	if err != nil || !out.Accepted || !mandu.Winner {
		t.Fatalf("expected first cat accepted, got %+v err=%v", out, err)
	}
	assertWinnerInvariant(t, c)

	// 2) segundo gato => conflicto de tipo con Mandu
	out, _ = c.ToggleWinner(mia.ID)
	if out.Accepted || out.Conflict == nil || out.Conflict.Kind != ConflictType {
		t.Fatalf("expected type conflict, got %+v", out)
	}
	if len(out.Conflict.Winners) != 1 || out.Conflict.Winners[0] != mandu {
		t.Fatalf("type conflict must list Mandu only, got %v", namesOf(out.Conflict.Winners))
	}
	if mia.Winner {
		t.Fatalf("rejected toggle must not set winner")
	}
	assertWinnerInvariant(t, c)

	// 3) perro => ok, 2 ganadores
	out, _ = c.ToggleWinner(leeroy.ID)
	if !out.Accepted || len(c.Winners()) != 2 {
		t.Fatalf("expected dog accepted, got %+v", out)
	}
	assertWinnerInvariant(t, c)

	// 4) tercero => conflicto total con ambos
	out, _ = c.ToggleWinner(mia.ID)
	if out.Conflict == nil || out.Conflict.Kind != ConflictTotal {
		t.Fatalf("expected total conflict, got %+v", out)
	}
	if len(out.Conflict.Winners) != 2 {
		t.Fatalf("total conflict must list both winners, got %v", namesOf(out.Conflict.Winners))
	}
	if out.Conflict.Kind.Message() != "You can only have two winners in total" {
		t.Fatalf("unexpected message %q", out.Conflict.Kind.Message())
	}

	// 5) quitar a Mandu desde el diálogo libera el cupo
	if _, err := c.RemoveWinner(mandu.ID); err != nil {
		t.Fatalf("remove winner: %v", err)
	}
	out, _ = c.ToggleWinner(mia.ID)
	if !out.Accepted || !mia.Winner {
		t.Fatalf("expected Mia accepted after freeing slot, got %+v", out)
	}
	assertWinnerInvariant(t, c)
}

func TestToggleWinner_OffAlwaysAccepted(t *testing.T) {
	c := newTestCollection(t, "Mandu the amazing cat", "Leeroy the growing dog")
	mandu := c.All()[0]

	_, _ = c.ToggleWinner(mandu.ID)
	out, err := c.ToggleWinner(mandu.ID)
	if err != nil || !out.Accepted || mandu.Winner {
		t.Fatalf("turning winner off must be accepted, got %+v err=%v", out, err)
	}
}

func TestToggleWinner_InvariantHoldsUnderFilter(t *testing.T) {
	c := newTestCollection(t,
		"Mandu the amazing cat",
		"Leeroy the growing dog",
		"Toothless the trained dragon",
	)
	all := c.All()

	_, _ = c.ToggleWinner(all[0].ID)
	_, _ = c.ToggleWinner(all[1].ID)

	// La vista filtrada no contiene ganadores, pero el cupo total ya está lleno.
	c.Filter("dragon")
	out, _ := c.ToggleWinner(all[2].ID)
	if out.Conflict == nil || out.Conflict.Kind != ConflictTotal {
		t.Fatalf("expected total conflict with hidden winners, got %+v", out)
	}
	assertWinnerInvariant(t, c)
}

func TestToggleWinner_Unknown(t *testing.T) {
	c := newTestCollection(t, "Rex the Good Dog")
	if _, err := c.ToggleWinner("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.RemoveWinner("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
