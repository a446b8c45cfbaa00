package domain

import (
	"errors"
	"reflect"
	"testing"
)

func mustPart(t *testing.T, pid, cid string) Part {
	t.Helper()
	p, err := NewPart(pid, cid, "elem-"+pid, "design-"+pid, "part "+pid)
	if err != nil {
		t.Fatalf("unexpected error building part: %v", err)
	}
	return p
}

func mustWeapon(t *testing.T, name string, parts ...PartQuantity) Weapon {
	t.Helper()
	w, err := NewWeapon(name, "weapon "+name, parts...)
	if err != nil {
		t.Fatalf("unexpected error building weapon: %v", err)
	}
	return w
}

func TestPartIDDeterministic(t *testing.T) {
	a := mustPart(t, "3001", "5")
	b := mustPart(t, "3001", "5")
	if a.ID() != b.ID() {
		t.Fatalf("expected identical ids, got %s and %s", a.ID(), b.ID())
	}
	if len(a.ID()) != 16 {
		t.Fatalf("expected 16 hex characters, got %q", a.ID())
	}

	other := mustPart(t, "3001", "6")
	if a.ID() == other.ID() {
		t.Fatalf("different color must yield a different id")
	}
}

func TestPartIDIgnoresNonIdentityFields(t *testing.T) {
	a, err := NewPart("3001", "5", "e1", "d1", "brick")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewPart("3001", "5", "e2", "d2", "other description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != b.ID() {
		t.Fatalf("element/design/description must not contribute to identity")
	}
}

func TestPartMissingFieldsEnumerated(t *testing.T) {
	_, err := NewPart("", "  ", "e1", "d1", "brick")
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected identity error, got %v", err)
	}
	want := []string{"bricklink_part_id", "bricklink_color_id"}
	if !reflect.DeepEqual(idErr.Missing, want) {
		t.Fatalf("expected missing %v, got %v", want, idErr.Missing)
	}
}

func TestWeaponIDOrderIndependent(t *testing.T) {
	blade := mustPart(t, "blade", "1")
	hilt := mustPart(t, "hilt", "1")

	a := mustWeapon(t, "Sword",
		PartQuantity{Part: blade, Quantity: 1},
		PartQuantity{Part: hilt, Quantity: 1},
	)
	b := mustWeapon(t, "Sword",
		PartQuantity{Part: hilt, Quantity: 1},
		PartQuantity{Part: blade, Quantity: 1},
	)
	if a.ID() != b.ID() {
		t.Fatalf("part order must not affect identity: %s vs %s", a.ID(), b.ID())
	}

	c := mustWeapon(t, "Sword",
		PartQuantity{Part: blade, Quantity: 2},
		PartQuantity{Part: hilt, Quantity: 1},
	)
	if a.ID() == c.ID() {
		t.Fatalf("quantity change must change identity")
	}
}

func TestWeaponRequiresParts(t *testing.T) {
	_, err := NewWeapon("Sword", "")
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected identity error for empty part list, got %v", err)
	}
}

func TestWeaponRejectsBadQuantities(t *testing.T) {
	blade := mustPart(t, "blade", "1")

	_, err := NewWeapon("Sword", "", PartQuantity{Part: blade, Quantity: 0})
	var consErr *ConsistencyError
	if !errors.As(err, &consErr) {
		t.Fatalf("expected consistency error for zero quantity, got %v", err)
	}

	_, err = NewWeapon("Sword", "",
		PartQuantity{Part: blade, Quantity: 1},
		PartQuantity{Part: blade, Quantity: 2},
	)
	if !errors.As(err, &consErr) {
		t.Fatalf("expected consistency error for duplicate part, got %v", err)
	}
}

func TestWeaponPartsSortedAndDefensive(t *testing.T) {
	blade := mustPart(t, "blade", "1")
	hilt := mustPart(t, "hilt", "1")
	w := mustWeapon(t, "Sword",
		PartQuantity{Part: hilt, Quantity: 1},
		PartQuantity{Part: blade, Quantity: 2},
	)

	parts := w.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	for i := 1; i < len(parts); i++ {
		if parts[i-1].Part.ID() > parts[i].Part.ID() {
			t.Fatalf("parts not sorted by id")
		}
	}

	parts[0] = PartQuantity{}
	again := w.Parts()
	if again[0].Quantity == 0 {
		t.Fatalf("mutating the returned slice must not affect the weapon")
	}
}

func TestEmptyWeaponSlotIdentity(t *testing.T) {
	a := EmptyWeaponSlot()
	b, err := NewWeaponSlot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != b.ID() {
		t.Fatalf("all empty slots must share one id")
	}
	if !a.Empty() {
		t.Fatalf("expected empty slot")
	}

	sword := mustWeapon(t, "Sword", PartQuantity{Part: mustPart(t, "blade", "1"), Quantity: 1})
	loaded, err := NewWeaponSlot(WeaponQuantity{Weapon: sword, Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Empty() || loaded.ID() == a.ID() {
		t.Fatalf("loaded slot must differ from the empty slot")
	}
}

func TestTemplateIdentityIsFigIDOnly(t *testing.T) {
	body := mustPart(t, "body", "1")
	a, err := NewTemplateMinifigure("sw001", "Luke", 1999, []string{"SetA"},
		[]PartQuantity{{Part: body, Quantity: 1}}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewTemplateMinifigure("sw001", "Different Name", 2005, []string{"SetB"},
		[]PartQuantity{{Part: body, Quantity: 2}}, nil, "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != b.ID() {
		t.Fatalf("only the fig id contributes to template identity")
	}

	_, err = NewTemplateMinifigure("", "Luke", 1999, nil,
		[]PartQuantity{{Part: body, Quantity: 1}}, nil, "")
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected identity error for missing fig id, got %v", err)
	}
}

func TestTemplateSetsNormalized(t *testing.T) {
	body := mustPart(t, "body", "1")
	tmpl, err := NewTemplateMinifigure("sw001", "Luke", 1999,
		[]string{" SetB ", "SetA", "SetB", ""},
		[]PartQuantity{{Part: body, Quantity: 1}}, nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"SetA", "SetB"}
	if !reflect.DeepEqual(tmpl.Sets(), want) {
		t.Fatalf("expected %v, got %v", want, tmpl.Sets())
	}
}

func TestActualMinifigureIdentityAndConsistency(t *testing.T) {
	body := mustPart(t, "body", "1")
	sword := mustWeapon(t, "Sword", PartQuantity{Part: mustPart(t, "blade", "1"), Quantity: 1})
	slot, err := NewWeaponSlot(WeaponQuantity{Weapon: sword, Quantity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tmpl, err := NewTemplateMinifigure("sw001", "Luke", 1999, nil,
		[]PartQuantity{{Part: body, Quantity: 1}},
		[]SlotQuantity{{Slot: slot, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := NewActualMinifigure(tmpl, 1, 3, &slot, "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewActualMinifigure(tmpl, 1, 3, nil, "used")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != b.ID() {
		t.Fatalf("identity must come from box and position only")
	}

	_, err = NewActualMinifigure(tmpl, 0, 3, nil, "new")
	var idErr *IdentityError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected identity error for box 0, got %v", err)
	}

	// A slot the template does not allow is rejected.
	other, err := NewWeaponSlot(WeaponQuantity{Weapon: sword, Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewActualMinifigure(tmpl, 2, 1, &other, "new")
	var consErr *ConsistencyError
	if !errors.As(err, &consErr) {
		t.Fatalf("expected consistency error for disallowed slot, got %v", err)
	}

	// The empty slot is always allowed.
	empty := EmptyWeaponSlot()
	if _, err := NewActualMinifigure(tmpl, 2, 1, &empty, "new"); err != nil {
		t.Fatalf("empty slot must always be allowed: %v", err)
	}
}
