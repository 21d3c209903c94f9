package domain

import "testing"

func TestActor_Identity(t *testing.T) {
	t.Parallel()

	a := NewActor("  Angelina Jolie ")
	if got := a.FullName(); got != "Angelina Jolie" {
		t.Errorf("FullName() = %q, want %q", got, "Angelina Jolie")
	}
	if !a.IsValid() {
		t.Error("expected valid actor")
	}
	if NewActor("").IsValid() {
		t.Error("empty name should be invalid")
	}
}

func TestActor_AddColleague(t *testing.T) {
	t.Parallel()

	jolie := NewActor("Angelina Jolie")
	pitt := NewActor("Brad Pitt")

	if !jolie.AddColleague(pitt) {
		t.Fatal("expected colleague to be added")
	}
	if jolie.AddColleague(pitt) {
		t.Error("adding the same colleague twice should be a no-op")
	}
	if jolie.AddColleague(NewActor("Brad Pitt")) {
		t.Error("an equal colleague should count as already present")
	}
	if len(jolie.Colleagues()) != 1 {
		t.Fatalf("expected 1 colleague, got %d", len(jolie.Colleagues()))
	}

	if jolie.AddColleague(nil) {
		t.Error("nil colleague should be rejected")
	}
	if jolie.AddColleague(NewActor("")) {
		t.Error("invalid colleague should be rejected")
	}
	if jolie.AddColleague(jolie) {
		t.Error("an actor cannot be their own colleague")
	}
	if jolie.AddColleague(NewActor("Angelina Jolie")) {
		t.Error("an actor cannot add an equal actor as colleague")
	}
}

func TestActor_WorkedWithIsDirectional(t *testing.T) {
	t.Parallel()

	jolie := NewActor("Angelina Jolie")
	pitt := NewActor("Brad Pitt")
	jolie.AddColleague(pitt)

	if !jolie.WorkedWith(pitt) {
		t.Error("expected jolie to have worked with pitt")
	}
	if pitt.WorkedWith(jolie) {
		t.Error("the colleague link is directional; pitt has no record of jolie")
	}
	if jolie.WorkedWith(nil) {
		t.Error("WorkedWith(nil) should be false")
	}
}
