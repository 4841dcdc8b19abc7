package booking

import (
	"context"
	"testing"
	"time"

	"roomly/models"
	"roomly/services/apperr"
)

func TestListMineFiltersByOwnerAndStatus(t *testing.T) {
	svc := newTestService(newFakeResourceRepo(openResource("room-1")), newFakeReservationRepo())
	start, end := futureSlot(1)

	mine, err := svc.Create(context.Background(), alice, CreateInput{ResourceID: "room-1", Start: start, End: end})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), bob, CreateInput{ResourceID: "room-1", Start: end, End: end.Add(time.Hour)}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.ListMine(context.Background(), alice, nil)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("ListMine returned %d reservations, want exactly Alice's one", len(got))
	}

	if _, err := svc.Cancel(context.Background(), alice, mine.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	active, err := svc.ListMine(context.Background(), alice, []string{models.ReservationStatusActive})
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("status filter returned %d active reservations, want 0", len(active))
	}
}

func TestResourceScheduleShowsOnlyOccupyingInWindow(t *testing.T) {
	reservations := newFakeReservationRepo()
	svc := newTestService(newFakeResourceRepo(openResource("room-1")), reservations)
	base := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	inWindow := seedReservation(t, reservations, "room-1", models.ReservationStatusActive, base, base.Add(time.Hour))
	seedReservation(t, reservations, "room-1", models.ReservationStatusCancelled, base.Add(time.Hour), base.Add(2*time.Hour))
	seedReservation(t, reservations, "room-1", models.ReservationStatusActive, base.Add(100*time.Hour), base.Add(101*time.Hour))
	seedReservation(t, reservations, "room-2", models.ReservationStatusActive, base, base.Add(time.Hour))

	got, err := svc.ResourceSchedule(context.Background(), "room-1", base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ResourceSchedule failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != inWindow.ID {
		t.Fatalf("schedule returned %d reservations, want only the occupying one inside the window", len(got))
	}
}

func TestCheckAvailabilityValidatesInterval(t *testing.T) {
	svc := newTestService(newFakeResourceRepo(openResource("room-1")), newFakeReservationRepo())
	now := time.Now().UTC()

	err := svc.CheckAvailability(context.Background(), "room-1", now.Add(time.Hour), now)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("inverted interval error = %v, want validation", err)
	}
}

func TestStatsCountsByStatusAndResource(t *testing.T) {
	reservations := newFakeReservationRepo()
	svc := newTestService(newFakeResourceRepo(openResource("room-1"), openResource("room-2")), reservations)
	future := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)

	seedReservation(t, reservations, "room-1", models.ReservationStatusActive, future, future.Add(2*time.Hour))
	seedReservation(t, reservations, "room-1", models.ReservationStatusCancelled, future.Add(3*time.Hour), future.Add(4*time.Hour))
	seedReservation(t, reservations, "room-2", models.ReservationStatusActive, future, future.Add(time.Hour))

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	byStatus := make(map[string]int64)
	for _, sc := range stats.ByStatus {
		byStatus[sc.Status] = sc.Count
	}
	if byStatus[models.ReservationStatusActive] != 2 {
		t.Errorf("active count = %d, want 2", byStatus[models.ReservationStatusActive])
	}
	if byStatus[models.ReservationStatusCancelled] != 1 {
		t.Errorf("cancelled count = %d, want 1", byStatus[models.ReservationStatusCancelled])
	}

	byResource := make(map[string]models.ResourceUsage)
	for _, ru := range stats.ByResource {
		byResource[ru.ResourceID] = ru
	}
	// Usage counts occupying reservations only; the cancelled one is excluded.
	if byResource["room-1"].Reservations != 1 || byResource["room-1"].BookedHours != 2 {
		t.Errorf("room-1 usage = %+v, want 1 reservation / 2 hours", byResource["room-1"])
	}

	if stats.Upcoming != 2 {
		t.Errorf("upcoming = %d, want 2 (cancelled excluded)", stats.Upcoming)
	}
}
