package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrKindSurvivesWrapping(t *testing.T) {
	base := BookingError{Kind: KindSeatAlreadyBooked, SeatIDs: []int64{4, 9}}
	wrapped := fmt.Errorf("validate: %w", base)

	if got := ErrKind(wrapped); got != KindSeatAlreadyBooked {
		t.Fatalf("ErrKind = %q, want %q", got, KindSeatAlreadyBooked)
	}
	if !IsKind(wrapped, KindSeatAlreadyBooked) {
		t.Fatal("IsKind should match through wrapping")
	}
	got := OffendingSeats(wrapped)
	if len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Fatalf("OffendingSeats = %v, want [4 9]", got)
	}
}

func TestErrKindForeignError(t *testing.T) {
	if got := ErrKind(errors.New("disk on fire")); got != "" {
		t.Fatalf("ErrKind = %q, want empty", got)
	}
	if OffendingSeats(errors.New("nope")) != nil {
		t.Fatal("OffendingSeats should be nil for foreign errors")
	}
}

func TestBookingErrorMessage(t *testing.T) {
	cases := []struct {
		err  BookingError
		want string
	}{
		{BookingError{Kind: KindNotCancellable}, "not cancellable"},
		{BookingError{Kind: KindInvalidSeatID, Msg: "some seat ids are invalid", SeatIDs: []int64{42}}, "some seat ids are invalid: seats [42]"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	nf := NotFoundError{Resource: "booking"}
	if !IsNotFound(nf) || IsValidation(nf) {
		t.Fatal("NotFoundError misclassified")
	}
	if nf.Error() != "booking not found" {
		t.Fatalf("Error() = %q", nf.Error())
	}

	ie := InternalError{Err: errors.New("boom")}
	if !IsInternal(ie) || IsNotFound(ie) {
		t.Fatal("InternalError misclassified")
	}
	if !errors.Is(ie, ie.Err) {
		t.Fatal("InternalError should unwrap to its cause")
	}
}
